package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	deliveryHttp "patient-registry/internal/delivery/http"
	"patient-registry/internal/delivery/http/handler"
	"patient-registry/internal/delivery/http/middleware"
	"patient-registry/internal/domain/entity"
	"patient-registry/internal/repository"
	"patient-registry/internal/service"
	"patient-registry/internal/testutil"
	"patient-registry/internal/usecase"
	"patient-registry/pkg/validator"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	v := validator.NewValidator()

	patientRepo := repository.NewPatientRepository()
	specialistRepo := repository.NewSpecialistRepository()

	patientUsecase := usecase.NewPatientUsecase(db, log, v, patientRepo)
	specialistUsecase := usecase.NewSpecialistUsecase(db, log, v, specialistRepo, patientRepo, service.NewNoopSpecialistCache())
	exportUsecase := usecase.NewExportUsecase(log, "Patients Report")

	router := deliveryHttp.NewRouter(
		handler.NewPatientHandler(patientUsecase, exportUsecase, v),
		handler.NewSpecialistHandler(specialistUsecase),
		middleware.NewLoggingMiddleware(log),
		middleware.NewCORSMiddleware(),
	)
	srv := httptest.NewServer(router.Setup())
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path string, body interface{}) (*http.Response, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			t.Fatalf("decode %s %s: %v", method, path, err)
		}
	}
	return resp, env
}

func patientBody(code string) map[string]interface{} {
	return map[string]interface{}{
		"patient_name": "Ali",
		"last_name":    "Rezaei",
		"age":          34,
		"ward":         "ICU",
		"patient_code": code,
		"specialist":   entity.DefaultSpecialists[0],
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/api/v1/health")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if _, err := uuid.Parse(resp.Header.Get("X-Request-ID")); err != nil {
		t.Errorf("expected a request id header, got %q", resp.Header.Get("X-Request-ID"))
	}
}

func TestPatientLifecycle(t *testing.T) {
	srv := newTestServer(t)

	resp, env := do(t, srv, http.MethodPost, "/api/v1/patients", patientBody("P100"))
	if resp.StatusCode != http.StatusCreated || !env.Success {
		t.Fatalf("create: status %d, %+v", resp.StatusCode, env)
	}
	var created struct {
		ID             int64  `json:"id"`
		SubmissionDate string `json:"submission_date"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}

	body := patientBody("P777")
	body["age"] = 40
	path := "/api/v1/patients/" + strconv.FormatInt(created.ID, 10)
	resp, env = do(t, srv, http.MethodPut, path, body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: status %d, %+v", resp.StatusCode, env)
	}

	resp, env = do(t, srv, http.MethodGet, path, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get: status %d", resp.StatusCode)
	}
	var got struct {
		PatientCode    string `json:"patient_code"`
		Age            int    `json:"age"`
		SubmissionDate string `json:"submission_date"`
	}
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode patient: %v", err)
	}
	if got.PatientCode != "P777" || got.Age != 40 || got.SubmissionDate != created.SubmissionDate {
		t.Errorf("unexpected patient after update: %+v", got)
	}

	resp, env = do(t, srv, http.MethodDelete, "/api/v1/patients", map[string]interface{}{"ids": []int64{created.ID, 999}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: status %d", resp.StatusCode)
	}
	var deleted struct {
		Deleted int64 `json:"deleted"`
	}
	_ = json.Unmarshal(env.Data, &deleted)
	if deleted.Deleted != 1 {
		t.Errorf("expected 1 deleted, got %d", deleted.Deleted)
	}

	resp, _ = do(t, srv, http.MethodGet, path, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", resp.StatusCode)
	}
}

func TestCreatePatient_Invalid(t *testing.T) {
	srv := newTestServer(t)

	body := patientBody("P100")
	body["age"] = 150
	resp, env := do(t, srv, http.MethodPost, "/api/v1/patients", body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	var fields map[string]string
	if err := json.Unmarshal(env.Error, &fields); err != nil {
		t.Fatalf("decode error fields: %v", err)
	}
	if fields["age"] == "" {
		t.Errorf("expected age to be reported, got %v", fields)
	}

	resp, _ = do(t, srv, http.MethodDelete, "/api/v1/patients", map[string]interface{}{"ids": []int64{}})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for empty delete, got %d", resp.StatusCode)
	}
}

func TestListPatients_Filters(t *testing.T) {
	srv := newTestServer(t)
	for _, code := range []string{"P100", "P210", "Q999"} {
		if resp, _ := do(t, srv, http.MethodPost, "/api/v1/patients", patientBody(code)); resp.StatusCode != http.StatusCreated {
			t.Fatalf("create %s: status %d", code, resp.StatusCode)
		}
	}

	resp, env := do(t, srv, http.MethodGet, "/api/v1/patients?code=10&specialist=ALL", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: status %d", resp.StatusCode)
	}
	var list struct {
		Patients []struct {
			PatientCode string `json:"patient_code"`
		} `json:"patients"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Total != 2 || list.Patients[0].PatientCode != "P210" || list.Patients[1].PatientCode != "P100" {
		t.Errorf("expected [P210 P100], got %+v", list.Patients)
	}

	resp, _ = do(t, srv, http.MethodGet, "/api/v1/patients?from=05-03-2024", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed date, got %d", resp.StatusCode)
	}
}

func TestExportPatients(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := do(t, srv, http.MethodGet, "/api/v1/patients/export", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for empty view, got %d", resp.StatusCode)
	}

	if resp, _ := do(t, srv, http.MethodPost, "/api/v1/patients", patientBody("P100")); resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: status %d", resp.StatusCode)
	}

	download, err := srv.Client().Get(srv.URL + "/api/v1/patients/export")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	defer download.Body.Close()
	if download.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", download.StatusCode)
	}
	if !strings.Contains(download.Header.Get("Content-Disposition"), ".xlsx") {
		t.Errorf("unexpected disposition %q", download.Header.Get("Content-Disposition"))
	}

	f, err := excelize.OpenReader(download.Body)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("Patients Report")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 2 || rows[1][4] != "P100" {
		t.Errorf("unexpected rows %v", rows)
	}
}

func TestSpecialistEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, env := do(t, srv, http.MethodPost, "/api/v1/specialists", map[string]string{"name": "Radiology - Dr. Samadi"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: status %d, %+v", resp.StatusCode, env)
	}
	resp, _ = do(t, srv, http.MethodPost, "/api/v1/specialists", map[string]string{"name": "Radiology - Dr. Samadi"})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409 for duplicate, got %d", resp.StatusCode)
	}

	if resp, _ := do(t, srv, http.MethodPost, "/api/v1/patients", patientBody("P100")); resp.StatusCode != http.StatusCreated {
		t.Fatalf("create patient: status %d", resp.StatusCode)
	}
	resp, _ = do(t, srv, http.MethodPost, "/api/v1/specialists/deactivate", map[string]string{"name": entity.DefaultSpecialists[0]})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409 for specialist in use, got %d", resp.StatusCode)
	}

	resp, _ = do(t, srv, http.MethodPost, "/api/v1/specialists/deactivate", map[string]string{"name": "Radiology - Dr. Samadi"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("deactivate: status %d", resp.StatusCode)
	}
	resp, _ = do(t, srv, http.MethodPost, "/api/v1/specialists/deactivate", map[string]string{"name": "Radiology - Dr. Samadi"})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 on second deactivation, got %d", resp.StatusCode)
	}

	var names struct {
		Total int `json:"total"`
	}
	_, env = do(t, srv, http.MethodGet, "/api/v1/specialists", nil)
	_ = json.Unmarshal(env.Data, &names)
	if names.Total != len(entity.DefaultSpecialists) {
		t.Errorf("expected %d active names, got %d", len(entity.DefaultSpecialists), names.Total)
	}
	_, env = do(t, srv, http.MethodGet, "/api/v1/specialists?status=all", nil)
	_ = json.Unmarshal(env.Data, &names)
	if names.Total != len(entity.DefaultSpecialists)+1 {
		t.Errorf("expected %d names in total, got %d", len(entity.DefaultSpecialists)+1, names.Total)
	}

	resp, _ = do(t, srv, http.MethodGet, "/api/v1/specialists?status=retired", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown status, got %d", resp.StatusCode)
	}
}

func TestPreflight(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/v1/patients", "/api/v1/patients/12", "/api/v1/specialists/deactivate"} {
		req, err := http.NewRequest(http.MethodOptions, srv.URL+path, nil)
		if err != nil {
			t.Fatalf("new request: %v", err)
		}
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")

		resp, err := srv.Client().Do(req)
		if err != nil {
			t.Fatalf("options %s: %v", path, err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, resp.StatusCode)
		}
		if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("%s: expected allow-origin *, got %q", path, got)
		}
		if !strings.Contains(resp.Header.Get("Access-Control-Allow-Methods"), http.MethodDelete) {
			t.Errorf("%s: unexpected allow-methods %q", path, resp.Header.Get("Access-Control-Allow-Methods"))
		}
	}
}

func TestCORSHeadersOnRegularRequest(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := do(t, srv, http.MethodGet, "/api/v1/specialists", nil)
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected allow-origin *, got %q", got)
	}
}

func TestCreatePatient_NonNumericAge(t *testing.T) {
	srv := newTestServer(t)

	for _, age := range []interface{}{"thirty", 34.5} {
		body := patientBody("P100")
		body["age"] = age
		resp, env := do(t, srv, http.MethodPost, "/api/v1/patients", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("age %v: expected 400, got %d", age, resp.StatusCode)
		}
		if env.Message != "Validation failed" {
			t.Errorf("age %v: expected validation envelope, got %q", age, env.Message)
		}
		var fields map[string]string
		if err := json.Unmarshal(env.Error, &fields); err != nil {
			t.Fatalf("decode error fields: %v", err)
		}
		if fields["age"] != "age must be a whole number" {
			t.Errorf("age %v: unexpected fields %v", age, fields)
		}
	}

	resp, env := do(t, srv, http.MethodGet, "/api/v1/patients", nil)
	var list struct {
		Total int `json:"total"`
	}
	_ = json.Unmarshal(env.Data, &list)
	if resp.StatusCode != http.StatusOK || list.Total != 0 {
		t.Errorf("expected nothing stored, got status %d total %d", resp.StatusCode, list.Total)
	}
}

func TestDeletePatients_MissingIDs(t *testing.T) {
	srv := newTestServer(t)

	resp, env := do(t, srv, http.MethodDelete, "/api/v1/patients", map[string]interface{}{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	var fields map[string]string
	if err := json.Unmarshal(env.Error, &fields); err != nil {
		t.Fatalf("decode error fields: %v", err)
	}
	if fields["ids"] != "ids is required" {
		t.Errorf("unexpected fields %v", fields)
	}
}
