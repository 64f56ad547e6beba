package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"patient-registry/internal/converter"
	"patient-registry/internal/delivery/dto"
	"patient-registry/internal/usecase"
	"patient-registry/pkg/response"
	"patient-registry/pkg/validator"

	"github.com/gorilla/mux"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	exportUsecase  usecase.ExportUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, exportUsecase usecase.ExportUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		exportUsecase:  exportUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	patient, err := h.patientUsecase.AddPatient(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to register patient")
		return
	}

	response.Success(w, http.StatusCreated, "Patient registered successfully", patient)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, ok := patientID(w, r)
	if !ok {
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id, ok := patientID(w, r)
	if !ok {
		return
	}

	var req dto.PatientRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	patient, err := h.patientUsecase.UpdatePatient(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

func (h *PatientHandler) DeletePatients(w http.ResponseWriter, r *http.Request) {
	var req dto.DeletePatientsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	deleted, err := h.patientUsecase.DeletePatients(r.Context(), req.IDs)
	if err != nil {
		writeError(w, err, "Failed to delete patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients deleted successfully", dto.DeletePatientsResponse{Deleted: deleted})
}

func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.ListPatients(r.Context(), patientQuery(r))
	if err != nil {
		writeError(w, err, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

// ExportPatients downloads the filtered list as an .xlsx workbook.
func (h *PatientHandler) ExportPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.ListPatients(r.Context(), patientQuery(r))
	if err != nil {
		writeError(w, err, "Failed to get patients")
		return
	}

	var buf bytes.Buffer
	rows := converter.PatientsToRows(patients.Patients)
	if err := h.exportUsecase.WriteCurrentView(r.Context(), &buf, dto.DefaultExportHeaders, rows); err != nil {
		writeError(w, err, "Failed to export patients")
		return
	}

	filename := fmt.Sprintf("patients-%s.xlsx", time.Now().Format("20060102-150405"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func patientID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return 0, false
	}
	return id, true
}

func patientQuery(r *http.Request) *dto.PatientQuery {
	q := r.URL.Query()
	return &dto.PatientQuery{
		Specialist: q.Get("specialist"),
		Code:       q.Get("code"),
		From:       q.Get("from"),
		To:         q.Get("to"),
	}
}
