package usecase

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"patient-registry/internal/converter"
	"patient-registry/internal/delivery/dto"
	"patient-registry/internal/testutil"

	"github.com/xuri/excelize/v2"
)

func sampleRows() [][]string {
	return converter.PatientsToRows([]dto.PatientResponse{
		{PatientName: "Sara", LastName: "Ahmadi", Age: 41, Ward: "ER", PatientCode: "P210",
			Specialist: "Neurology - Dr. Moradi", SubmissionDate: "2024-03-06", SubmissionTime: "08:00:00"},
		{PatientName: "Ali", LastName: "Rezaei", Age: 34, Ward: "ICU", PatientCode: "P100",
			Specialist: "Cardiology - Dr. Karimi", SubmissionDate: "2024-03-05", SubmissionTime: "14:07:09"},
	})
}

func TestExportCurrentView(t *testing.T) {
	u := NewExportUsecase(testutil.Logger(t), "Patients Report")
	path := filepath.Join(t.TempDir(), "report.xlsx")

	if err := u.ExportCurrentView(context.Background(), path, dto.DefaultExportHeaders, sampleRows()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != "Patients Report" {
		t.Fatalf("unexpected sheets %v", sheets)
	}
	rows, err := f.GetRows("Patients Report")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != dto.DefaultExportHeaders[0] {
		t.Errorf("unexpected header %v", rows[0])
	}
	if rows[1][4] != "P210" || rows[1][8] != "1" || rows[2][4] != "P100" || rows[2][8] != "2" {
		t.Errorf("expected view order with row counter, got %v", rows[1:])
	}
}

func TestExportCurrentView_NoData(t *testing.T) {
	u := NewExportUsecase(testutil.Logger(t), "Patients Report")
	path := filepath.Join(t.TempDir(), "report.xlsx")

	if err := u.ExportCurrentView(context.Background(), path, dto.DefaultExportHeaders, nil); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected no file to be written, stat err=%v", err)
	}
}

func TestExportCurrentView_Errors(t *testing.T) {
	u := NewExportUsecase(testutil.Logger(t), "Patients Report")

	if err := u.ExportCurrentView(context.Background(), "", dto.DefaultExportHeaders, sampleRows()); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for empty path, got %v", err)
	}

	missingDir := filepath.Join(t.TempDir(), "missing", "report.xlsx")
	if err := u.ExportCurrentView(context.Background(), missingDir, dto.DefaultExportHeaders, sampleRows()); !errors.Is(err, ErrExportIO) {
		t.Errorf("expected ErrExportIO, got %v", err)
	}
}

func TestWriteCurrentView(t *testing.T) {
	u := NewExportUsecase(testutil.Logger(t), "Patients Report")

	var buf bytes.Buffer
	if err := u.WriteCurrentView(context.Background(), &buf, dto.DefaultExportHeaders, nil); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatal("expected nothing written for an empty view")
	}

	if err := u.WriteCurrentView(context.Background(), &buf, dto.DefaultExportHeaders, sampleRows()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open stream: %v", err)
	}
	defer f.Close()

	view, err := f.GetSheetView("Patients Report", 0)
	if err != nil {
		t.Fatalf("sheet view: %v", err)
	}
	if view.RightToLeft == nil || !*view.RightToLeft {
		t.Error("expected right-to-left sheet")
	}
}
