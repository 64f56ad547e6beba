package spreadsheet

import (
	"bytes"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWriteFile_HeadersRowsAndDirection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	sheet := Sheet{
		Name:        "Patients Report",
		Headers:     []string{"First Name", "Last Name"},
		Rows:        [][]string{{"Ali", "Rezaei"}, {"Sara", "Ahmadi"}},
		RightToLeft: true,
	}

	if err := WriteFile(path, sheet); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); !reflect.DeepEqual(got, []string{"Patients Report"}) {
		t.Fatalf("expected a single sheet, got %v", got)
	}

	rows, err := f.GetRows("Patients Report")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	want := [][]string{{"First Name", "Last Name"}, {"Ali", "Rezaei"}, {"Sara", "Ahmadi"}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("expected rows %v, got %v", want, rows)
	}

	view, err := f.GetSheetView("Patients Report", 0)
	if err != nil {
		t.Fatalf("read sheet view: %v", err)
	}
	if view.RightToLeft == nil || !*view.RightToLeft {
		t.Error("expected a right-to-left sheet view")
	}
}

func TestWrite_DefaultSheetName(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Sheet{Headers: []string{"Code"}, Rows: [][]string{{"P100"}}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(defaultSheetName)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 2 || rows[1][0] != "P100" {
		t.Errorf("unexpected rows %v", rows)
	}
}

func TestWriteFile_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "report.xlsx")
	if err := WriteFile(path, Sheet{Rows: [][]string{{"x"}}}); err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
}
