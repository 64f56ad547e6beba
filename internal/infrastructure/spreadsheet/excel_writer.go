package spreadsheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const defaultSheetName = "Sheet1"

// Sheet is a single worksheet: a header row followed by data rows.
type Sheet struct {
	Name        string
	Headers     []string
	Rows        [][]string
	RightToLeft bool
}

// WriteFile saves the sheet as an .xlsx workbook at path.
func WriteFile(path string, sheet Sheet) error {
	f, err := build(sheet)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// Write streams the sheet as an .xlsx workbook to w.
func Write(w io.Writer, sheet Sheet) error {
	f, err := build(sheet)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func build(sheet Sheet) (*excelize.File, error) {
	f := excelize.NewFile()

	name := sheet.Name
	if name == "" {
		name = defaultSheetName
	}
	if name != defaultSheetName {
		if err := f.SetSheetName(defaultSheetName, name); err != nil {
			f.Close()
			return nil, fmt.Errorf("name sheet %q: %w", name, err)
		}
	}

	if sheet.RightToLeft {
		rtl := true
		if err := f.SetSheetView(name, 0, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
			f.Close()
			return nil, fmt.Errorf("set sheet view: %w", err)
		}
	}

	rowNum := 1
	if len(sheet.Headers) > 0 {
		if err := setRow(f, name, rowNum, sheet.Headers); err != nil {
			f.Close()
			return nil, err
		}
		rowNum++
	}
	for _, row := range sheet.Rows {
		if err := setRow(f, name, rowNum, row); err != nil {
			f.Close()
			return nil, err
		}
		rowNum++
	}

	return f, nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}
	return nil
}
