package usecase

import (
	"context"
	"fmt"
	"io"

	"patient-registry/internal/infrastructure/spreadsheet"

	"github.com/sirupsen/logrus"
)

// ExportUsecase serialises an already materialised view; it never queries
// the store itself.
type ExportUsecase interface {
	ExportCurrentView(ctx context.Context, path string, headers []string, rows [][]string) error
	WriteCurrentView(ctx context.Context, w io.Writer, headers []string, rows [][]string) error
}

type exportUsecase struct {
	log       *logrus.Logger
	sheetName string
}

func NewExportUsecase(log *logrus.Logger, sheetName string) ExportUsecase {
	return &exportUsecase{
		log:       log,
		sheetName: sheetName,
	}
}

func (u *exportUsecase) ExportCurrentView(ctx context.Context, path string, headers []string, rows [][]string) error {
	if len(rows) == 0 {
		return ErrNoData
	}
	if path == "" {
		return newValidationError("path", "an output file is required")
	}

	if err := spreadsheet.WriteFile(path, u.sheet(headers, rows)); err != nil {
		u.log.Warnf("Failed to export view: %+v", err)
		return fmt.Errorf("%w: %w", ErrExportIO, err)
	}

	u.log.WithFields(logrus.Fields{"path": path, "rows": len(rows)}).Info("View exported")
	return nil
}

func (u *exportUsecase) WriteCurrentView(ctx context.Context, w io.Writer, headers []string, rows [][]string) error {
	if len(rows) == 0 {
		return ErrNoData
	}

	if err := spreadsheet.Write(w, u.sheet(headers, rows)); err != nil {
		u.log.Warnf("Failed to stream export: %+v", err)
		return fmt.Errorf("%w: %w", ErrExportIO, err)
	}
	return nil
}

func (u *exportUsecase) sheet(headers []string, rows [][]string) spreadsheet.Sheet {
	return spreadsheet.Sheet{
		Name:        u.sheetName,
		Headers:     headers,
		Rows:        rows,
		RightToLeft: true,
	}
}
