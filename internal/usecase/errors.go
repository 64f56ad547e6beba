package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrValidation                   = errors.New("validation failed")
	ErrDuplicateSpecialist          = errors.New("specialist already exists")
	ErrSpecialistNotFoundOrInactive = errors.New("specialist not found or inactive")
	ErrSpecialistInUse              = errors.New("specialist is referenced by patient records")
	ErrPatientNotFound              = errors.New("patient not found")
	ErrStorage                      = errors.New("storage error")
	ErrNoData                       = errors.New("no data to export")
	ErrExportIO                     = errors.New("failed to write export file")
)

// ValidationError lists the rejected fields of a request.
// errors.Is(err, ErrValidation) holds for every ValidationError.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, len(keys))
	for i, k := range keys {
		msgs[i] = e.Fields[k]
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func storageError(err error) error {
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
