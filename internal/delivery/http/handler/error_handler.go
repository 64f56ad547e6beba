package handler

import (
	"errors"
	"net/http"

	"patient-registry/internal/usecase"
	"patient-registry/pkg/response"
)

// writeError maps usecase failures to HTTP responses. fallback is the
// message used for unexpected errors.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		response.ValidationError(w, verr.Fields)
	case errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, "Patient not found")
	case errors.Is(err, usecase.ErrSpecialistNotFoundOrInactive):
		response.NotFound(w, "Specialist not found or already inactive")
	case errors.Is(err, usecase.ErrDuplicateSpecialist):
		response.Error(w, http.StatusConflict, "Specialist already exists", nil)
	case errors.Is(err, usecase.ErrSpecialistInUse):
		response.Error(w, http.StatusConflict, "Specialist is assigned to patients", nil)
	case errors.Is(err, usecase.ErrNoData):
		response.NotFound(w, "No data to export")
	default:
		response.InternalServerError(w, fallback)
	}
}
