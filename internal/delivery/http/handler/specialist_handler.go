package handler

import (
	"net/http"

	"patient-registry/internal/delivery/dto"
	"patient-registry/internal/usecase"
	"patient-registry/pkg/response"
)

type SpecialistHandler struct {
	specialistUsecase usecase.SpecialistUsecase
}

func NewSpecialistHandler(specialistUsecase usecase.SpecialistUsecase) *SpecialistHandler {
	return &SpecialistHandler{
		specialistUsecase: specialistUsecase,
	}
}

// GetSpecialists lists active names by default; status=all includes
// deactivated ones for the filter combobox.
func (h *SpecialistHandler) GetSpecialists(w http.ResponseWriter, r *http.Request) {
	var (
		names *dto.SpecialistNamesResponse
		err   error
	)
	switch r.URL.Query().Get("status") {
	case "", "active":
		names, err = h.specialistUsecase.ListActiveNames(r.Context())
	case "all":
		names, err = h.specialistUsecase.ListAllNames(r.Context())
	default:
		response.Error(w, http.StatusBadRequest, "status must be active or all", nil)
		return
	}
	if err != nil {
		writeError(w, err, "Failed to get specialists")
		return
	}

	response.Success(w, http.StatusOK, "Specialists retrieved successfully", names)
}

func (h *SpecialistHandler) CreateSpecialist(w http.ResponseWriter, r *http.Request) {
	var req dto.SpecialistRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	specialist, err := h.specialistUsecase.AddSpecialist(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create specialist")
		return
	}

	response.Success(w, http.StatusCreated, "Specialist created successfully", specialist)
}

func (h *SpecialistHandler) DeactivateSpecialist(w http.ResponseWriter, r *http.Request) {
	var req dto.SpecialistRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.specialistUsecase.DeactivateSpecialist(r.Context(), &req); err != nil {
		writeError(w, err, "Failed to deactivate specialist")
		return
	}

	response.Success(w, http.StatusOK, "Specialist deactivated successfully", nil)
}
