package dto

import "strings"

type SpecialistRequest struct {
	Name string `json:"name" validate:"required"`
}

func (r *SpecialistRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

type SpecialistResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

type SpecialistNamesResponse struct {
	Names []string `json:"names"`
	Total int      `json:"total"`
}
