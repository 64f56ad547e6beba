package dto

import "strings"

// Request DTOs

// PatientRequest is the registration form. The same fields are used for
// create and edit.
type PatientRequest struct {
	PatientName string `json:"patient_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Age         int    `json:"age" validate:"gt=0,lt=150"`
	Ward        string `json:"ward" validate:"required"`
	PatientCode string `json:"patient_code" validate:"required"`
	Specialist  string `json:"specialist" validate:"required"`
}

// Normalize trims surrounding whitespace from every text field.
func (r *PatientRequest) Normalize() {
	r.PatientName = strings.TrimSpace(r.PatientName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Ward = strings.TrimSpace(r.Ward)
	r.PatientCode = strings.TrimSpace(r.PatientCode)
	r.Specialist = strings.TrimSpace(r.Specialist)
}

type DeletePatientsRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1"`
}

// PatientQuery carries the list view filters.
type PatientQuery struct {
	Specialist string `json:"specialist,omitempty"`
	Code       string `json:"code,omitempty"`
	From       string `json:"from,omitempty"`
	To         string `json:"to,omitempty"`
}

// Response DTOs

type PatientResponse struct {
	ID             int64  `json:"id"`
	PatientName    string `json:"patient_name"`
	LastName       string `json:"last_name"`
	Age            int    `json:"age"`
	Ward           string `json:"ward"`
	PatientCode    string `json:"patient_code"`
	Specialist     string `json:"specialist"`
	SubmissionDate string `json:"submission_date"`
	SubmissionTime string `json:"submission_time"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}

type DeletePatientsResponse struct {
	Deleted int64 `json:"deleted"`
}
