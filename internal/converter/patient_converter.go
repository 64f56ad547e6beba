package converter

import (
	"strconv"
	"strings"

	"patient-registry/internal/delivery/dto"
	"patient-registry/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:             patient.ID,
		PatientName:    patient.PatientName,
		LastName:       patient.LastName,
		Age:            patient.Age,
		Ward:           patient.Ward,
		PatientCode:    patient.PatientCode,
		Specialist:     patient.Specialist,
		SubmissionDate: patient.SubmissionDate,
		SubmissionTime: patient.SubmissionTime,
	}
}

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

// PatientRequestToEntity copies the six content fields of the form.
func PatientRequestToEntity(req *dto.PatientRequest) *entity.Patient {
	return &entity.Patient{
		PatientName: req.PatientName,
		LastName:    req.LastName,
		Age:         req.Age,
		Ward:        req.Ward,
		PatientCode: req.PatientCode,
		Specialist:  req.Specialist,
	}
}

// PatientQueryToFilter maps list view query parameters to the domain filter.
// Surrounding whitespace is dropped, so a blank code searches nothing.
func PatientQueryToFilter(q *dto.PatientQuery) *entity.PatientFilter {
	if q == nil {
		return &entity.PatientFilter{}
	}
	return &entity.PatientFilter{
		Specialist: strings.TrimSpace(q.Specialist),
		Code:       strings.TrimSpace(q.Code),
		StartDate:  strings.TrimSpace(q.From),
		EndDate:    strings.TrimSpace(q.To),
	}
}

// PatientsToRows renders patients the way the list view shows them, in
// the given order. The last column is a 1-based display counter, not the id.
func PatientsToRows(patients []dto.PatientResponse) [][]string {
	rows := make([][]string, len(patients))
	for i, p := range patients {
		rows[i] = []string{
			p.PatientName,
			p.LastName,
			strconv.Itoa(p.Age),
			p.Ward,
			p.PatientCode,
			p.Specialist,
			p.SubmissionDate,
			p.SubmissionTime,
			strconv.Itoa(i + 1),
		}
	}
	return rows
}
