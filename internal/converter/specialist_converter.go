package converter

import (
	"patient-registry/internal/delivery/dto"
	"patient-registry/internal/domain/entity"
)

// SpecialistToResponse converts a Specialist entity to SpecialistResponse DTO
func SpecialistToResponse(specialist *entity.Specialist) *dto.SpecialistResponse {
	if specialist == nil {
		return nil
	}

	return &dto.SpecialistResponse{
		ID:       specialist.ID,
		Name:     specialist.SpecialistName,
		IsActive: specialist.Active(),
	}
}

// SpecialistNames keeps the storage order of the given rows.
func SpecialistNames(specialists []entity.Specialist) []string {
	names := make([]string, len(specialists))
	for i, s := range specialists {
		names[i] = s.SpecialistName
	}
	return names
}
