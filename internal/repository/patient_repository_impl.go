package repository

import (
	"context"
	"errors"

	"patient-registry/internal/domain/entity"
	domainRepo "patient-registry/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

// FindAll returns patients newest first.
// Supports optional filters: specialist, code substring and submission date range.
func (r *patientRepository) FindAll(ctx context.Context, db *gorm.DB, filter *entity.PatientFilter) ([]entity.Patient, error) {
	var patients []entity.Patient
	query := db.WithContext(ctx).Model(&entity.Patient{})

	if filter != nil {
		if filter.Code != "" {
			query = query.Where(codeContains(db), filter.Code)
		}
		if filter.HasSpecialist() {
			query = query.Where("specialist = ?", filter.Specialist)
		}
		// submission_date is zero-padded ISO text, so string order is date order.
		if filter.StartDate != "" {
			query = query.Where("submission_date >= ?", filter.StartDate)
		}
		if filter.EndDate != "" {
			query = query.Where("submission_date <= ?", filter.EndDate)
		}
	}

	err := query.Order("id DESC").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

// UpdateContent overwrites the editable columns only; id and the
// submission stamp are never written.
func (r *patientRepository) UpdateContent(ctx context.Context, db *gorm.DB, patient *entity.Patient) (int64, error) {
	result := db.WithContext(ctx).
		Model(&entity.Patient{}).
		Where("id = ?", patient.ID).
		Select(entity.PatientContentColumns).
		Updates(map[string]interface{}{
			"patient_name": patient.PatientName,
			"last_name":    patient.LastName,
			"age":          patient.Age,
			"ward":         patient.Ward,
			"patient_code": patient.PatientCode,
			"specialist":   patient.Specialist,
		})
	return result.RowsAffected, result.Error
}

func (r *patientRepository) DeleteByIDs(ctx context.Context, db *gorm.DB, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := db.WithContext(ctx).Where("id IN ?", ids).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}

func (r *patientRepository) CountBySpecialist(ctx context.Context, db *gorm.DB, specialistName string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Patient{}).Where("specialist = ?", specialistName).Count(&count).Error
	return count, err
}

// codeContains builds a case-sensitive literal substring predicate.
// LIKE is avoided: SQLite folds ASCII case and treats % and _ in the term as wildcards.
func codeContains(db *gorm.DB) string {
	if db.Dialector.Name() == "postgres" {
		return "strpos(patient_code, ?) > 0"
	}
	return "instr(patient_code, ?) > 0"
}
