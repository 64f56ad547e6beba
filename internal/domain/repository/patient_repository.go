package repository

import (
	"context"

	"patient-registry/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error)
	FindAll(ctx context.Context, db *gorm.DB, filter *entity.PatientFilter) ([]entity.Patient, error)
	UpdateContent(ctx context.Context, db *gorm.DB, patient *entity.Patient) (int64, error)
	DeleteByIDs(ctx context.Context, db *gorm.DB, ids []int64) (int64, error)
	CountBySpecialist(ctx context.Context, db *gorm.DB, specialistName string) (int64, error)
}
