package repository

import (
	"context"

	"patient-registry/internal/domain/entity"

	"gorm.io/gorm"
)

type SpecialistRepository interface {
	Create(ctx context.Context, db *gorm.DB, specialist *entity.Specialist) error
	FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.Specialist, error)
	FindActiveByName(ctx context.Context, db *gorm.DB, name string) (*entity.Specialist, error)
	FindAll(ctx context.Context, db *gorm.DB, activeOnly bool) ([]entity.Specialist, error)
	Deactivate(ctx context.Context, db *gorm.DB, name string) (int64, error)
}
