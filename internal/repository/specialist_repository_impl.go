package repository

import (
	"context"
	"errors"

	"patient-registry/internal/domain/entity"
	domainRepo "patient-registry/internal/domain/repository"

	"gorm.io/gorm"
)

type specialistRepository struct{}

func NewSpecialistRepository() domainRepo.SpecialistRepository {
	return &specialistRepository{}
}

func (r *specialistRepository) Create(ctx context.Context, db *gorm.DB, specialist *entity.Specialist) error {
	return db.WithContext(ctx).Create(specialist).Error
}

func (r *specialistRepository) FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.Specialist, error) {
	return r.first(db.WithContext(ctx).Where("specialist_name = ?", name))
}

func (r *specialistRepository) FindActiveByName(ctx context.Context, db *gorm.DB, name string) (*entity.Specialist, error) {
	return r.first(db.WithContext(ctx).Where("specialist_name = ? AND is_active = ?", name, true))
}

// FindAll returns specialists in storage order.
func (r *specialistRepository) FindAll(ctx context.Context, db *gorm.DB, activeOnly bool) ([]entity.Specialist, error) {
	var specialists []entity.Specialist
	query := db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("id ASC").Find(&specialists).Error
	if err != nil {
		return nil, err
	}
	return specialists, nil
}

func (r *specialistRepository) Deactivate(ctx context.Context, db *gorm.DB, name string) (int64, error) {
	result := db.WithContext(ctx).
		Model(&entity.Specialist{}).
		Where("specialist_name = ?", name).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

func (r *specialistRepository) first(query *gorm.DB) (*entity.Specialist, error) {
	var specialist entity.Specialist
	err := query.First(&specialist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialist, nil
}
