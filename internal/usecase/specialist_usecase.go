package usecase

import (
	"context"

	"patient-registry/internal/converter"
	"patient-registry/internal/delivery/dto"
	"patient-registry/internal/domain/entity"
	"patient-registry/internal/domain/repository"
	"patient-registry/internal/service"
	"patient-registry/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SpecialistUsecase interface {
	ListActiveNames(ctx context.Context) (*dto.SpecialistNamesResponse, error)
	ListAllNames(ctx context.Context) (*dto.SpecialistNamesResponse, error)
	AddSpecialist(ctx context.Context, req *dto.SpecialistRequest) (*dto.SpecialistResponse, error)
	DeactivateSpecialist(ctx context.Context, req *dto.SpecialistRequest) error
}

type specialistUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	validator      *validator.CustomValidator
	specialistRepo repository.SpecialistRepository
	patientRepo    repository.PatientRepository
	cache          service.SpecialistCache
}

func NewSpecialistUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	specialistRepo repository.SpecialistRepository,
	patientRepo repository.PatientRepository,
	cache service.SpecialistCache,
) SpecialistUsecase {
	return &specialistUsecase{
		db:             db,
		log:            log,
		validator:      validator,
		specialistRepo: specialistRepo,
		patientRepo:    patientRepo,
		cache:          cache,
	}
}

func (u *specialistUsecase) ListActiveNames(ctx context.Context) (*dto.SpecialistNamesResponse, error) {
	return u.listNames(ctx, true)
}

func (u *specialistUsecase) ListAllNames(ctx context.Context) (*dto.SpecialistNamesResponse, error) {
	return u.listNames(ctx, false)
}

func (u *specialistUsecase) AddSpecialist(ctx context.Context, req *dto.SpecialistRequest) (*dto.SpecialistResponse, error) {
	if err := u.validate(req); err != nil {
		return nil, err
	}

	// Uniqueness is checked here; the table carries no unique constraint.
	existing, err := u.specialistRepo.FindByName(ctx, u.db, req.Name)
	if err != nil {
		u.log.Warnf("Failed to find specialist: %+v", err)
		return nil, storageError(err)
	}
	if existing != nil {
		return nil, ErrDuplicateSpecialist
	}

	active := true
	specialist := &entity.Specialist{
		SpecialistName: req.Name,
		IsActive:       &active,
	}
	if err := u.specialistRepo.Create(ctx, u.db, specialist); err != nil {
		u.log.Warnf("Failed to create specialist: %+v", err)
		return nil, storageError(err)
	}

	u.cache.Invalidate(ctx)

	return converter.SpecialistToResponse(specialist), nil
}

// DeactivateSpecialist hides an active specialist from new assignments.
// It is refused while any patient record still names the specialist.
func (u *specialistUsecase) DeactivateSpecialist(ctx context.Context, req *dto.SpecialistRequest) error {
	if err := u.validate(req); err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	specialist, err := u.specialistRepo.FindActiveByName(ctx, tx, req.Name)
	if err != nil {
		u.log.Warnf("Failed to find specialist: %+v", err)
		return storageError(err)
	}
	if specialist == nil {
		return ErrSpecialistNotFoundOrInactive
	}

	references, err := u.patientRepo.CountBySpecialist(ctx, tx, req.Name)
	if err != nil {
		u.log.Warnf("Failed to count patients of specialist: %+v", err)
		return storageError(err)
	}
	if references > 0 {
		return ErrSpecialistInUse
	}

	if _, err := u.specialistRepo.Deactivate(ctx, tx, req.Name); err != nil {
		u.log.Warnf("Failed to deactivate specialist: %+v", err)
		return storageError(err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return storageError(err)
	}

	u.cache.Invalidate(ctx)

	return nil
}

func (u *specialistUsecase) listNames(ctx context.Context, activeOnly bool) (*dto.SpecialistNamesResponse, error) {
	if names, ok := u.cache.GetNames(ctx, activeOnly); ok {
		return &dto.SpecialistNamesResponse{Names: names, Total: len(names)}, nil
	}

	specialists, err := u.specialistRepo.FindAll(ctx, u.db, activeOnly)
	if err != nil {
		u.log.Warnf("Failed to find specialists: %+v", err)
		return nil, storageError(err)
	}

	names := converter.SpecialistNames(specialists)
	u.cache.SetNames(ctx, activeOnly, names)

	return &dto.SpecialistNamesResponse{
		Names: names,
		Total: len(names),
	}, nil
}

func (u *specialistUsecase) validate(req *dto.SpecialistRequest) error {
	if req == nil {
		return newValidationError("name", "name is required")
	}
	req.Normalize()
	if err := u.validator.Validate(req); err != nil {
		return &ValidationError{Fields: u.validator.FormatValidationErrors(err)}
	}
	return nil
}
