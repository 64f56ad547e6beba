package usecase

import (
	"context"
	"strings"
	"time"

	"patient-registry/internal/converter"
	"patient-registry/internal/delivery/dto"
	"patient-registry/internal/domain/entity"
	"patient-registry/internal/domain/repository"
	"patient-registry/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientUsecase interface {
	AddPatient(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, id int64) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, id int64, req *dto.PatientRequest) (*dto.PatientResponse, error)
	DeletePatients(ctx context.Context, ids []int64) (int64, error)
	ListAll(ctx context.Context) (*dto.PatientListResponse, error)
	FilterBySpecialist(ctx context.Context, specialist string) (*dto.PatientListResponse, error)
	FilterByDateRange(ctx context.Context, startDate, endDate string) (*dto.PatientListResponse, error)
	SearchByCode(ctx context.Context, code, specialist string) (*dto.PatientListResponse, error)
	ListPatients(ctx context.Context, query *dto.PatientQuery) (*dto.PatientListResponse, error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	validator   *validator.CustomValidator
	patientRepo repository.PatientRepository
	now         func() time.Time
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	patientRepo repository.PatientRepository,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		validator:   validator,
		patientRepo: patientRepo,
		now:         time.Now,
	}
}

func (u *patientUsecase) AddPatient(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	if err := u.validate(req); err != nil {
		return nil, err
	}

	now := u.now()
	patient := converter.PatientRequestToEntity(req)
	patient.SubmissionDate = now.Format(entity.SubmissionDateLayout)
	patient.SubmissionTime = now.Format(entity.SubmissionTimeLayout)

	if err := u.patientRepo.Create(ctx, u.db, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, storageError(err)
	}

	u.log.WithField("patient_id", patient.ID).Info("Patient registered")

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id int64) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, storageError(err)
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id int64, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	if err := u.validate(req); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, storageError(err)
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	// Only the content fields change; id and the submission stamp stay.
	patient.PatientName = req.PatientName
	patient.LastName = req.LastName
	patient.Age = req.Age
	patient.Ward = req.Ward
	patient.PatientCode = req.PatientCode
	patient.Specialist = req.Specialist

	if _, err := u.patientRepo.UpdateContent(ctx, tx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, storageError(err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, storageError(err)
	}

	return converter.PatientToResponse(patient), nil
}

// DeletePatients removes every listed patient. Ids that do not exist are
// skipped; the returned count tells how many rows were actually removed.
func (u *patientUsecase) DeletePatients(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, newValidationError("ids", "select at least one patient to delete")
	}

	deleted, err := u.patientRepo.DeleteByIDs(ctx, u.db, ids)
	if err != nil {
		u.log.Warnf("Failed to delete patients: %+v", err)
		return 0, storageError(err)
	}

	if skipped := int64(len(ids)) - deleted; skipped > 0 {
		u.log.WithField("skipped", skipped).Info("Some patients were already gone")
	}

	return deleted, nil
}

func (u *patientUsecase) ListAll(ctx context.Context) (*dto.PatientListResponse, error) {
	return u.find(ctx, nil)
}

func (u *patientUsecase) FilterBySpecialist(ctx context.Context, specialist string) (*dto.PatientListResponse, error) {
	return u.find(ctx, &entity.PatientFilter{Specialist: specialist})
}

func (u *patientUsecase) FilterByDateRange(ctx context.Context, startDate, endDate string) (*dto.PatientListResponse, error) {
	if err := requireDate("from", startDate); err != nil {
		return nil, err
	}
	if err := requireDate("to", endDate); err != nil {
		return nil, err
	}
	return u.find(ctx, &entity.PatientFilter{StartDate: startDate, EndDate: endDate})
}

// SearchByCode with an empty or blank code behaves as FilterBySpecialist.
func (u *patientUsecase) SearchByCode(ctx context.Context, code, specialist string) (*dto.PatientListResponse, error) {
	return u.find(ctx, &entity.PatientFilter{
		Code:       strings.TrimSpace(code),
		Specialist: strings.TrimSpace(specialist),
	})
}

// ListPatients applies every filter present in the query at once.
func (u *patientUsecase) ListPatients(ctx context.Context, query *dto.PatientQuery) (*dto.PatientListResponse, error) {
	filter := converter.PatientQueryToFilter(query)
	if filter.StartDate != "" {
		if err := requireDate("from", filter.StartDate); err != nil {
			return nil, err
		}
	}
	if filter.EndDate != "" {
		if err := requireDate("to", filter.EndDate); err != nil {
			return nil, err
		}
	}
	return u.find(ctx, filter)
}

func (u *patientUsecase) find(ctx context.Context, filter *entity.PatientFilter) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, storageError(err)
	}

	responses := converter.PatientsToResponses(patients)

	return &dto.PatientListResponse{
		Patients: responses,
		Total:    len(responses),
	}, nil
}

func (u *patientUsecase) validate(req *dto.PatientRequest) error {
	if req == nil {
		return newValidationError("request", "patient data is required")
	}
	req.Normalize()
	if err := u.validator.Validate(req); err != nil {
		return &ValidationError{Fields: u.validator.FormatValidationErrors(err)}
	}
	return nil
}

func requireDate(field, value string) error {
	if _, err := time.Parse(entity.SubmissionDateLayout, value); err != nil {
		return newValidationError(field, field+" must be a date in YYYY-MM-DD format")
	}
	return nil
}
