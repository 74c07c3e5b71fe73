package services

import (
	"errors"

	"elgrace_backend/internal/logger"
	"elgrace_backend/internal/models"
	"elgrace_backend/internal/repositories"
	"elgrace_backend/internal/services/dto"
	"elgrace_backend/pkg/apperrors"
)

type ApplicationService interface {
	Apply(modelUserID, castingID string, req dto.ApplyToCastingRequest) (*dto.ApplicationResponse, error)
	ListForCasting(brandID, castingID string) ([]dto.ApplicationResponse, error)
	ListForModel(modelUserID string) ([]dto.ApplicationResponse, error)
	UpdateStatus(brandID, applicationID string, status models.ApplicationStatus) (*dto.ApplicationResponse, error)
	Withdraw(modelUserID, applicationID string) error
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	castingRepo     repositories.CastingRepository
	profileRepo     repositories.ProfileRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	castingRepo repositories.CastingRepository,
	profileRepo repositories.ProfileRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		castingRepo:     castingRepo,
		profileRepo:     profileRepo,
	}
}

func (s *ApplicationServiceImpl) Apply(modelUserID, castingID string, req dto.ApplyToCastingRequest) (*dto.ApplicationResponse, error) {
	profile, err := s.profileRepo.FindByUserID(modelUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrInvalidOperation("application", "Create a profile before applying")
		}
		return nil, apperrors.InternalError(err)
	}
	if profile.Status != models.ProfileStatusOnline {
		return nil, apperrors.ErrInvalidOperation("application", "Only live profiles can apply to castings")
	}

	casting, err := s.castingRepo.FindByID(castingID)
	if err != nil {
		if errors.Is(err, repositories.ErrCastingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if casting.Status != models.CastingStatusOpen {
		return nil, apperrors.ErrInvalidOperation("application", "Casting is not accepting applications")
	}

	app := &models.CastingApplication{
		CastingID: castingID,
		ModelID:   profile.ID,
		Message:   req.Message,
		Status:    models.ApplicationStatusApplied,
	}
	if err := s.applicationRepo.Create(app); err != nil {
		if errors.Is(err, repositories.ErrAlreadyApplied) {
			return nil, apperrors.ErrConflict(err, "application", "Already applied to this casting")
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.castingRepo.IncrementApplications(castingID); err != nil {
		logger.Warn("failed to count application", "casting_id", castingID, "error", err)
	}

	logger.Info("application submitted", "casting_id", castingID, "model_id", profile.ID)
	resp := dto.NewApplicationResponse(app)
	return &resp, nil
}

func (s *ApplicationServiceImpl) ListForCasting(brandID, castingID string) ([]dto.ApplicationResponse, error) {
	casting, err := s.castingRepo.FindByID(castingID)
	if err != nil {
		if errors.Is(err, repositories.ErrCastingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if casting.BrandID != brandID {
		return nil, apperrors.NewForbiddenError("casting belongs to another brand")
	}

	apps, err := s.applicationRepo.FindByCastingID(castingID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applicationResponses(apps), nil
}

func (s *ApplicationServiceImpl) ListForModel(modelUserID string) ([]dto.ApplicationResponse, error) {
	profile, err := s.profileRepo.FindByUserID(modelUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return []dto.ApplicationResponse{}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	apps, err := s.applicationRepo.FindByModelID(profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applicationResponses(apps), nil
}

func (s *ApplicationServiceImpl) UpdateStatus(brandID, applicationID string, status models.ApplicationStatus) (*dto.ApplicationResponse, error) {
	app, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if app.Casting == nil || app.Casting.BrandID != brandID {
		return nil, apperrors.NewForbiddenError("application belongs to another brand's casting")
	}

	if !app.Status.CanTransitionTo(status) {
		return nil, apperrors.ErrInvalidTransition("application", string(app.Status), string(status))
	}

	if err := s.applicationRepo.UpdateStatus(applicationID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	app.Status = status

	resp := dto.NewApplicationResponse(app)
	return &resp, nil
}

func (s *ApplicationServiceImpl) Withdraw(modelUserID, applicationID string) error {
	profile, err := s.profileRepo.FindByUserID(modelUserID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	app, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if app.ModelID != profile.ID {
		return apperrors.NewForbiddenError("application belongs to another model")
	}
	if !app.Status.CanTransitionTo(models.ApplicationStatusCancelled) {
		return apperrors.ErrInvalidTransition("application", string(app.Status), string(models.ApplicationStatusCancelled))
	}

	return s.applicationRepo.UpdateStatus(applicationID, models.ApplicationStatusCancelled)
}

func applicationResponses(apps []models.CastingApplication) []dto.ApplicationResponse {
	out := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, dto.NewApplicationResponse(&apps[i]))
	}
	return out
}
