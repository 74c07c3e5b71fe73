package services

import (
	"errors"

	"elgrace_backend/internal/logger"
	"elgrace_backend/internal/models"
	"elgrace_backend/internal/repositories"
	"elgrace_backend/internal/services/dto"
	"elgrace_backend/pkg/apperrors"
)

type BookingService interface {
	Create(brandID string, req dto.CreateBookingRequest) (*dto.BookingResponse, error)
	ListForBrand(brandID string) ([]dto.BookingResponse, error)
	ListForModel(modelUserID string) ([]dto.BookingResponse, error)
	UpdateStatus(actorUserID string, actorRole models.UserRole, bookingID string, status models.BookingStatus) (*dto.BookingResponse, error)
}

type BookingServiceImpl struct {
	bookingRepo repositories.BookingRepository
	profileRepo repositories.ProfileRepository
}

func NewBookingService(bookingRepo repositories.BookingRepository, profileRepo repositories.ProfileRepository) BookingService {
	return &BookingServiceImpl{bookingRepo: bookingRepo, profileRepo: profileRepo}
}

func (s *BookingServiceImpl) Create(brandID string, req dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	profile, err := s.profileRepo.FindByID(req.ModelID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if profile.Status != models.ProfileStatusOnline {
		return nil, apperrors.ErrInvalidOperation("booking", "Model is not available for booking")
	}

	booking := &models.BookingRequest{
		BrandID: brandID,
		ModelID: req.ModelID,
		Message: req.Message,
		Date:    req.Date,
		Status:  models.BookingStatusPending,
	}
	if err := s.bookingRepo.Create(booking); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("booking requested", "booking_id", booking.ID, "model_id", req.ModelID)
	resp := dto.NewBookingResponse(booking)
	return &resp, nil
}

func (s *BookingServiceImpl) ListForBrand(brandID string) ([]dto.BookingResponse, error) {
	bookings, err := s.bookingRepo.FindByBrandID(brandID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return bookingResponses(bookings), nil
}

func (s *BookingServiceImpl) ListForModel(modelUserID string) ([]dto.BookingResponse, error) {
	profile, err := s.profileRepo.FindByUserID(modelUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return []dto.BookingResponse{}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	bookings, err := s.bookingRepo.FindByModelID(profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return bookingResponses(bookings), nil
}

// UpdateStatus enforces who may move a booking: the model approves or
// rejects, the requesting brand cancels.
func (s *BookingServiceImpl) UpdateStatus(actorUserID string, actorRole models.UserRole, bookingID string, status models.BookingStatus) (*dto.BookingResponse, error) {
	booking, err := s.bookingRepo.FindByID(bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrBookingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	switch actorRole {
	case models.UserRoleAdmin:
		// admins may apply any legal transition
	case models.UserRoleBrand:
		if booking.BrandID != actorUserID {
			return nil, apperrors.NewForbiddenError("booking belongs to another brand")
		}
		if status != models.BookingStatusCancelled {
			return nil, apperrors.NewForbiddenError("brands can only cancel their requests")
		}
	case models.UserRoleModel:
		profile, err := s.profileRepo.FindByUserID(actorUserID)
		if err != nil || booking.ModelID != profile.ID {
			return nil, apperrors.NewForbiddenError("booking belongs to another model")
		}
		if status != models.BookingStatusApproved && status != models.BookingStatusRejected {
			return nil, apperrors.NewForbiddenError("models can only approve or reject requests")
		}
	default:
		return nil, apperrors.NewForbiddenError("unknown role")
	}

	if !booking.Status.CanTransitionTo(status) {
		return nil, apperrors.ErrInvalidTransition("booking", string(booking.Status), string(status))
	}

	if err := s.bookingRepo.UpdateStatus(bookingID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	booking.Status = status

	resp := dto.NewBookingResponse(booking)
	return &resp, nil
}

func bookingResponses(bookings []models.BookingRequest) []dto.BookingResponse {
	out := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, dto.NewBookingResponse(&bookings[i]))
	}
	return out
}
