package services

import (
	"errors"

	"elgrace_backend/internal/logger"
	"elgrace_backend/internal/models"
	"elgrace_backend/internal/repositories"
	"elgrace_backend/internal/services/dto"
	"elgrace_backend/pkg/apperrors"
)

type CastingService interface {
	Create(brandID string, req dto.CreateCastingRequest) (*dto.CastingResponse, error)
	GetByID(id string, countView bool) (*dto.CastingResponse, error)
	Update(brandID, id string, req dto.UpdateCastingRequest) (*dto.CastingResponse, error)
	UpdateStatus(actorRole models.UserRole, brandID, id string, status models.CastingStatus) (*dto.CastingResponse, error)
	Delete(brandID, id string) error
	ListOpen(page, pageSize int) (*dto.CastingListResponse, error)
	ListByBrand(brandID string, q dto.CastingListQuery) (*dto.CastingListResponse, error)
}

type CastingServiceImpl struct {
	castingRepo repositories.CastingRepository
}

func NewCastingService(castingRepo repositories.CastingRepository) CastingService {
	return &CastingServiceImpl{castingRepo: castingRepo}
}

func (s *CastingServiceImpl) Create(brandID string, req dto.CreateCastingRequest) (*dto.CastingResponse, error) {
	casting := &models.Casting{
		BrandID:             brandID,
		Title:               req.Title,
		Description:         req.Description,
		City:                req.City,
		BudgetMin:           req.BudgetMin,
		BudgetMax:           req.BudgetMax,
		ApplicationDeadline: req.ApplicationDeadline,
		ShootDate:           req.ShootDate,
		Status:              models.CastingStatusDraft,
	}

	if err := s.castingRepo.Create(casting); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("casting created", "casting_id", casting.ID, "brand_id", brandID)
	resp := dto.NewCastingResponse(casting)
	return &resp, nil
}

func (s *CastingServiceImpl) GetByID(id string, countView bool) (*dto.CastingResponse, error) {
	casting, err := s.castingRepo.FindByID(id)
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	if countView {
		if err := s.castingRepo.IncrementViews(id); err != nil {
			logger.Warn("failed to count casting view", "casting_id", id, "error", err)
		} else {
			casting.Views++
		}
	}

	resp := dto.NewCastingResponse(casting)
	return &resp, nil
}

func (s *CastingServiceImpl) Update(brandID, id string, req dto.UpdateCastingRequest) (*dto.CastingResponse, error) {
	casting, err := s.castingRepo.FindByID(id)
	if err != nil {
		return nil, s.mapRepoError(err)
	}
	if casting.BrandID != brandID {
		return nil, apperrors.NewForbiddenError("casting belongs to another brand")
	}
	if casting.Status == models.CastingStatusClosed {
		return nil, apperrors.ErrInvalidOperation("casting", "Closed castings cannot be edited")
	}

	updates := map[string]interface{}{
		"title":                req.Title,
		"description":          req.Description,
		"city":                 req.City,
		"budget_min":           req.BudgetMin,
		"budget_max":           req.BudgetMax,
		"application_deadline": req.ApplicationDeadline,
		"shoot_date":           req.ShootDate,
	}
	if err := s.castingRepo.Update(id, updates); err != nil {
		return nil, s.mapRepoError(err)
	}

	return s.GetByID(id, false)
}

// UpdateStatus moves a casting along its lifecycle. Brands may submit drafts
// for review and close their castings; opening requires an admin.
func (s *CastingServiceImpl) UpdateStatus(actorRole models.UserRole, brandID, id string, status models.CastingStatus) (*dto.CastingResponse, error) {
	casting, err := s.castingRepo.FindByID(id)
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	if actorRole != models.UserRoleAdmin {
		if casting.BrandID != brandID {
			return nil, apperrors.NewForbiddenError("casting belongs to another brand")
		}
		if status == models.CastingStatusOpen {
			return nil, apperrors.NewForbiddenError("only admins can publish castings")
		}
	}

	if casting.Status == status {
		resp := dto.NewCastingResponse(casting)
		return &resp, nil
	}
	if !casting.Status.CanTransitionTo(status) {
		return nil, apperrors.ErrInvalidTransition("casting", string(casting.Status), string(status))
	}

	if err := s.castingRepo.UpdateStatus(id, status); err != nil {
		return nil, s.mapRepoError(err)
	}
	casting.Status = status

	resp := dto.NewCastingResponse(casting)
	return &resp, nil
}

func (s *CastingServiceImpl) Delete(brandID, id string) error {
	casting, err := s.castingRepo.FindByID(id)
	if err != nil {
		return s.mapRepoError(err)
	}
	if casting.BrandID != brandID {
		return apperrors.NewForbiddenError("casting belongs to another brand")
	}
	if err := s.castingRepo.Delete(id); err != nil {
		return s.mapRepoError(err)
	}
	return nil
}

func (s *CastingServiceImpl) ListOpen(page, pageSize int) (*dto.CastingListResponse, error) {
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = 20
	}

	castings, total, err := s.castingRepo.FindOpen(page, pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return listResponse(castings, total, page, pageSize), nil
}

func (s *CastingServiceImpl) ListByBrand(brandID string, q dto.CastingListQuery) (*dto.CastingListResponse, error) {
	page := q.Page
	if page == 0 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize == 0 {
		pageSize = 20
	}

	criteria := repositories.CastingListCriteria{
		BrandID:  brandID,
		City:     q.City,
		Page:     page,
		PageSize: pageSize,
	}
	if q.Status != "" {
		status, ok := models.CastingStatusFromUI(q.Status)
		if !ok {
			return nil, apperrors.NewBadRequestError("Unknown status: " + q.Status)
		}
		criteria.Status = status
	}

	castings, total, err := s.castingRepo.FindAll(criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return listResponse(castings, total, page, pageSize), nil
}

func (s *CastingServiceImpl) mapRepoError(err error) error {
	if errors.Is(err, repositories.ErrCastingNotFound) {
		return apperrors.ErrNotFound(err)
	}
	return apperrors.InternalError(err)
}

func listResponse(castings []models.Casting, total int64, page, pageSize int) *dto.CastingListResponse {
	resp := &dto.CastingListResponse{
		Castings: make([]dto.CastingResponse, 0, len(castings)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range castings {
		resp.Castings = append(resp.Castings, dto.NewCastingResponse(&castings[i]))
	}
	return resp
}
