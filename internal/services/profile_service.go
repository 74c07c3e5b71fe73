package services

import (
	"errors"
	"fmt"

	"elgrace_backend/internal/email"
	"elgrace_backend/internal/logger"
	"elgrace_backend/internal/models"
	"elgrace_backend/internal/repositories"
	"elgrace_backend/internal/services/dto"
	"elgrace_backend/pkg/apperrors"
)

type ProfileService interface {
	Create(userID string, req dto.CreateProfileRequest) (*dto.ProfileResponse, error)
	GetByID(id string) (*dto.ProfileResponse, error)
	GetByUserID(userID string) (*dto.ProfileResponse, error)
	GetByModelCode(code string) (*dto.ProfileResponse, error)
	Update(userID string, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	AdminUpsert(req dto.AdminUpsertProfileRequest) (*dto.ProfileResponse, error)
	UpdateStatus(id string, status models.ProfileStatus) (*dto.ProfileResponse, error)
	List(q dto.ProfileListQuery) (*dto.ProfileListResponse, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
	codes       ModelCodeService
	mailer      email.Provider
	baseURL     string
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	codes ModelCodeService,
	mailer email.Provider,
	baseURL string,
) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		codes:       codes,
		mailer:      mailer,
		baseURL:     baseURL,
	}
}

func (s *ProfileServiceImpl) Create(userID string, req dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	if _, err := s.profileRepo.FindByUserID(userID); err == nil {
		return nil, apperrors.ErrConflict(repositories.ErrProfileAlreadyExists, "profile", "User already has a profile")
	} else if !errors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.InternalError(err)
	}

	profile := profileFromRequest(req)
	profile.UserID = userID
	profile.ModelCode = s.codes.Allocate()
	profile.Status = models.ProfileStatusUnderReview

	if err := s.profileRepo.Create(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("profile created", "profile_id", profile.ID, "model_code", profile.ModelCode)
	resp := dto.NewProfileResponse(profile)
	return &resp, nil
}

func (s *ProfileServiceImpl) GetByID(id string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(id)
	if err != nil {
		return nil, s.mapRepoError(err)
	}
	resp := dto.NewProfileResponseWithRoles(profile, s.baseURL)
	return &resp, nil
}

func (s *ProfileServiceImpl) GetByUserID(userID string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, s.mapRepoError(err)
	}
	resp := dto.NewProfileResponseWithRoles(profile, s.baseURL)
	return &resp, nil
}

func (s *ProfileServiceImpl) GetByModelCode(code string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByModelCode(code)
	if err != nil {
		return nil, s.mapRepoError(err)
	}
	resp := dto.NewProfileResponseWithRoles(profile, s.baseURL)
	return &resp, nil
}

func (s *ProfileServiceImpl) Update(userID string, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	applyRequest(profile, req)

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, s.mapRepoError(err)
	}

	resp := dto.NewProfileResponse(profile)
	return &resp, nil
}

// AdminUpsert imports or overwrites a profile keyed on its model code.
// New records default to UNDER_REVIEW unless the request names a status.
func (s *ProfileServiceImpl) AdminUpsert(req dto.AdminUpsertProfileRequest) (*dto.ProfileResponse, error) {
	profile := profileFromRequest(req.CreateProfileRequest)
	profile.ModelCode = req.ModelCode
	if req.Status != "" {
		profile.Status = req.Status
	} else {
		profile.Status = models.ProfileStatusUnderReview
	}

	if err := s.profileRepo.Upsert(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	stored, err := s.profileRepo.FindByModelCode(req.ModelCode)
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	logger.Info("profile upserted", "model_code", req.ModelCode)
	resp := dto.NewProfileResponse(stored)
	return &resp, nil
}

func (s *ProfileServiceImpl) UpdateStatus(id string, status models.ProfileStatus) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(id)
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	if profile.Status == status {
		resp := dto.NewProfileResponse(profile)
		return &resp, nil
	}
	if !profile.Status.CanTransitionTo(status) {
		return nil, apperrors.ErrInvalidTransition("profile", string(profile.Status), string(status))
	}

	if err := s.profileRepo.UpdateStatus(id, status); err != nil {
		return nil, s.mapRepoError(err)
	}
	profile.Status = status

	if status == models.ProfileStatusOnline {
		go s.notifyApproved(profile)
	}

	resp := dto.NewProfileResponse(profile)
	return &resp, nil
}

func (s *ProfileServiceImpl) List(q dto.ProfileListQuery) (*dto.ProfileListResponse, error) {
	page := q.Page
	if page == 0 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize == 0 {
		pageSize = 20
	}

	profiles, total, err := s.profileRepo.FindAll(repositories.ProfileListCriteria{
		Status:   models.ProfileStatus(q.Status),
		Category: q.Category,
		Query:    q.Query,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.ProfileListResponse{
		Profiles: make([]dto.ProfileResponse, 0, len(profiles)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range profiles {
		resp.Profiles = append(resp.Profiles, dto.NewProfileResponse(&profiles[i]))
	}
	return resp, nil
}

func (s *ProfileServiceImpl) notifyApproved(profile *models.Profile) {
	if s.mailer == nil || profile.Email == "" {
		return
	}
	body := fmt.Sprintf("<p>Hi %s,</p><p>Your profile %s is now live.</p>", profile.FullName, profile.ModelCode)
	if err := s.mailer.Send(profile.Email, "Your profile is live", body); err != nil {
		logger.Warn("failed to send approval email", "model_code", profile.ModelCode, "error", err)
	}
}

func (s *ProfileServiceImpl) mapRepoError(err error) error {
	if errors.Is(err, repositories.ErrProfileNotFound) {
		return apperrors.ErrNotFound(err)
	}
	return apperrors.InternalError(err)
}

func profileFromRequest(req dto.CreateProfileRequest) *models.Profile {
	p := &models.Profile{
		FullName:            req.FullName,
		DOB:                 req.DOB,
		Gender:              req.Gender,
		Phone:               req.Phone,
		Email:               req.Email,
		Country:             req.Country,
		State:               req.State,
		City:                req.City,
		Category:            models.ProfileCategoryModel,
		ExperienceLevel:     req.ExperienceLevel,
		Languages:           req.Languages,
		Skills:              req.Skills,
		OpenToTravel:        req.OpenToTravel,
		RampWalkExperience:  req.RampWalkExperience,
		HeightFeet:          req.HeightFeet,
		HeightInches:        req.HeightInches,
		BustChest:           req.BustChest,
		Waist:               req.Waist,
		Hips:                req.Hips,
		ShoeSize:            req.ShoeSize,
		Size:                req.Size,
		MinBudgetHalfDay:    req.MinBudgetHalfDay,
		MinBudgetFullDay:    req.MinBudgetFullDay,
		PortfolioFolderLink: req.PortfolioFolderLink,
	}
	p.SetInstagram(instagramFromDTO(req.Instagram))
	return p
}

func applyRequest(p *models.Profile, req dto.UpdateProfileRequest) {
	p.FullName = req.FullName
	p.DOB = req.DOB
	p.Gender = req.Gender
	p.Phone = req.Phone
	p.Email = req.Email
	p.Country = req.Country
	p.State = req.State
	p.City = req.City
	p.ExperienceLevel = req.ExperienceLevel
	p.Languages = req.Languages
	p.Skills = req.Skills
	p.OpenToTravel = req.OpenToTravel
	p.RampWalkExperience = req.RampWalkExperience
	p.HeightFeet = req.HeightFeet
	p.HeightInches = req.HeightInches
	p.BustChest = req.BustChest
	p.Waist = req.Waist
	p.Hips = req.Hips
	p.ShoeSize = req.ShoeSize
	p.Size = req.Size
	p.MinBudgetHalfDay = req.MinBudgetHalfDay
	p.MinBudgetFullDay = req.MinBudgetFullDay
	p.PortfolioFolderLink = req.PortfolioFolderLink
	p.SetInstagram(instagramFromDTO(req.Instagram))
}

func instagramFromDTO(in []dto.InstagramAccountDTO) []models.InstagramAccount {
	accounts := make([]models.InstagramAccount, 0, len(in))
	for _, a := range in {
		accounts = append(accounts, models.InstagramAccount{Handle: a.Handle, Followers: a.Followers})
	}
	return accounts
}
