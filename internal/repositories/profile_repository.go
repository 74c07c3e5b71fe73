package repositories

import (
	"errors"
	"time"

	"elgrace_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
)

type ProfileRepository interface {
	Create(profile *models.Profile) error
	FindByID(id string) (*models.Profile, error)
	FindByUserID(userID string) (*models.Profile, error)
	FindByModelCode(code string) (*models.Profile, error)
	Update(profile *models.Profile) error
	UpdateStatus(profileID string, status models.ProfileStatus) error

	// Upsert writes the profile keyed on model_code; model_code itself is
	// never rewritten on conflict.
	Upsert(profile *models.Profile) error

	// FindOnlineWithMedia feeds the directory pipeline: ONLINE profiles
	// with their media preloaded, oldest first.
	FindOnlineWithMedia() ([]models.Profile, error)

	FindAll(criteria ProfileListCriteria) ([]models.Profile, int64, error)

	// MaxModelCodeSuffix scans for the highest numeric suffix among codes
	// matching M-<digits>. Returns 0 when none exist.
	MaxModelCodeSuffix() (int64, error)
}

// ProfileListCriteria drives the admin listing.
type ProfileListCriteria struct {
	Status   models.ProfileStatus `form:"status"`
	Category string               `form:"category"`
	Query    string               `form:"query"`
	Page     int                  `form:"page"`
	PageSize int                  `form:"page_size"`
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) Create(profile *models.Profile) error {
	if profile.UserID != "" {
		var existing models.Profile
		if err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
			return ErrProfileAlreadyExists
		}
	}
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindByID(id string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Preload("Media").First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindByUserID(userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Preload("Media").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindByModelCode(code string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Preload("Media").Where("model_code = ?", code).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) Update(profile *models.Profile) error {
	// model_code and status are deliberately absent: the code is immutable
	// and status moves only through UpdateStatus.
	result := r.db.Model(profile).Updates(map[string]interface{}{
		"full_name":             profile.FullName,
		"dob":                   profile.DOB,
		"gender":                profile.Gender,
		"phone":                 profile.Phone,
		"email":                 profile.Email,
		"country":               profile.Country,
		"state":                 profile.State,
		"city":                  profile.City,
		"category":              profile.Category,
		"instagram":             profile.Instagram,
		"experience_level":      profile.ExperienceLevel,
		"languages":             profile.Languages,
		"skills":                profile.Skills,
		"open_to_travel":        profile.OpenToTravel,
		"ramp_walk_experience":  profile.RampWalkExperience,
		"height_feet":           profile.HeightFeet,
		"height_inches":         profile.HeightInches,
		"bust_chest":            profile.BustChest,
		"waist":                 profile.Waist,
		"hips":                  profile.Hips,
		"shoe_size":             profile.ShoeSize,
		"size":                  profile.Size,
		"min_budget_half_day":   profile.MinBudgetHalfDay,
		"min_budget_full_day":   profile.MinBudgetFullDay,
		"cover_photo_url":       profile.CoverPhotoURL,
		"portfolio_folder_link": profile.PortfolioFolderLink,
		"intro_video_url":       profile.IntroVideoURL,
		"updated_at":            time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) UpdateStatus(profileID string, status models.ProfileStatus) error {
	result := r.db.Model(&models.Profile{}).Where("id = ?", profileID).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) Upsert(profile *models.Profile) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "model_code"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"full_name", "dob", "gender", "phone", "email",
			"country", "state", "city", "category", "instagram",
			"experience_level", "languages", "skills",
			"open_to_travel", "ramp_walk_experience",
			"height_feet", "height_inches", "bust_chest", "waist", "hips",
			"shoe_size", "size", "min_budget_half_day", "min_budget_full_day",
			"cover_photo_url", "portfolio_folder_link", "intro_video_url",
			"status", "updated_at",
		}),
	}).Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindOnlineWithMedia() ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.Preload("Media").
		Where("status = ?", models.ProfileStatusOnline).
		Order("created_at ASC").
		Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) FindAll(criteria ProfileListCriteria) ([]models.Profile, int64, error) {
	var profiles []models.Profile
	query := r.db.Model(&models.Profile{})

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.Category != "" {
		query = query.Where("category = ?", criteria.Category)
	}
	if criteria.Query != "" {
		search := "%" + criteria.Query + "%"
		query = query.Where("full_name ILIKE ? OR model_code ILIKE ? OR email ILIKE ?", search, search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	pageSize := criteria.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	err := query.Preload("Media").
		Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&profiles).Error
	return profiles, total, err
}

func (r *ProfileRepositoryImpl) MaxModelCodeSuffix() (int64, error) {
	var suffix int64
	err := r.db.Model(&models.Profile{}).
		Where("model_code ~ ?", `^M-[0-9]+$`).
		Select(`COALESCE(MAX(CAST(SUBSTRING(model_code FROM 'M-([0-9]+)') AS BIGINT)), 0)`).
		Scan(&suffix).Error
	return suffix, err
}
