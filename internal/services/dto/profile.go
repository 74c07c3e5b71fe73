package dto

import (
	"strconv"
	"time"

	"elgrace_backend/internal/media"
	"elgrace_backend/internal/models"
)

type InstagramAccountDTO struct {
	Handle    string `json:"handle" binding:"required"`
	Followers string `json:"followers"`
}

type CreateProfileRequest struct {
	FullName string `json:"full_name" binding:"required"`
	DOB      string `json:"dob" binding:"omitempty,datetime=2006-01-02"`
	Gender   string `json:"gender" binding:"omitempty,is-gender"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"omitempty,email"`
	Country  string `json:"country"`
	State    string `json:"state"`
	City     string `json:"city"`

	Instagram []InstagramAccountDTO `json:"instagram"`

	ExperienceLevel    string   `json:"experience_level"`
	Languages          []string `json:"languages"`
	Skills             []string `json:"skills"`
	OpenToTravel       bool     `json:"open_to_travel"`
	RampWalkExperience bool     `json:"ramp_walk_experience"`

	HeightFeet   int    `json:"height_feet" binding:"omitempty,min=0,max=9"`
	HeightInches int    `json:"height_inches" binding:"omitempty,min=0,max=11"`
	BustChest    int    `json:"bust_chest"`
	Waist        int    `json:"waist"`
	Hips         int    `json:"hips"`
	ShoeSize     string `json:"shoe_size"`
	Size         string `json:"size"`

	MinBudgetHalfDay float64 `json:"min_budget_half_day" binding:"omitempty,min=0"`
	MinBudgetFullDay float64 `json:"min_budget_full_day" binding:"omitempty,min=0"`

	PortfolioFolderLink string `json:"portfolio_folder_link"`
}

type UpdateProfileRequest = CreateProfileRequest

// AdminUpsertProfileRequest carries the model code explicitly; admin imports
// reuse existing codes instead of allocating new ones.
type AdminUpsertProfileRequest struct {
	ModelCode string `json:"model_code" binding:"required"`
	CreateProfileRequest
	Status models.ProfileStatus `json:"status" binding:"omitempty,is-profile-status"`
}

type UpdateProfileStatusRequest struct {
	Status models.ProfileStatus `json:"status" binding:"required,is-profile-status"`
}

type ProfileListQuery struct {
	Status   string `form:"status" binding:"omitempty,oneof=UNDER_REVIEW ONLINE OFFLINE"`
	Category string `form:"category" binding:"omitempty,oneof=model client"`
	Query    string `form:"q"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

type ProfileResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id,omitempty"`
	ModelCode string `json:"model_code"`

	FullName string `json:"full_name"`
	DOB      string `json:"dob,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Country  string `json:"country,omitempty"`
	State    string `json:"state,omitempty"`
	City     string `json:"city,omitempty"`
	Category string `json:"category"`

	Instagram []models.InstagramAccount `json:"instagram,omitempty"`

	ExperienceLevel    string   `json:"experience_level,omitempty"`
	Languages          []string `json:"languages,omitempty"`
	Skills             []string `json:"skills,omitempty"`
	OpenToTravel       bool     `json:"open_to_travel"`
	RampWalkExperience bool     `json:"ramp_walk_experience"`

	HeightFeet   int    `json:"height_feet,omitempty"`
	HeightInches int    `json:"height_inches,omitempty"`
	BustChest    int    `json:"bust_chest,omitempty"`
	Waist        int    `json:"waist,omitempty"`
	Hips         int    `json:"hips,omitempty"`
	ShoeSize     string `json:"shoe_size,omitempty"`
	Size         string `json:"size,omitempty"`

	MinBudgetHalfDay float64 `json:"min_budget_half_day,omitempty"`
	MinBudgetFullDay float64 `json:"min_budget_full_day,omitempty"`

	CoverPhotoURL       string `json:"cover_photo_url,omitempty"`
	PortfolioFolderLink string `json:"portfolio_folder_link,omitempty"`
	IntroVideoURL       string `json:"intro_video_url,omitempty"`

	Status    models.ProfileStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`

	Media []MediaItemResponse `json:"media,omitempty"`

	MediaRoles *ProfileMediaRoles `json:"media_roles,omitempty"`
}

// ProfileMediaRoles is the media array resolved into the named slots a
// profile page renders. URLs are normalized against the media base.
type ProfileMediaRoles struct {
	ProfileImage    *MediaItemResponse  `json:"profile_image,omitempty"`
	IntroVideo      *MediaItemResponse  `json:"intro_video,omitempty"`
	Portfolio       []MediaItemResponse `json:"portfolio,omitempty"`
	PortfolioVideos []MediaItemResponse `json:"portfolio_videos,omitempty"`
}

type ProfileListResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

func NewProfileResponse(p *models.Profile) ProfileResponse {
	resp := ProfileResponse{
		ID:                  p.ID,
		UserID:              p.UserID,
		ModelCode:           p.ModelCode,
		FullName:            p.FullName,
		DOB:                 p.DOB,
		Gender:              p.Gender,
		Phone:               p.Phone,
		Email:               p.Email,
		Country:             p.Country,
		State:               p.State,
		City:                p.City,
		Category:            p.Category,
		Instagram:           p.GetInstagram(),
		ExperienceLevel:     p.ExperienceLevel,
		Languages:           p.Languages,
		Skills:              p.Skills,
		OpenToTravel:        p.OpenToTravel,
		RampWalkExperience:  p.RampWalkExperience,
		HeightFeet:          p.HeightFeet,
		HeightInches:        p.HeightInches,
		BustChest:           p.BustChest,
		Waist:               p.Waist,
		Hips:                p.Hips,
		ShoeSize:            p.ShoeSize,
		Size:                p.Size,
		MinBudgetHalfDay:    p.MinBudgetHalfDay,
		MinBudgetFullDay:    p.MinBudgetFullDay,
		CoverPhotoURL:       p.CoverPhotoURL,
		PortfolioFolderLink: p.PortfolioFolderLink,
		IntroVideoURL:       p.IntroVideoURL,
		Status:              p.Status,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
	for _, m := range p.Media {
		resp.Media = append(resp.Media, NewMediaItemResponse(&m))
	}
	return resp
}

// NewProfileResponseWithRoles additionally resolves the media list into the
// four display slots with normalized URLs. Used by the profile page reads.
func NewProfileResponseWithRoles(p *models.Profile, baseURL string) ProfileResponse {
	resp := NewProfileResponse(p)
	if len(p.Media) == 0 {
		return resp
	}

	full := media.DeriveRolesFull(p.Media)
	roles := &ProfileMediaRoles{}

	if full.ProfileImage != nil {
		r := normalizedMediaResponse(full.ProfileImage, baseURL)
		roles.ProfileImage = &r
	}
	if full.IntroVideo != nil {
		r := normalizedMediaResponse(full.IntroVideo, baseURL)
		roles.IntroVideo = &r
	}
	for i := range full.Portfolio {
		roles.Portfolio = append(roles.Portfolio, normalizedMediaResponse(&full.Portfolio[i], baseURL))
	}
	for i := range full.PortfolioVideos {
		roles.PortfolioVideos = append(roles.PortfolioVideos, normalizedMediaResponse(&full.PortfolioVideos[i], baseURL))
	}

	resp.MediaRoles = roles
	return resp
}

func normalizedMediaResponse(m *models.MediaItem, baseURL string) MediaItemResponse {
	r := NewMediaItemResponse(m)
	r.MediaURL = media.NormalizeURL(baseURL, m.MediaURL, strconv.FormatInt(m.UpdatedAt.Unix(), 10))
	return r
}
