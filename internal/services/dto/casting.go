package dto

import (
	"time"

	"elgrace_backend/internal/models"
)

type CreateCastingRequest struct {
	Title               string     `json:"title" binding:"required"`
	Description         string     `json:"description"`
	City                string     `json:"city"`
	BudgetMin           float64    `json:"budget_min" binding:"omitempty,min=0"`
	BudgetMax           float64    `json:"budget_max" binding:"omitempty,min=0,gtefield=BudgetMin"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	ShootDate           *time.Time `json:"shoot_date"`
}

type UpdateCastingRequest = CreateCastingRequest

type UpdateCastingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft under_review open closed"`
}

type CastingListQuery struct {
	City     string `form:"city"`
	Status   string `form:"status" binding:"omitempty,oneof=UNDER_VERIFICATION ONLINE CLOSED"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

type CastingResponse struct {
	ID                  string     `json:"id"`
	BrandID             string     `json:"brand_id"`
	Title               string     `json:"title"`
	Description         string     `json:"description,omitempty"`
	City                string     `json:"city,omitempty"`
	BudgetMin           float64    `json:"budget_min,omitempty"`
	BudgetMax           float64    `json:"budget_max,omitempty"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	ShootDate           *time.Time `json:"shoot_date,omitempty"`
	Status              string     `json:"status"`
	Views               int64      `json:"views"`
	Applications        int64      `json:"applications"`
	CreatedAt           time.Time  `json:"created_at"`
}

type CastingListResponse struct {
	Castings []CastingResponse `json:"castings"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// NewCastingResponse maps the stored status onto the UI vocabulary
// (draft and under_review both surface as UNDER_VERIFICATION).
func NewCastingResponse(c *models.Casting) CastingResponse {
	return CastingResponse{
		ID:                  c.ID,
		BrandID:             c.BrandID,
		Title:               c.Title,
		Description:         c.Description,
		City:                c.City,
		BudgetMin:           c.BudgetMin,
		BudgetMax:           c.BudgetMax,
		ApplicationDeadline: c.ApplicationDeadline,
		ShootDate:           c.ShootDate,
		Status:              c.Status.UIStatus(),
		Views:               c.Views,
		Applications:        c.Applications,
		CreatedAt:           c.CreatedAt,
	}
}

type ApplyToCastingRequest struct {
	Message string `json:"message"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=shortlisted rejected booked cancelled"`
}

type ApplicationResponse struct {
	ID        string           `json:"id"`
	CastingID string           `json:"casting_id"`
	ModelID   string           `json:"model_id"`
	Message   string           `json:"message,omitempty"`
	Status    string           `json:"status"`
	Casting   *CastingResponse `json:"casting,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

func NewApplicationResponse(a *models.CastingApplication) ApplicationResponse {
	resp := ApplicationResponse{
		ID:        a.ID,
		CastingID: a.CastingID,
		ModelID:   a.ModelID,
		Message:   a.Message,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
	}
	if a.Casting != nil {
		casting := NewCastingResponse(a.Casting)
		resp.Casting = &casting
	}
	return resp
}
