package dto

import (
	"time"

	"elgrace_backend/internal/models"
)

type CreateBookingRequest struct {
	ModelID string     `json:"model_id" binding:"required,uuid"`
	Message string     `json:"message"`
	Date    *time.Time `json:"date"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected cancelled"`
}

type BookingResponse struct {
	ID        string     `json:"id"`
	BrandID   string     `json:"brand_id"`
	ModelID   string     `json:"model_id"`
	Message   string     `json:"message,omitempty"`
	Date      *time.Time `json:"date,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

func NewBookingResponse(b *models.BookingRequest) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		BrandID:   b.BrandID,
		ModelID:   b.ModelID,
		Message:   b.Message,
		Date:      b.Date,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
	}
}
