package dto

import (
	"time"

	"elgrace_backend/internal/models"
)

type MediaItemResponse struct {
	ID        string           `json:"id"`
	ModelID   string           `json:"model_id"`
	MediaType models.MediaType `json:"media_type"`
	MediaRole models.MediaRole `json:"media_role"`
	MediaURL  string           `json:"media_url"`
	SortOrder int              `json:"sort_order"`
	MimeType  string           `json:"mime_type,omitempty"`
	Size      int64            `json:"size,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

func NewMediaItemResponse(m *models.MediaItem) MediaItemResponse {
	return MediaItemResponse{
		ID:        m.ID,
		ModelID:   m.ModelID,
		MediaType: m.MediaType,
		MediaRole: m.MediaRole,
		MediaURL:  m.MediaURL,
		SortOrder: m.SortOrder,
		MimeType:  m.MimeType,
		Size:      m.Size,
		CreatedAt: m.CreatedAt,
	}
}

type UploadMediaQuery struct {
	Role string `form:"role" json:"role" binding:"required,is-media-role"`
}

type MediaListResponse struct {
	Items []MediaItemResponse `json:"items"`
	Total int                 `json:"total"`
}
