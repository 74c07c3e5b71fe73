package dto

import "elgrace_backend/internal/talent"

// TalentListQuery is the public directory filter surface. Category and the
// advanced panel combine with AND; zero values disable their filter.
// Advanced marks the request as coming from a freshly opened advanced panel,
// which resets the category tab to All.
type TalentListQuery struct {
	Category    string `form:"category" binding:"omitempty,oneof=All Male Female Kids"`
	Advanced    bool   `form:"advanced"`
	Location    string `form:"location"`
	MinAge      int    `form:"min_age" binding:"omitempty,min=0"`
	MaxAge      int    `form:"max_age" binding:"omitempty,min=0"`
	Gender      string `form:"gender" binding:"omitempty,oneof=All Male Female Other"`
	MinHeightCm int    `form:"min_height_cm" binding:"omitempty,min=0"`
}

type TalentListResponse struct {
	Talents []talent.Talent `json:"talents"`
	Total   int             `json:"total"`
}
