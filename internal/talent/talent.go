package talent

import (
	"math"
	"strings"
	"time"

	"elgrace_backend/internal/models"
)

// Category is the directory pill a talent lands under. Derived, not stored.
type Category string

const (
	CategoryAll    Category = "All"
	CategoryMale   Category = "Male"
	CategoryFemale Category = "Female"
	CategoryKids   Category = "Kids"
)

// Anyone younger than this is listed under Kids regardless of gender.
const kidsAgeCutoff = 15

// Talent is the directory view-model produced from one Profile.
type Talent struct {
	ID               string   `json:"id"`
	ModelCode        string   `json:"model_code"`
	Name             string   `json:"name"`
	Age              int      `json:"age"`
	Gender           string   `json:"gender"`
	Category         Category `json:"category"`
	HeightCm         int      `json:"height_cm"`
	Location         string   `json:"location"`
	CoverPhotoURL    string   `json:"cover_photo_url"`
	ExperienceLevel  string   `json:"experience_level"`
	Languages        []string `json:"languages,omitempty"`
	Skills           []string `json:"skills,omitempty"`
	OpenToTravel     bool     `json:"open_to_travel"`
	MinBudgetHalfDay float64  `json:"min_budget_half_day"`
	MinBudgetFullDay float64  `json:"min_budget_full_day"`
}

// AdvancedFilters is the optional second filter tier of the directory.
// Zero values mean "no constraint" except the age bounds, which apply
// whenever MaxAge > 0.
type AdvancedFilters struct {
	Location    string `form:"location" json:"location"`
	MinAge      int    `form:"min_age" json:"min_age"`
	MaxAge      int    `form:"max_age" json:"max_age"`
	Gender      string `form:"gender" json:"gender"`
	MinHeightCm int    `form:"min_height_cm" json:"min_height_cm"`
}

// MapProfile turns a raw profile into its directory view-model. Total over
// any profile shape: malformed dates and numbers degrade to zero values,
// never a panic.
func MapProfile(p *models.Profile, coverURL string, now time.Time) Talent {
	age := AgeAt(p.DOB, now)

	return Talent{
		ID:               p.ID,
		ModelCode:        p.ModelCode,
		Name:             p.FullName,
		Age:              age,
		Gender:           p.Gender,
		Category:         deriveCategory(age, p.Gender),
		HeightCm:         HeightCm(p.HeightFeet, p.HeightInches),
		Location:         composeLocation(p.City, p.State, p.Country),
		CoverPhotoURL:    coverURL,
		ExperienceLevel:  p.ExperienceLevel,
		Languages:        p.Languages,
		Skills:           p.Skills,
		OpenToTravel:     p.OpenToTravel,
		MinBudgetHalfDay: p.MinBudgetHalfDay,
		MinBudgetFullDay: p.MinBudgetFullDay,
	}
}

// AgeAt computes the whole-year calendar age for an ISO date-of-birth string.
// Unparseable input yields 0.
func AgeAt(dob string, now time.Time) int {
	if dob == "" {
		return 0
	}

	born, err := parseDOB(dob)
	if err != nil {
		return 0
	}

	age := now.Year() - born.Year()
	// Subtract one if this year's birthday is still ahead
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

func parseDOB(dob string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", dob); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, dob)
}

// HeightCm converts imperial measurements, rounding to the nearest cm.
func HeightCm(feet, inches int) int {
	if feet < 0 {
		feet = 0
	}
	if inches < 0 {
		inches = 0
	}
	return int(math.Round(float64(feet)*30.48 + float64(inches)*2.54))
}

func deriveCategory(age int, gender string) Category {
	if age < kidsAgeCutoff {
		return CategoryKids
	}
	switch gender {
	case models.GenderMale:
		return CategoryMale
	case models.GenderFemale:
		return CategoryFemale
	}
	// "Other" lands under neither Male nor Female
	return ""
}

func composeLocation(city, state, country string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{city, state, country} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	if len(parts) == 0 {
		return "Location TBA"
	}
	return strings.Join(parts, ", ")
}
