package talent

import (
	"testing"
	"time"

	"elgrace_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestAgeAt(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("exact anniversary", func(t *testing.T) {
		assert.Equal(t, 20, AgeAt("2006-06-15", now))
	})

	t.Run("birthday not yet reached this year", func(t *testing.T) {
		assert.Equal(t, 19, AgeAt("2006-06-16", now))
	})

	t.Run("birthday already passed this year", func(t *testing.T) {
		assert.Equal(t, 20, AgeAt("2006-01-02", now))
	})

	t.Run("missing dob", func(t *testing.T) {
		assert.Equal(t, 0, AgeAt("", now))
	})

	t.Run("unparseable dob", func(t *testing.T) {
		assert.Equal(t, 0, AgeAt("not-a-date", now))
	})

	t.Run("rfc3339 dob", func(t *testing.T) {
		assert.Equal(t, 20, AgeAt("2006-06-15T00:00:00Z", now))
	})

	t.Run("future dob clamps to zero", func(t *testing.T) {
		assert.Equal(t, 0, AgeAt("2030-01-01", now))
	})
}

func TestHeightCm(t *testing.T) {
	// 5*30.48 + 7*2.54 = 170.18 -> 170
	assert.Equal(t, 170, HeightCm(5, 7))
	assert.Equal(t, 0, HeightCm(0, 0))
	assert.Equal(t, 183, HeightCm(6, 0))
	// negative garbage degrades to zero contribution
	assert.Equal(t, 0, HeightCm(-1, -4))
}

func TestMapProfile(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("female aged 15 maps to Female", func(t *testing.T) {
		p := &models.Profile{FullName: "A", Gender: models.GenderFemale, DOB: "2011-06-15"}
		got := MapProfile(p, "", now)
		assert.Equal(t, 15, got.Age)
		assert.Equal(t, CategoryFemale, got.Category)
	})

	t.Run("female aged 14 maps to Kids", func(t *testing.T) {
		p := &models.Profile{FullName: "A", Gender: models.GenderFemale, DOB: "2011-06-16"}
		got := MapProfile(p, "", now)
		assert.Equal(t, 14, got.Age)
		assert.Equal(t, CategoryKids, got.Category)
	})

	t.Run("gender other is excluded from Male and Female", func(t *testing.T) {
		p := &models.Profile{FullName: "A", Gender: models.GenderOther, DOB: "2000-01-01"}
		got := MapProfile(p, "", now)
		assert.NotEqual(t, CategoryMale, got.Category)
		assert.NotEqual(t, CategoryFemale, got.Category)
	})

	t.Run("missing dob maps to Kids via age zero", func(t *testing.T) {
		p := &models.Profile{FullName: "A", Gender: models.GenderMale}
		got := MapProfile(p, "", now)
		assert.Equal(t, 0, got.Age)
		assert.Equal(t, CategoryKids, got.Category)
	})

	t.Run("location composition", func(t *testing.T) {
		p := &models.Profile{City: "Mumbai", State: "Maharashtra", Country: "India"}
		assert.Equal(t, "Mumbai, Maharashtra, India", MapProfile(p, "", now).Location)

		p = &models.Profile{State: "Maharashtra"}
		assert.Equal(t, "Maharashtra", MapProfile(p, "", now).Location)

		p = &models.Profile{}
		assert.Equal(t, "Location TBA", MapProfile(p, "", now).Location)
	})

	t.Run("cover url is passed through", func(t *testing.T) {
		p := &models.Profile{FullName: "A"}
		got := MapProfile(p, "https://cdn.example.com/a.jpg?v=1", now)
		assert.Equal(t, "https://cdn.example.com/a.jpg?v=1", got.CoverPhotoURL)
	})
}
