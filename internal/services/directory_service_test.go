package services

import (
	"testing"
	"time"

	"elgrace_backend/internal/models"
	"elgrace_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func directoryProfile(name, dob, gender, city string, heightFeet, heightInches int, media []models.MediaItem) models.Profile {
	p := models.Profile{
		FullName:     name,
		DOB:          dob,
		Gender:       gender,
		City:         city,
		Country:      "India",
		HeightFeet:   heightFeet,
		HeightInches: heightInches,
		Status:       models.ProfileStatusOnline,
		Media:        media,
	}
	p.UpdatedAt = time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	return p
}

func TestDirectoryListPipeline(t *testing.T) {
	profiles := []models.Profile{
		directoryProfile("Asha", "2000-04-01", models.GenderFemale, "Mumbai", 5, 7, []models.MediaItem{
			{MediaRole: models.MediaRoleProfile, MediaURL: "covers/asha.jpg", MediaType: models.MediaTypeImage},
			{MediaRole: models.MediaRolePortfolio, MediaURL: "pf/asha-1.jpg", MediaType: models.MediaTypeImage},
		}),
		directoryProfile("Rohan", "1995-09-20", models.GenderMale, "Delhi", 6, 0, nil),
	}

	svc := &DirectoryServiceImpl{
		profileRepo: &fakeProfileRepo{online: profiles},
		baseURL:     "https://cdn.example.com/media",
		now:         func() time.Time { return time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC) },
	}

	resp, err := svc.List(dto.TalentListQuery{})
	require.NoError(t, err)
	require.Len(t, resp.Talents, 2)
	assert.Equal(t, 2, resp.Total)

	asha := resp.Talents[0]
	assert.Equal(t, "Asha", asha.Name)
	assert.Equal(t, 26, asha.Age)
	assert.Equal(t, 170, asha.HeightCm)
	assert.Equal(t, "Female", string(asha.Category))
	assert.Equal(t, "https://cdn.example.com/media/covers/asha.jpg?v=1768003200", asha.CoverPhotoURL)

	rohan := resp.Talents[1]
	assert.Empty(t, rohan.CoverPhotoURL, "no media and no cover leaves the image blank")
}

func TestDirectoryListCategoryFilter(t *testing.T) {
	profiles := []models.Profile{
		directoryProfile("Asha", "2000-04-01", models.GenderFemale, "Mumbai", 5, 7, nil),
		directoryProfile("Rohan", "1995-09-20", models.GenderMale, "Delhi", 6, 0, nil),
	}

	svc := &DirectoryServiceImpl{
		profileRepo: &fakeProfileRepo{online: profiles},
		baseURL:     "https://cdn.example.com/media",
		now:         func() time.Time { return time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC) },
	}

	resp, err := svc.List(dto.TalentListQuery{Category: "Male"})
	require.NoError(t, err)
	require.Len(t, resp.Talents, 1)
	assert.Equal(t, "Rohan", resp.Talents[0].Name)
}

func TestDirectoryListAdvancedResetsCategory(t *testing.T) {
	profiles := []models.Profile{
		directoryProfile("Asha", "2000-04-01", models.GenderFemale, "Mumbai", 5, 7, nil),
		directoryProfile("Rohan", "1995-09-20", models.GenderMale, "Delhi", 6, 0, nil),
	}

	svc := &DirectoryServiceImpl{
		profileRepo: &fakeProfileRepo{online: profiles},
		baseURL:     "https://cdn.example.com/media",
		now:         func() time.Time { return time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC) },
	}

	// Opening the advanced panel drops the previously selected tab.
	resp, err := svc.List(dto.TalentListQuery{Category: "Female", Advanced: true, Location: "delhi"})
	require.NoError(t, err)
	require.Len(t, resp.Talents, 1)
	assert.Equal(t, "Rohan", resp.Talents[0].Name)
}

func TestDirectoryListCategoryCombinesWithAdvanced(t *testing.T) {
	profiles := []models.Profile{
		directoryProfile("Arjun", "2006-01-01", models.GenderMale, "Mumbai", 5, 11, nil),
		directoryProfile("Kabir", "2010-03-01", models.GenderMale, "Mumbai", 6, 3, nil),
		directoryProfile("Meera", "2001-05-01", models.GenderFemale, "Mumbai", 6, 3, nil),
	}

	svc := &DirectoryServiceImpl{
		profileRepo: &fakeProfileRepo{online: profiles},
		baseURL:     "https://cdn.example.com/media",
		now:         func() time.Time { return time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC) },
	}

	// Without the panel-toggle signal the category stays in force and the
	// two filter axes intersect.
	resp, err := svc.List(dto.TalentListQuery{Category: "Male", MinHeightCm: 185})
	require.NoError(t, err)
	require.Len(t, resp.Talents, 1)
	assert.Equal(t, "Kabir", resp.Talents[0].Name)
}

func TestDirectoryListPreservesOrder(t *testing.T) {
	profiles := []models.Profile{
		directoryProfile("C", "2000-01-01", models.GenderFemale, "Mumbai", 5, 5, nil),
		directoryProfile("A", "2000-01-01", models.GenderFemale, "Mumbai", 5, 5, nil),
		directoryProfile("B", "2000-01-01", models.GenderFemale, "Mumbai", 5, 5, nil),
	}

	svc := &DirectoryServiceImpl{
		profileRepo: &fakeProfileRepo{online: profiles},
		now:         time.Now,
	}

	resp, err := svc.List(dto.TalentListQuery{})
	require.NoError(t, err)
	names := []string{resp.Talents[0].Name, resp.Talents[1].Name, resp.Talents[2].Name}
	assert.Equal(t, []string{"C", "A", "B"}, names)
}
