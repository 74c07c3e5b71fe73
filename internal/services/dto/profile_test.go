package dto

import (
	"testing"
	"time"

	"elgrace_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roleItem(role models.MediaRole, url string, sortOrder int) models.MediaItem {
	m := models.MediaItem{
		MediaRole: role,
		MediaType: role.MediaType(),
		MediaURL:  url,
		SortOrder: sortOrder,
	}
	m.UpdatedAt = time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	return m
}

func TestNewProfileResponseWithRoles(t *testing.T) {
	p := &models.Profile{
		ModelCode: "M-1000001",
		FullName:  "Asha Verma",
		Status:    models.ProfileStatusOnline,
		Media: []models.MediaItem{
			roleItem(models.MediaRolePortfolio, "pf/b.jpg", 2),
			roleItem(models.MediaRoleProfile, "covers/asha.jpg", 0),
			roleItem(models.MediaRolePortfolio, "pf/a.jpg", 1),
			roleItem(models.MediaRoleIntroVideo, "intro/asha.mp4", 0),
			roleItem(models.MediaRolePortfolioVideo, "pfv/asha.mp4", 0),
		},
	}

	resp := NewProfileResponseWithRoles(p, "https://cdn.example.com/media")
	require.NotNil(t, resp.MediaRoles)
	roles := resp.MediaRoles

	require.NotNil(t, roles.ProfileImage)
	assert.Equal(t, "https://cdn.example.com/media/covers/asha.jpg?v=1768003200", roles.ProfileImage.MediaURL)

	require.NotNil(t, roles.IntroVideo)
	assert.Equal(t, "https://cdn.example.com/media/intro/asha.mp4?v=1768003200", roles.IntroVideo.MediaURL)

	require.Len(t, roles.Portfolio, 2)
	assert.Equal(t, "https://cdn.example.com/media/pf/a.jpg?v=1768003200", roles.Portfolio[0].MediaURL)
	assert.Equal(t, "https://cdn.example.com/media/pf/b.jpg?v=1768003200", roles.Portfolio[1].MediaURL)

	require.Len(t, roles.PortfolioVideos, 1)
	assert.Equal(t, "https://cdn.example.com/media/pfv/asha.mp4?v=1768003200", roles.PortfolioVideos[0].MediaURL)

	// The raw media array stays untouched next to the derived slots.
	assert.Len(t, resp.Media, 5)
}

func TestNewProfileResponseWithRolesNoMedia(t *testing.T) {
	p := &models.Profile{ModelCode: "M-1000002", FullName: "Rohan"}

	resp := NewProfileResponseWithRoles(p, "https://cdn.example.com/media")
	assert.Nil(t, resp.MediaRoles)
}
