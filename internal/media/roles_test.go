package media

import (
	"testing"

	"elgrace_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func item(id string, role models.MediaRole, sortOrder int) models.MediaItem {
	m := models.MediaItem{MediaRole: role, SortOrder: sortOrder}
	m.ID = id
	return m
}

func TestDeriveRoles(t *testing.T) {
	items := []models.MediaItem{
		item("p2", models.MediaRolePortfolio, 2),
		item("cover", models.MediaRoleProfile, 0),
		item("p0", models.MediaRolePortfolio, 0),
		item("intro", models.MediaRoleIntroVideo, 0),
		item("p1", models.MediaRolePortfolio, 1),
		item("pv", models.MediaRolePortfolioVideo, 0),
	}

	set := DeriveRoles(items)

	t.Run("single slots pick first match", func(t *testing.T) {
		if assert.NotNil(t, set.ProfileImage) {
			assert.Equal(t, "cover", set.ProfileImage.ID)
		}
		if assert.NotNil(t, set.IntroVideo) {
			assert.Equal(t, "intro", set.IntroVideo.ID)
		}
	})

	t.Run("portfolio sorted by sort_order, not input position", func(t *testing.T) {
		ids := make([]string, 0, len(set.Portfolio))
		for _, m := range set.Portfolio {
			ids = append(ids, m.ID)
		}
		assert.Equal(t, []string{"p0", "p1", "p2"}, ids)
	})

	t.Run("portfolio videos excluded from base derivation", func(t *testing.T) {
		for _, m := range set.Portfolio {
			assert.NotEqual(t, models.MediaRolePortfolioVideo, m.MediaRole)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		again := DeriveRoles(items)
		assert.Equal(t, set, again)
	})
}

func TestDeriveRolesFirstMatchWins(t *testing.T) {
	items := []models.MediaItem{
		item("first", models.MediaRoleProfile, 0),
		item("second", models.MediaRoleProfile, 0),
	}

	set := DeriveRoles(items)
	if assert.NotNil(t, set.ProfileImage) {
		assert.Equal(t, "first", set.ProfileImage.ID)
	}
}

func TestDeriveRolesStableOnEqualSortOrder(t *testing.T) {
	items := []models.MediaItem{
		item("a", models.MediaRolePortfolio, 1),
		item("b", models.MediaRolePortfolio, 1),
		item("c", models.MediaRolePortfolio, 0),
	}

	set := DeriveRoles(items)
	ids := []string{set.Portfolio[0].ID, set.Portfolio[1].ID, set.Portfolio[2].ID}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestDeriveRolesEmpty(t *testing.T) {
	set := DeriveRoles(nil)
	assert.Nil(t, set.ProfileImage)
	assert.Nil(t, set.IntroVideo)
	assert.Empty(t, set.Portfolio)
}

func TestDeriveRolesFull(t *testing.T) {
	items := []models.MediaItem{
		item("pv1", models.MediaRolePortfolioVideo, 0),
		item("cover", models.MediaRoleProfile, 0),
		item("pv2", models.MediaRolePortfolioVideo, 1),
	}

	full := DeriveRolesFull(items)
	assert.Len(t, full.PortfolioVideos, 2)
	assert.Equal(t, "pv1", full.PortfolioVideos[0].ID)
	if assert.NotNil(t, full.ProfileImage) {
		assert.Equal(t, "cover", full.ProfileImage.ID)
	}
}
