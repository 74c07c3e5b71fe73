package media

import (
	"sort"

	"elgrace_backend/internal/models"
)

// RoleSet is the base (three-slot) derivation over a model's media records.
type RoleSet struct {
	ProfileImage *models.MediaItem
	IntroVideo   *models.MediaItem
	Portfolio    []models.MediaItem
}

// FullRoleSet additionally carries portfolio videos; the profile page wants
// them, the directory does not.
type FullRoleSet struct {
	RoleSet
	PortfolioVideos []models.MediaItem
}

// DeriveRoles classifies a flat media list into named slots. Profile image
// and intro video are first-match-wins in input order; the backend does not
// enforce uniqueness for those roles, so input order decides. Portfolio is
// stable-sorted ascending by SortOrder. Pure function.
func DeriveRoles(items []models.MediaItem) RoleSet {
	var set RoleSet

	for i := range items {
		switch items[i].MediaRole {
		case models.MediaRoleProfile:
			if set.ProfileImage == nil {
				set.ProfileImage = &items[i]
			}
		case models.MediaRoleIntroVideo:
			if set.IntroVideo == nil {
				set.IntroVideo = &items[i]
			}
		case models.MediaRolePortfolio:
			set.Portfolio = append(set.Portfolio, items[i])
		}
	}

	sort.SliceStable(set.Portfolio, func(a, b int) bool {
		return set.Portfolio[a].SortOrder < set.Portfolio[b].SortOrder
	})

	return set
}

// DeriveRolesFull is the four-slot variant used by profile pages.
func DeriveRolesFull(items []models.MediaItem) FullRoleSet {
	full := FullRoleSet{RoleSet: DeriveRoles(items)}

	for i := range items {
		if items[i].MediaRole == models.MediaRolePortfolioVideo {
			full.PortfolioVideos = append(full.PortfolioVideos, items[i])
		}
	}

	return full
}
