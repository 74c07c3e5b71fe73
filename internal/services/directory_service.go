package services

import (
	"strconv"
	"time"

	"elgrace_backend/internal/media"
	"elgrace_backend/internal/repositories"
	"elgrace_backend/internal/services/dto"
	"elgrace_backend/internal/talent"
	"elgrace_backend/pkg/apperrors"
)

// DirectoryService assembles the public talent directory: ONLINE profiles,
// media resolved to display roles, URLs normalized against the media base,
// then category and advanced filters applied in insertion order.
type DirectoryService interface {
	List(q dto.TalentListQuery) (*dto.TalentListResponse, error)
}

type DirectoryServiceImpl struct {
	profileRepo repositories.ProfileRepository
	baseURL     string
	now         func() time.Time
}

func NewDirectoryService(profileRepo repositories.ProfileRepository, baseURL string) DirectoryService {
	return &DirectoryServiceImpl{
		profileRepo: profileRepo,
		baseURL:     baseURL,
		now:         time.Now,
	}
}

func (s *DirectoryServiceImpl) List(q dto.TalentListQuery) (*dto.TalentListResponse, error) {
	profiles, err := s.profileRepo.FindOnlineWithMedia()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	now := s.now()
	talents := make([]talent.Talent, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		roles := media.DeriveRoles(p.Media)

		cover := p.CoverPhotoURL
		version := strconv.FormatInt(p.UpdatedAt.Unix(), 10)
		if roles.ProfileImage != nil {
			cover = media.NormalizeURL(s.baseURL, roles.ProfileImage.MediaURL, version)
		} else if cover != "" {
			cover = media.NormalizeURL(s.baseURL, cover, version)
		}

		talents = append(talents, talent.MapProfile(p, cover, now))
	}

	category := talent.Category(q.Category)
	if category == "" {
		category = talent.CategoryAll
	}

	advanced := q.Advanced || q.Location != "" || q.MinAge > 0 || q.MaxAge > 0 ||
		(q.Gender != "" && q.Gender != "All") || q.MinHeightCm > 0

	// Opening the advanced panel resets the category tab to All. A plain
	// request with advanced params still combines them with the category.
	if q.Advanced {
		category = talent.CategoryAll
	}

	filtered := talent.Filter(talents, category, advanced, talent.AdvancedFilters{
		Location:    q.Location,
		MinAge:      q.MinAge,
		MaxAge:      q.MaxAge,
		Gender:      q.Gender,
		MinHeightCm: q.MinHeightCm,
	})

	return &dto.TalentListResponse{
		Talents: filtered,
		Total:   len(filtered),
	}, nil
}
