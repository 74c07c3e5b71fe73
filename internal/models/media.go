package models

type MediaType string
type MediaRole string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"

	MediaRoleProfile        MediaRole = "profile"
	MediaRolePortfolio      MediaRole = "portfolio"
	MediaRoleIntroVideo     MediaRole = "intro_video"
	MediaRolePortfolioVideo MediaRole = "portfolio_video"
)

// MediaType returns the broad kind a role carries.
func (r MediaRole) MediaType() MediaType {
	switch r {
	case MediaRoleIntroVideo, MediaRolePortfolioVideo:
		return MediaTypeVideo
	default:
		return MediaTypeImage
	}
}

type MediaItem struct {
	BaseModel
	ModelID   string    `gorm:"not null;index"`
	MediaType MediaType `gorm:"type:varchar(10);not null"`
	MediaRole MediaRole `gorm:"type:varchar(20);not null"`
	MediaURL  string    `gorm:"not null"`
	SortOrder int       `gorm:"default:0"`
	MimeType  string
	Size      int64
	Path      string // storage key the URL was minted from
}
