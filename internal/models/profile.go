package models

import (
	"encoding/json"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Gender values as stored on profiles. Anything else is treated as "Other"
// by the directory pipeline.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Profile categorical tag: who the record represents. The directory category
// is a different thing, derived from age and gender.
const (
	ProfileCategoryModel  = "model"
	ProfileCategoryClient = "client"
)

// InstagramAccount is one entry of the ordered instagram list on a profile.
// Followers is a bucket label ("10k-50k"), not a number.
type InstagramAccount struct {
	Handle    string `json:"handle"`
	Followers string `json:"followers"`
}

type Profile struct {
	BaseModelWithDeleted
	UserID    string `gorm:"index"`
	ModelCode string `gorm:"uniqueIndex;not null"` // immutable once assigned; upsert conflict key

	FullName string `gorm:"not null"`
	DOB      string // ISO date string; may be empty or malformed, mapper copes
	Gender   string `gorm:"type:varchar(20)"`
	Phone    string
	Email    string
	Country  string
	State    string
	City     string
	Category string `gorm:"type:varchar(20);default:'model'"`

	Instagram datatypes.JSON `gorm:"type:jsonb"` // ordered []InstagramAccount

	ExperienceLevel    string
	Languages          pq.StringArray `gorm:"type:text[]" json:"languages"`
	Skills             pq.StringArray `gorm:"type:text[]" json:"skills"`
	OpenToTravel       bool           `gorm:"default:false"`
	RampWalkExperience bool           `gorm:"default:false"`

	HeightFeet   int
	HeightInches int
	BustChest    int
	Waist        int
	Hips         int
	ShoeSize     string
	Size         string

	MinBudgetHalfDay float64
	MinBudgetFullDay float64

	CoverPhotoURL       string
	PortfolioFolderLink string
	IntroVideoURL       string

	Status ProfileStatus `gorm:"type:varchar(20);default:'UNDER_REVIEW'"`

	// Relations
	Media []MediaItem `gorm:"foreignKey:ModelID"`
}

// GetInstagram returns the instagram accounts in stored order.
func (p *Profile) GetInstagram() []InstagramAccount {
	var accounts []InstagramAccount
	if len(p.Instagram) > 0 {
		_ = json.Unmarshal(p.Instagram, &accounts)
	}
	return accounts
}

func (p *Profile) SetInstagram(accounts []InstagramAccount) {
	data, _ := json.Marshal(accounts)
	p.Instagram = datatypes.JSON(data)
}
