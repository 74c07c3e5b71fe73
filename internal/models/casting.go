package models

import "time"

type Casting struct {
	BaseModel
	BrandID     string `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description string
	City        string

	BudgetMin float64
	BudgetMax float64

	ApplicationDeadline *time.Time
	ShootDate           *time.Time

	Status CastingStatus `gorm:"type:varchar(20);default:'draft'"`

	// Denormalized counters, bumped with UpdateColumn expressions.
	Views        int64 `gorm:"default:0"`
	Applications int64 `gorm:"default:0"`
}

type CastingApplication struct {
	BaseModel
	CastingID string `gorm:"not null;index;uniqueIndex:idx_casting_model"`
	ModelID   string `gorm:"not null;index;uniqueIndex:idx_casting_model"`
	Message   string
	Status    ApplicationStatus `gorm:"type:varchar(20);default:'applied'"`

	Casting *Casting `gorm:"foreignKey:CastingID"`
}
