package models

import "time"

type BookingRequest struct {
	BaseModel
	BrandID string `gorm:"not null;index"`
	ModelID string `gorm:"not null;index"`
	Message string
	Date    *time.Time

	Status BookingStatus `gorm:"type:varchar(20);default:'pending'"`
}

// ModelCodeCounter backs the atomic tier of model code allocation. Single
// row, bumped with UPDATE ... RETURNING.
type ModelCodeCounter struct {
	ID        int   `gorm:"primaryKey"`
	NextValue int64 `gorm:"not null"`
}

func (ModelCodeCounter) TableName() string {
	return "model_code_counters"
}
