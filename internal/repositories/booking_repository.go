package repositories

import (
	"errors"

	"elgrace_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking request not found")

type BookingRepository interface {
	Create(booking *models.BookingRequest) error
	FindByID(id string) (*models.BookingRequest, error)
	FindByBrandID(brandID string) ([]models.BookingRequest, error)
	FindByModelID(modelID string) ([]models.BookingRequest, error)
	UpdateStatus(id string, status models.BookingStatus) error
	Delete(id string) error
}

type BookingRepositoryImpl struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &BookingRepositoryImpl{db: db}
}

func (r *BookingRepositoryImpl) Create(booking *models.BookingRequest) error {
	return r.db.Create(booking).Error
}

func (r *BookingRepositoryImpl) FindByID(id string) (*models.BookingRequest, error) {
	var booking models.BookingRequest
	err := r.db.First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) FindByBrandID(brandID string) ([]models.BookingRequest, error) {
	var bookings []models.BookingRequest
	err := r.db.Where("brand_id = ?", brandID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) FindByModelID(modelID string) ([]models.BookingRequest, error) {
	var bookings []models.BookingRequest
	err := r.db.Where("model_id = ?", modelID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) UpdateStatus(id string, status models.BookingStatus) error {
	result := r.db.Model(&models.BookingRequest{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.BookingRequest{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}
