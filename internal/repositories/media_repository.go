package repositories

import (
	"errors"

	"elgrace_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMediaNotFound = errors.New("media item not found")

// MediaRepository methods accept the request-scoped *gorm.DB so uploads and
// deletes can ride an outer transaction.
type MediaRepository interface {
	Create(db *gorm.DB, item *models.MediaItem) error
	FindByID(db *gorm.DB, id string) (*models.MediaItem, error)
	FindByModelID(db *gorm.DB, modelID string) ([]models.MediaItem, error)
	Delete(db *gorm.DB, id string) error
	NextSortOrder(db *gorm.DB, modelID string, role models.MediaRole) (int, error)
}

type MediaRepositoryImpl struct{}

func NewMediaRepository() MediaRepository {
	return &MediaRepositoryImpl{}
}

func (r *MediaRepositoryImpl) Create(db *gorm.DB, item *models.MediaItem) error {
	return db.Create(item).Error
}

func (r *MediaRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.MediaItem, error) {
	var item models.MediaItem
	err := db.First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *MediaRepositoryImpl) FindByModelID(db *gorm.DB, modelID string) ([]models.MediaItem, error) {
	var items []models.MediaItem
	err := db.Where("model_id = ?", modelID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *MediaRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.MediaItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMediaNotFound
	}
	return nil
}

func (r *MediaRepositoryImpl) NextSortOrder(db *gorm.DB, modelID string, role models.MediaRole) (int, error) {
	var max int
	err := db.Model(&models.MediaItem{}).
		Where("model_id = ? AND media_role = ?", modelID, role).
		Select("COALESCE(MAX(sort_order), -1)").
		Scan(&max).Error
	return max + 1, err
}
