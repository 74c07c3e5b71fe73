package repositories

import (
	"errors"

	"elgrace_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("model already applied to this casting")
)

type ApplicationRepository interface {
	Create(app *models.CastingApplication) error
	FindByID(id string) (*models.CastingApplication, error)
	FindByCastingID(castingID string) ([]models.CastingApplication, error)
	FindByModelID(modelID string) ([]models.CastingApplication, error)
	FindByCastingAndModel(castingID, modelID string) (*models.CastingApplication, error)
	UpdateStatus(id string, status models.ApplicationStatus) error
	Delete(id string) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(app *models.CastingApplication) error {
	var count int64
	err := r.db.Model(&models.CastingApplication{}).
		Where("casting_id = ? AND model_id = ?", app.CastingID, app.ModelID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadyApplied
	}
	return r.db.Create(app).Error
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.CastingApplication, error) {
	var app models.CastingApplication
	err := r.db.Preload("Casting").First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByCastingID(castingID string) ([]models.CastingApplication, error) {
	var apps []models.CastingApplication
	err := r.db.Where("casting_id = ?", castingID).
		Order("created_at ASC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindByModelID(modelID string) ([]models.CastingApplication, error) {
	var apps []models.CastingApplication
	err := r.db.Preload("Casting").
		Where("model_id = ?", modelID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindByCastingAndModel(castingID, modelID string) (*models.CastingApplication, error) {
	var app models.CastingApplication
	err := r.db.Where("casting_id = ? AND model_id = ?", castingID, modelID).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.CastingApplication{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.CastingApplication{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
