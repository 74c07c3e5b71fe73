package repositories

import (
	"errors"
	"time"

	"elgrace_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCastingNotFound = errors.New("casting not found")

type CastingListCriteria struct {
	BrandID  string
	Status   models.CastingStatus
	City     string
	Page     int
	PageSize int
}

type CastingRepository interface {
	Create(casting *models.Casting) error
	FindByID(id string) (*models.Casting, error)
	Update(id string, updates map[string]interface{}) error
	UpdateStatus(id string, status models.CastingStatus) error
	Delete(id string) error
	FindAll(criteria CastingListCriteria) ([]models.Casting, int64, error)
	FindOpen(page, pageSize int) ([]models.Casting, int64, error)
	IncrementViews(id string) error
	IncrementApplications(id string) error
	CloseExpired(now time.Time) (int64, error)
}

type CastingRepositoryImpl struct {
	db *gorm.DB
}

func NewCastingRepository(db *gorm.DB) CastingRepository {
	return &CastingRepositoryImpl{db: db}
}

func (r *CastingRepositoryImpl) Create(casting *models.Casting) error {
	return r.db.Create(casting).Error
}

func (r *CastingRepositoryImpl) FindByID(id string) (*models.Casting, error) {
	var casting models.Casting
	err := r.db.First(&casting, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCastingNotFound
		}
		return nil, err
	}
	return &casting, nil
}

func (r *CastingRepositoryImpl) Update(id string, updates map[string]interface{}) error {
	delete(updates, "status")
	delete(updates, "brand_id")

	result := r.db.Model(&models.Casting{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCastingNotFound
	}
	return nil
}

func (r *CastingRepositoryImpl) UpdateStatus(id string, status models.CastingStatus) error {
	result := r.db.Model(&models.Casting{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCastingNotFound
	}
	return nil
}

func (r *CastingRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Casting{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCastingNotFound
	}
	return nil
}

func (r *CastingRepositoryImpl) FindAll(criteria CastingListCriteria) ([]models.Casting, int64, error) {
	query := r.db.Model(&models.Casting{})

	if criteria.BrandID != "" {
		query = query.Where("brand_id = ?", criteria.BrandID)
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.City != "" {
		query = query.Where("city ILIKE ?", "%"+criteria.City+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if criteria.Page > 0 && criteria.PageSize > 0 {
		query = query.Offset((criteria.Page - 1) * criteria.PageSize).Limit(criteria.PageSize)
	}

	var castings []models.Casting
	err := query.Order("created_at DESC").Find(&castings).Error
	return castings, total, err
}

func (r *CastingRepositoryImpl) FindOpen(page, pageSize int) ([]models.Casting, int64, error) {
	return r.FindAll(CastingListCriteria{
		Status:   models.CastingStatusOpen,
		Page:     page,
		PageSize: pageSize,
	})
}

func (r *CastingRepositoryImpl) IncrementViews(id string) error {
	return r.db.Model(&models.Casting{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *CastingRepositoryImpl) IncrementApplications(id string) error {
	return r.db.Model(&models.Casting{}).
		Where("id = ?", id).
		UpdateColumn("applications", gorm.Expr("applications + 1")).Error
}

// CloseExpired moves open castings past their application deadline to closed.
func (r *CastingRepositoryImpl) CloseExpired(now time.Time) (int64, error) {
	result := r.db.Model(&models.Casting{}).
		Where("status = ? AND application_deadline IS NOT NULL AND application_deadline < ?",
			models.CastingStatusOpen, now).
		Update("status", models.CastingStatusClosed)
	return result.RowsAffected, result.Error
}
