package repositories

import (
	"gorm.io/gorm"
)

// ModelCodeRepository backs model code allocation. NextValue bumps the
// counter row atomically; the zero row is seeded on first use.
type ModelCodeRepository interface {
	NextValue() (int64, error)
	Seed(start int64) error
}

type ModelCodeRepositoryImpl struct {
	db *gorm.DB
}

func NewModelCodeRepository(db *gorm.DB) ModelCodeRepository {
	return &ModelCodeRepositoryImpl{db: db}
}

func (r *ModelCodeRepositoryImpl) NextValue() (int64, error) {
	var value int64
	err := r.db.Raw(
		`UPDATE model_code_counters SET next_value = next_value + 1 WHERE id = 1 RETURNING next_value - 1`,
	).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	if value == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return value, nil
}

// Seed inserts the counter row if it does not exist yet.
func (r *ModelCodeRepositoryImpl) Seed(start int64) error {
	return r.db.Exec(
		`INSERT INTO model_code_counters (id, next_value) VALUES (1, ?) ON CONFLICT (id) DO NOTHING`,
		start,
	).Error
}
