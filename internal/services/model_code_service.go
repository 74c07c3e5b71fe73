package services

import (
	"fmt"
	"time"

	"elgrace_backend/internal/logger"
	"elgrace_backend/internal/repositories"
)

// Model codes start here. The first allocated code is M-1000001.
const modelCodeFloor = 1000001

// ModelCodeService allocates unique model codes of the form M-<number>.
// Allocate never returns an error: when the counter is unavailable it falls
// back to scanning existing codes, and as a last resort stamps the current
// unix time. Only the counter tier guarantees uniqueness under concurrency;
// the fallbacks exist so profile creation keeps working during partial
// outages.
type ModelCodeService interface {
	Allocate() string
}

type ModelCodeServiceImpl struct {
	counterRepo repositories.ModelCodeRepository
	profileRepo repositories.ProfileRepository
	now         func() time.Time
}

func NewModelCodeService(counterRepo repositories.ModelCodeRepository, profileRepo repositories.ProfileRepository) ModelCodeService {
	return &ModelCodeServiceImpl{
		counterRepo: counterRepo,
		profileRepo: profileRepo,
		now:         time.Now,
	}
}

func (s *ModelCodeServiceImpl) Allocate() string {
	if value, err := s.counterRepo.NextValue(); err == nil {
		return formatModelCode(value)
	} else {
		logger.Warn("model code counter unavailable, scanning existing codes", "error", err)
	}

	if max, err := s.profileRepo.MaxModelCodeSuffix(); err == nil {
		next := max + 1
		if next < modelCodeFloor {
			next = modelCodeFloor
		}
		// Try to heal the counter for subsequent allocations.
		if seedErr := s.counterRepo.Seed(next + 1); seedErr != nil {
			logger.Warn("failed to reseed model code counter", "error", seedErr)
		}
		return formatModelCode(next)
	} else {
		logger.Error("model code scan failed, falling back to timestamp", "error", err)
	}

	return formatModelCode(s.now().Unix())
}

func formatModelCode(n int64) string {
	return fmt.Sprintf("M-%d", n)
}
