package services

import (
	"errors"
	"testing"
	"time"

	"elgrace_backend/internal/models"
	"elgrace_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
)

type fakeCounterRepo struct {
	next    int64
	err     error
	seeded  int64
	seedErr error
}

func (f *fakeCounterRepo) NextValue() (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	v := f.next
	f.next++
	return v, nil
}

func (f *fakeCounterRepo) Seed(start int64) error {
	f.seeded = start
	return f.seedErr
}

type fakeProfileRepo struct {
	repositories.ProfileRepository
	maxSuffix int64
	scanErr   error
	online    []models.Profile
	onlineErr error
}

func (f *fakeProfileRepo) MaxModelCodeSuffix() (int64, error) {
	return f.maxSuffix, f.scanErr
}

func (f *fakeProfileRepo) FindOnlineWithMedia() ([]models.Profile, error) {
	return f.online, f.onlineErr
}

func TestAllocateFromCounter(t *testing.T) {
	svc := &ModelCodeServiceImpl{
		counterRepo: &fakeCounterRepo{next: 1000001},
		profileRepo: &fakeProfileRepo{},
		now:         time.Now,
	}

	assert.Equal(t, "M-1000001", svc.Allocate())
	assert.Equal(t, "M-1000002", svc.Allocate())
}

func TestAllocateScanFallback(t *testing.T) {
	counter := &fakeCounterRepo{err: errors.New("connection refused")}
	svc := &ModelCodeServiceImpl{
		counterRepo: counter,
		profileRepo: &fakeProfileRepo{maxSuffix: 1000005},
		now:         time.Now,
	}

	assert.Equal(t, "M-1000006", svc.Allocate())
	assert.Equal(t, int64(1000007), counter.seeded, "fallback should reseed the counter")
}

func TestAllocateScanFallbackEmptyTable(t *testing.T) {
	svc := &ModelCodeServiceImpl{
		counterRepo: &fakeCounterRepo{err: errors.New("down")},
		profileRepo: &fakeProfileRepo{maxSuffix: 0},
		now:         time.Now,
	}

	assert.Equal(t, "M-1000001", svc.Allocate())
}

func TestAllocateTimestampLastResort(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := &ModelCodeServiceImpl{
		counterRepo: &fakeCounterRepo{err: errors.New("down")},
		profileRepo: &fakeProfileRepo{scanErr: errors.New("also down")},
		now:         func() time.Time { return fixed },
	}

	code := svc.Allocate()
	assert.Equal(t, "M-1772366400", code)
	assert.NotEmpty(t, code, "allocation never fails")
}
