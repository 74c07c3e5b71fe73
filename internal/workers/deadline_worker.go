package workers

import (
	"context"
	"time"

	"elgrace_backend/internal/logger"
	"elgrace_backend/internal/repositories"
)

// DeadlineWorker sweeps open castings whose application deadline has passed
// and closes them. Runs hourly, plus once at startup so a restart does not
// leave stale castings open for another hour.
type DeadlineWorker struct {
	castingRepo repositories.CastingRepository
	interval    time.Duration
}

func NewDeadlineWorker(castingRepo repositories.CastingRepository) *DeadlineWorker {
	return &DeadlineWorker{
		castingRepo: castingRepo,
		interval:    time.Hour,
	}
}

func (w *DeadlineWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *DeadlineWorker) run(ctx context.Context) {
	w.sweep()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("deadline worker stopped")
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *DeadlineWorker) sweep() {
	closed, err := w.castingRepo.CloseExpired(time.Now())
	if err != nil {
		logger.WorkerLog("deadline", "close expired castings", err)
		return
	}
	if closed > 0 {
		logger.Info("closed expired castings", "count", closed)
	}
}
