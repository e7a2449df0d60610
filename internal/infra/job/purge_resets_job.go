// Package job runs background maintenance on a cron schedule.
package job

import (
	"context"
	"log/slog"
	"time"

	"tours/internal/domain/lifecycle"
	"tours/internal/domain/repository"
)

// PurgeResetsJob clears password resets whose expiry has passed.
type PurgeResetsJob struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewPurgeResetsJob is the constructor for PurgeResetsJob.
func NewPurgeResetsJob(userRepo repository.UserRepository, logger *slog.Logger) *PurgeResetsJob {
	return &PurgeResetsJob{
		userRepo: userRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// Run implements cron.Job. Failures are logged and retried on the next tick.
func (j *PurgeResetsJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	purged, err := j.userRepo.PurgeExpiredResets(ctx, j.now())
	if err != nil {
		j.logger.Error("Failed to purge expired password resets", slog.Any("error", err))

		return
	}

	if purged > 0 {
		j.logger.Info("Purged expired password resets", slog.Int64("count", purged))
	}
}
