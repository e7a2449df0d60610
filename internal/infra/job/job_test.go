package job

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tours/config"
	"tours/internal/errors"
	mockRepo "tours/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPurgeResetsJob_Run(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("purges with the current time", func(t *testing.T) {
		userRepo := mockRepo.NewMockUserRepository(t)
		userRepo.EXPECT().PurgeExpiredResets(mock.Anything, now).Return(3, nil)

		job := NewPurgeResetsJob(userRepo, newDiscardLogger())
		job.now = func() time.Time { return now }

		job.Run()
	})

	t.Run("store failure does not panic", func(t *testing.T) {
		userRepo := mockRepo.NewMockUserRepository(t)
		userRepo.EXPECT().PurgeExpiredResets(mock.Anything, now).Return(0, errors.New("connection reset"))

		job := NewPurgeResetsJob(userRepo, newDiscardLogger())
		job.now = func() time.Time { return now }

		assert.NotPanics(t, job.Run)
	})

	t.Run("runs under a deadline", func(t *testing.T) {
		userRepo := mockRepo.NewMockUserRepository(t)
		userRepo.EXPECT().
			PurgeExpiredResets(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, _ time.Time) {
				_, ok := ctx.Deadline()
				assert.True(t, ok)
			}).
			Return(0, nil)

		NewPurgeResetsJob(userRepo, newDiscardLogger()).Run()
	})
}

func newSchedulerParams(t *testing.T, schedule string) (SchedulerParams, *fxtest.Lifecycle) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Auth: config.AuthConfig{PurgeSchedule: schedule}}

	return SchedulerParams{
		Lc:       lc,
		Cfg:      cfg,
		Logger:   newDiscardLogger(),
		PurgeJob: NewPurgeResetsJob(mockRepo.NewMockUserRepository(t), newDiscardLogger()),
	}, lc
}

func TestNewScheduler(t *testing.T) {
	t.Run("registers the purge job", func(t *testing.T) {
		params, lc := newSchedulerParams(t, "@every 10m")

		scheduler, err := NewScheduler(params)

		require.NoError(t, err)
		assert.Len(t, scheduler.Entries(), 1)

		lc.RequireStart()
		lc.RequireStop()
	})

	t.Run("rejects a malformed schedule", func(t *testing.T) {
		params, _ := newSchedulerParams(t, "every now and then")

		_, err := NewScheduler(params)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid purge schedule")
	})
}
