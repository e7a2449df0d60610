package job

import (
	"context"
	"log/slog"

	"tours/config"
	"tours/internal/errors"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// SchedulerParams holds dependencies for the job scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	PurgeJob *PurgeResetsJob
}

// NewScheduler registers every job and ties the scheduler to the fx lifecycle.
func NewScheduler(params SchedulerParams) (*cron.Cron, error) {
	logger := params.Logger.With(slog.String("component", "scheduler"))
	cronLog := &cronLogger{logger: logger}

	scheduler := cron.New(
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)

	if _, err := scheduler.AddJob(params.Cfg.Auth.PurgeSchedule, params.PurgeJob); err != nil {
		return nil, errors.Wrapf(err, "invalid purge schedule %q", params.Cfg.Auth.PurgeSchedule)
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			scheduler.Start()
			logger.Info("Job scheduler started", slog.Int("jobs", len(scheduler.Entries())))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			done := scheduler.Stop()
			select {
			case <-done.Done():
				logger.Info("Job scheduler stopped")
			case <-ctx.Done():
				logger.Warn("Job scheduler stop timed out; running jobs abandoned")
			}

			return nil
		},
	})

	return scheduler, nil
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l *cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, slog.Any("error", err))...)
}
