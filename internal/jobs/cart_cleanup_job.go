package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CartCleanupJob periodically removes abandoned cart lines.
type CartCleanupJob struct {
	handler   commands.CleanupCartsCommandHandler
	retention time.Duration
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewCartCleanupJob creates a job that drops cart lines older than the
// retention period on the given cron schedule.
func NewCartCleanupJob(
	handler commands.CleanupCartsCommandHandler,
	retention time.Duration,
	schedule string,
	logger *slog.Logger,
) *CartCleanupJob {
	return &CartCleanupJob{
		handler:   handler,
		retention: retention,
		schedule:  schedule,
		cron:      cron.New(),
		logger:    logger.With("component", "cart_cleanup_job"),
	}
}

// Start schedules the cleanup job.
func (j *CartCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCleanupCartsCommand(j.retention)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "cart cleanup command rejected", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "cart cleanup failed", "error", handleErr)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "cart cleanup job started",
		"schedule", j.schedule, "retention", j.retention)
	return nil
}

// Stop stops the cleanup job.
func (j *CartCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "cart cleanup job stopped")
}
