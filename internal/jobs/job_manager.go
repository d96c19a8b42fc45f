// Package jobs provides scheduled background tasks for the fulfillment
// system, implemented with github.com/robfig/cron/v3 and managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(cleanupHandler, retention, schedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//	    log.Fatal("failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	cartCleanupJob *CartCleanupJob
}

// NewJobManager creates a job manager with all required jobs wired to
// their command handlers.
func NewJobManager(
	cleanupHandler commands.CleanupCartsCommandHandler,
	cartRetention time.Duration,
	cleanupSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		cartCleanupJob: NewCartCleanupJob(cleanupHandler, cartRetention, cleanupSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.cartCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start cart cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs.
func (jm *JobManager) StopAll() {
	jm.cartCleanupJob.Stop()
}
