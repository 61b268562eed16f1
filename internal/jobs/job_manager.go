package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"returns/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleReturnReminderJob *StaleReturnReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	staleReturnsHandler queries.GetStaleReturnsQueryHandler,
	staleReturnAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleReturnReminderJob: NewStaleReturnReminderJob(staleReturnsHandler, staleReturnAge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleReturnReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale return reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleReturnReminderJob.Stop()
}
