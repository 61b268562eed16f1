package jobs

import (
	"context"
	"log/slog"
	"time"

	"returns/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StaleReturnReminderJob periodically looks for returns that were
// requested but never shipped back and logs a reminder for each one, so
// follow-up notifications can be triggered from the log pipeline.
type StaleReturnReminderJob struct {
	handler   queries.GetStaleReturnsQueryHandler
	olderThan time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleReturnReminderJob creates a job that reminds about returns
// still in requested status after olderThan has passed.
func NewStaleReturnReminderJob(
	handler queries.GetStaleReturnsQueryHandler,
	olderThan time.Duration,
	logger *slog.Logger,
) *StaleReturnReminderJob {
	return &StaleReturnReminderJob{
		handler:   handler,
		olderThan: olderThan,
		cron:      cron.New(),
		logger:    logger.With("component", "stale_return_reminder_job"),
	}
}

// Start begins the reminder job to run at the top of every hour.
func (j *StaleReturnReminderJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		ctx := context.Background()

		query, err := queries.NewGetStaleReturnsQuery(j.olderThan)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale return reminder job misconfigured", "error", err)
			return
		}

		staleReturns, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale return reminder job failed", "error", err)
			return
		}

		for _, ret := range staleReturns {
			j.logger.InfoContext(ctx, "Return awaiting shipment",
				"return_id", ret.ID.String(),
				"requested_at", ret.CreatedAt,
				"age", time.Since(ret.CreatedAt).Round(time.Minute),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale return reminder job started (running hourly)")
	return nil
}

// Stop stops the reminder job.
func (j *StaleReturnReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale return reminder job stopped")
}
