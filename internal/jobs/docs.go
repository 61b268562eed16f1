// Package jobs provides scheduled background tasks for the return service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the return lifecycle.
//
// # Available Jobs
//
// 1. StaleReturnReminderJob - Runs hourly to surface returns that were requested but never shipped back
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(staleReturnsHandler, staleReturnAge, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The reminder job uses the "@hourly" cron expression. Reminders are
// idempotent log records; running the job more often only repeats them.
//
// # Error Handling
//
// Query failures are logged and the tick is skipped; the schedule keeps
// running so a transient database error does not stop future reminders.
package jobs
