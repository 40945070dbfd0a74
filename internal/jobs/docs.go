// Package jobs provides scheduled background tasks for the workshop system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the workflow engine.
//
// # Available Jobs
//
// 1. StalledOrderJob - Periodically flags uncompleted orders whose latest
// status change is older than the configured threshold, so dispatchers can
// chase them before customers do.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(stalledOrdersHandler, stalledAfter, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; a failed sweep
// never stops the scheduler.
package jobs
