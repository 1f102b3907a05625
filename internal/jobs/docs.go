// Package jobs provides scheduled background tasks for the order brokering
// core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic housekeeping the service needs.
//
// # Available Jobs
//
// 1. OrderExpiryJob - Runs every minute to cancel unclaimed orders whose deadline has passed
// 2. StatisticsRefreshJob - Runs every five minutes to rebuild expert statistics from the order and rating history
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(db, expireOrdersHandler, recomputeStatisticsHandler, logger)
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
// - The expiry sweep is one idempotent statement; failures are logged and retried on the next tick
// - The refresh job recomputes per expert and a failure for one expert does not block the rest
// - Failed job starts will stop any already running jobs
package jobs
