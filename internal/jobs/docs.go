// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order lifecycle maintenance.
//
// # Available Jobs
//
// 1. OrderTimeoutJob - Runs every minute to cancel orders stuck in pending payment
// 2. StaleDeliveryJob - Runs nightly to complete deliveries the courier forgot to close out
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelTimedOutHandler, completeStaleHandler, logger)
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
// - Both sweeps skip orders lost to concurrent user actions; those are expected outcomes
// - Remaining failures are joined per batch and logged, never fatal
// - Failed job starts will stop any already running jobs
package jobs
