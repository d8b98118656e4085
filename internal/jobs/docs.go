// Package jobs provides scheduled background tasks for the field service system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order dispatch and reporting.
//
// # Available Jobs
//
// 1. OrderDispatchJob - Runs every ten seconds to assign the oldest pending order to the best available technician
// 2. PerformanceRefreshJob - Runs nightly at 02:00 to recompute performance counters for every active technician
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchHandler, refreshHandler, technicianUoWFactory, logger)
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
// - Dispatch job ignores expected business errors (no pending orders, no available technicians)
// - Refresh job logs per-technician failures and continues with the rest of the batch
// - Failed job starts will stop any already running jobs
package jobs
