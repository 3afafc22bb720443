// Package jobs provides scheduled background tasks for the pressing service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the shop.
//
// # Available Jobs
//
// 1. StatusReportJob - Counts orders per status, updates the
// pressing_orders_by_status gauge and logs the counts
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(countHandler, recorder, "0 * * * * *", logger)
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
// Schedules use the cron syntax with a leading seconds field. The status
// report defaults to "0 * * * * *", once a minute.
//
// # Error Handling
//
// - A failed report is logged and retried at the next tick
// - Failed job starts will stop any already running jobs
package jobs
