// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// for periodic operational reporting. Jobs only read; every order mutation
// stays synchronous in the request path.
//
// # Available Jobs
//
// 1. OrderBacklogReportJob - Runs every minute to log order counts per status
// 2. StalePendingOrdersJob - Runs every five minutes to flag orders stuck in PENDING
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the orders query handler
//	jobManager := jobs.NewJobManager(getOrdersHandler, logger)
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
// Report jobs log query failures and skip the cycle; the next scheduled run
// retries from scratch. Failed job starts stop any already running jobs.
package jobs
