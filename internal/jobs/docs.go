// Package jobs provides scheduled background tasks for the order
// processing service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderProcessingJob - Runs on a configurable schedule, discovers users
// with unprocessed orders and runs the order processor once per user.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(processingJob)
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
// A failed batch for one user is logged and does not prevent the batches
// of the remaining users from running.
package jobs
