// Package jobs provides scheduled background tasks for the print shop system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order management service.
//
// # Available Jobs
//
// 1. NotificationDispatchJob - Runs every five seconds to drain the status
// notification queue and dispatch each entry through the configured sender
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the queue and sender
//	jobManager := jobs.NewJobManager(queue, sender, logger)
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
// Send failures are logged and the notification is dropped. Delivery is
// fire-and-forget: the status change that produced the notification has
// already committed, so dispatch problems never surface to the caller.
package jobs
