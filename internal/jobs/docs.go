// Package jobs provides background components for the laundry order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// together with long-running consumers of the order change stream.
//
// # Available Components
//
// 1. OrderStatsJob - Periodically refreshes the prometheus order book gauges
// (orders per status, delivered revenue) from the read model
// 2. TransitionRecorder - Consumes the order change stream and counts
// committed status transitions
//
// # Usage
//
// Components are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(statsHandler, schedule, changeStream, logger)
//
//	// Start everything
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop everything when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The stats job uses a six-field cron expression taken from configuration,
// "*/15 * * * * *" by default. The transition recorder is not scheduled; it
// reacts to change stream events as they arrive.
//
// # Error Handling
//
// - Stats refresh failures are logged and retried on the next tick
// - Failed component starts will stop any already running components
package jobs
