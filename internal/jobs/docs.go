// Package jobs provides scheduled background tasks for the trip engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// SLAMonitorJob runs the SLA monitor sweep every SLA_MONITOR_INTERVAL (5s by
// default): running trips advance their progress, and trips waiting in a
// monitored stage past its SLA get flagged once.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(&monitorHandler, cfg.SLAMonitorInterval, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule is "@every <interval>". Overlapping runs are skipped through
// cron.SkipIfStillRunning, and StopAll blocks until a running sweep returns.
//
// # Error Handling
//
// A sweep logs and counts per-trip failures itself; the job only logs sweeps
// that fail as a whole. Panics are recovered and logged by cron.Recover.
package jobs
