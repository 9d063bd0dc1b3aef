// Package jobs runs the workshop's scheduled reports on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
//  1. LowStockReportJob - logs active parts at or below their minimum stock
//     level (default "@every 1h")
//  2. OverdueOrdersReportJob - logs open service orders past their estimated
//     completion (default "@every 15m")
//
// # Usage
//
//	jobManager := jobs.NewJobManager(lowStockHandler, overdueHandler, jobs.Schedules{
//		LowStockReport: "0 0 7 * * *",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron format with seconds, or a descriptor such
// as "@every 30m" or "@daily". An unparsable schedule fails StartAll.
//
// # Error Handling
//
// A failed report is logged and retried on the next tick.
package jobs
