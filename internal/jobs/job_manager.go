package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules holds cron specs for the report jobs. Empty values take the
// job defaults.
type Schedules struct {
	LowStockReport      string
	OverdueOrdersReport string
}

// JobManager starts and stops the scheduled jobs together.
type JobManager struct {
	lowStockReportJob      *LowStockReportJob
	overdueOrdersReportJob *OverdueOrdersReportJob
}

// NewJobManager creates both report jobs with their schedules and a shared
// logger. Nothing runs until StartAll.
func NewJobManager(
	lowStockHandler lowStockLister,
	overdueOrdersHandler overdueOrdersLister,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		lowStockReportJob:      NewLowStockReportJob(lowStockHandler, schedules.LowStockReport, logger),
		overdueOrdersReportJob: NewOverdueOrdersReportJob(overdueOrdersHandler, schedules.OverdueOrdersReport, logger),
	}
}

// StartAll starts every job. When one fails, the jobs already started are
// stopped again.
func (jm *JobManager) StartAll() error {
	if err := jm.lowStockReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start low stock report job: %w", err)
	}

	if err := jm.overdueOrdersReportJob.Start(); err != nil {
		jm.lowStockReportJob.Stop()
		return fmt.Errorf("failed to start overdue orders report job: %w", err)
	}

	return nil
}

// StopAll waits for running reports to finish.
func (jm *JobManager) StopAll() {
	jm.overdueOrdersReportJob.Stop()
	jm.lowStockReportJob.Stop()
}
