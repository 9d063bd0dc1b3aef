package jobs

import (
	"context"
	"log/slog"

	"workshop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultLowStockReportSchedule is used when no schedule is configured.
const DefaultLowStockReportSchedule = "@every 1h"

type lowStockLister interface {
	Handle(ctx context.Context, query queries.ListLowStockPartsQuery) ([]queries.LowStockPart, error)
}

// LowStockReportJob manages the scheduled inventory report.
// On each tick it logs every active part at or below its minimum stock level.
type LowStockReportJob struct {
	handler  lowStockLister
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewLowStockReportJob creates the low stock report job.
// Uses ListLowStockPartsQueryHandler on the given cron schedule, which may use
// seconds or descriptors such as "@every 30m". An empty schedule means
// DefaultLowStockReportSchedule.
func NewLowStockReportJob(handler lowStockLister, schedule string, logger *slog.Logger) *LowStockReportJob {
	if schedule == "" {
		schedule = DefaultLowStockReportSchedule
	}
	return &LowStockReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "low_stock_report_job"),
	}
}

// Start registers the report on the schedule and starts the scheduler.
// It fails when the schedule cannot be parsed.
func (j *LowStockReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *LowStockReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Low stock report job stopped")
}

// Run performs a single report. A failing query is logged, not returned.
func (j *LowStockReportJob) Run(ctx context.Context) {
	parts, err := j.handler.Handle(ctx, queries.NewListLowStockPartsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock report failed", "error", err)
		return
	}

	for _, p := range parts {
		j.logger.WarnContext(ctx, "Part stock at or below minimum",
			"part_id", p.ID,
			"part_number", p.PartNumber,
			"stock_quantity", p.StockQuantity,
			"min_stock_level", p.MinStockLevel,
		)
	}
	j.logger.InfoContext(ctx, "Low stock report finished", "low_stock_parts", len(parts))
}
