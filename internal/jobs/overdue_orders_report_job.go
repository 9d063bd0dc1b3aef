package jobs

import (
	"context"
	"log/slog"
	"time"

	"workshop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultOverdueOrdersReportSchedule is used when no schedule is configured.
const DefaultOverdueOrdersReportSchedule = "@every 15m"

type overdueOrdersLister interface {
	Handle(ctx context.Context, query queries.ListOverdueServiceOrdersQuery) ([]queries.OverdueServiceOrder, error)
}

// OverdueOrdersReportJob manages the scheduled report of late service orders.
// On each tick it logs the open orders whose estimated completion has passed.
type OverdueOrdersReportJob struct {
	handler  overdueOrdersLister
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOverdueOrdersReportJob creates the overdue orders report job.
// Uses ListOverdueServiceOrdersQueryHandler on the given cron schedule. An
// empty schedule means DefaultOverdueOrdersReportSchedule.
func NewOverdueOrdersReportJob(
	handler overdueOrdersLister,
	schedule string,
	logger *slog.Logger,
) *OverdueOrdersReportJob {
	if schedule == "" {
		schedule = DefaultOverdueOrdersReportSchedule
	}
	return &OverdueOrdersReportJob{
		handler:  handler,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "overdue_orders_report_job"),
	}
}

// Start registers the report on the schedule and starts the scheduler.
// It fails when the schedule cannot be parsed.
func (j *OverdueOrdersReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue orders report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *OverdueOrdersReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Overdue orders report job stopped")
}

// Run reports the orders overdue as of now, logging how late each one is.
func (j *OverdueOrdersReportJob) Run(ctx context.Context) {
	now := j.now()
	orders, err := j.handler.Handle(ctx, queries.NewListOverdueServiceOrdersQuery(now))
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue orders report failed", "error", err)
		return
	}

	for _, o := range orders {
		j.logger.WarnContext(ctx, "Service order is overdue",
			"order_number", o.OrderNumber,
			"status", o.Status,
			"assigned_to", o.AssignedTo,
			"overdue_by", now.Sub(o.EstimatedCompletion).Round(time.Minute).String(),
		)
	}
	j.logger.InfoContext(ctx, "Overdue orders report finished", "overdue_orders", len(orders))
}
