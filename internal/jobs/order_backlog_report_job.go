package jobs

import (
	"context"
	"log/slog"

	"retailedge/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderBacklogReportJob periodically logs how many orders sit in each
// lifecycle status. The counts feed dashboards and alerting; the job never
// mutates anything.
type OrderBacklogReportJob struct {
	handler queries.GetOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderBacklogReportJob creates a job that reports the order backlog once
// a minute.
func NewOrderBacklogReportJob(handler queries.GetOrdersQueryHandler, logger *slog.Logger) *OrderBacklogReportJob {
	return &OrderBacklogReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "order_backlog_report_job"),
	}
}

// Start begins the backlog report job to run every minute.
func (j *OrderBacklogReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetOrdersQuery(nil, nil)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order backlog report job failed to build query", "error", err)
			return
		}

		orders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order backlog report job failed", "error", err)
			return
		}

		counts := make(map[string]int)
		for _, o := range orders {
			counts[o.Status.String()]++
		}

		j.logger.InfoContext(ctx, "Order backlog", "total", len(orders), "by_status", counts)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order backlog report job started (running every minute)")
	return nil
}

// Stop stops the backlog report job.
func (j *OrderBacklogReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order backlog report job stopped")
}
