package jobs

import (
	"context"
	"log/slog"
	"time"

	"retailedge/internal/core/application/usecases/queries"
	"retailedge/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// stalePendingThreshold is how long an order may stay in PENDING before the
// job flags it.
const stalePendingThreshold = time.Hour

// StalePendingOrdersJob periodically flags orders that have been stuck in
// PENDING longer than the threshold. Someone has to confirm or cancel those
// by hand; the job only surfaces them.
type StalePendingOrdersJob struct {
	handler queries.GetOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStalePendingOrdersJob creates a job that checks for stale pending orders
// every five minutes.
func NewStalePendingOrdersJob(handler queries.GetOrdersQueryHandler, logger *slog.Logger) *StalePendingOrdersJob {
	return &StalePendingOrdersJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_pending_orders_job"),
	}
}

// Start begins the stale pending orders job to run every five minutes.
func (j *StalePendingOrdersJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", func() {
		ctx := context.Background()

		pending := order.Pending
		query, err := queries.NewGetOrdersQuery(nil, &pending)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale pending orders job failed to build query", "error", err)
			return
		}

		orders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale pending orders job failed", "error", err)
			return
		}

		cutoff := time.Now().UTC().Add(-stalePendingThreshold)
		stale := 0
		for _, o := range orders {
			if o.CreatedAt.Before(cutoff) {
				stale++
				j.logger.WarnContext(ctx, "Order stuck in PENDING",
					"order_id", o.ID.String(),
					"customer_id", o.CustomerID.String(),
					"created_at", o.CreatedAt,
				)
			}
		}

		if stale > 0 {
			j.logger.InfoContext(ctx, "Stale pending orders detected", "count", stale)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale pending orders job started (running every five minutes)")
	return nil
}

// Stop stops the stale pending orders job.
func (j *StalePendingOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale pending orders job stopped")
}
