// Package jobs provides the scheduled background tasks of the orchestrator.
// Jobs are read-only: assignment happens exclusively inside order
// confirmation, never from the background.
package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderStatsJob logs a per-status order count snapshot every minute. It gives
// operators a heartbeat view of the pipeline without touching any state.
type OrderStatsJob struct {
	handler queries.GetOrderStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderStatsJob creates the periodic stats snapshot job.
func NewOrderStatsJob(handler queries.GetOrderStatsQueryHandler, logger *slog.Logger) *OrderStatsJob {
	return &OrderStatsJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_stats_job"),
	}
}

// Start begins the stats job, running at the top of every minute.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetOrderStatsQuery()

		buckets, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed", "error", err)
			return
		}

		attrs := make([]any, 0, len(buckets)*2)
		for _, bucket := range buckets {
			attrs = append(attrs, bucket.Status, bucket.Count)
		}
		j.logger.InfoContext(ctx, "Order pipeline snapshot", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started (running every minute)")
	return nil
}

// Stop stops the stats job.
func (j *OrderStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}
