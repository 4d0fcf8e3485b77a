package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderStatsJob *OrderStatsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	orderStatsHandler queries.GetOrderStatsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderStatsJob: NewOrderStatsJob(orderStatsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.orderStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start order stats job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderStatsJob.Stop()
}
