package jobs

import (
	"fmt"
	"log/slog"

	"retailedge/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	backlogReportJob *OrderBacklogReportJob
	stalePendingJob  *StalePendingOrdersJob
}

// NewJobManager creates a new job manager with all required jobs.
// Both jobs read through the orders query handler.
func NewJobManager(getOrdersHandler queries.GetOrdersQueryHandler, logger *slog.Logger) *JobManager {
	return &JobManager{
		backlogReportJob: NewOrderBacklogReportJob(getOrdersHandler, logger),
		stalePendingJob:  NewStalePendingOrdersJob(getOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.backlogReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start order backlog report job: %w", err)
	}

	if err := jm.stalePendingJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.backlogReportJob.Stop()
		return fmt.Errorf("failed to start stale pending orders job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stalePendingJob.Stop()
	jm.backlogReportJob.Stop()
}
