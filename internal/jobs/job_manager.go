package jobs

import (
	"fmt"
	"log/slog"

	"fieldops/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderDispatchJob      *OrderDispatchJob
	performanceRefreshJob *PerformanceRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	dispatchHandler commands.DispatchPendingOrderCommandHandler,
	refreshHandler commands.RefreshPerformanceCommandHandler,
	technicianUoWFactory commands.TechnicianUoWFactory,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderDispatchJob:      NewOrderDispatchJob(dispatchHandler, logger),
		performanceRefreshJob: NewPerformanceRefreshJob(refreshHandler, technicianUoWFactory, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start order dispatch job: %w", err)
	}

	if err := jm.performanceRefreshJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderDispatchJob.Stop()
		return fmt.Errorf("failed to start performance refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.performanceRefreshJob.Stop()
	jm.orderDispatchJob.Stop()
}
