package jobs

import (
	"fmt"
	"log/slog"

	"takeout/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderTimeoutJob  *OrderTimeoutJob
	staleDeliveryJob *StaleDeliveryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	cancelTimedOutHandler commands.CancelTimedOutOrdersCommandHandler,
	completeStaleHandler commands.CompleteStaleDeliveriesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderTimeoutJob:  NewOrderTimeoutJob(cancelTimedOutHandler, logger),
		staleDeliveryJob: NewStaleDeliveryJob(completeStaleHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderTimeoutJob.Start(); err != nil {
		return fmt.Errorf("failed to start order timeout job: %w", err)
	}

	if err := jm.staleDeliveryJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderTimeoutJob.Stop()
		return fmt.Errorf("failed to start stale delivery job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleDeliveryJob.Stop()
	jm.orderTimeoutJob.Stop()
}
