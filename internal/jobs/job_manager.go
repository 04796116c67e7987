package jobs

import (
	"fmt"
	"log/slog"

	"laundromart/internal/core/application/usecases/queries"
	"laundromart/internal/core/ports"
)

// JobManager coordinates all background components of the application.
// Provides a unified interface to start and stop them together.
type JobManager struct {
	orderStatsJob      *OrderStatsJob
	transitionRecorder *TransitionRecorder
}

// NewJobManager creates a job manager with all required background components.
func NewJobManager(
	statsHandler queries.GetOrderStatsQueryHandler,
	statsSchedule string,
	changeStream ports.ChangeStream,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderStatsJob:      NewOrderStatsJob(statsHandler, statsSchedule, logger),
		transitionRecorder: NewTransitionRecorder(changeStream, logger),
	}
}

// StartAll starts all background components.
// Returns an error if any of them fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.transitionRecorder.Start(); err != nil {
		return fmt.Errorf("failed to start transition recorder: %w", err)
	}

	if err := jm.orderStatsJob.Start(); err != nil {
		// Stop already started components if this one fails
		jm.transitionRecorder.Stop()
		return fmt.Errorf("failed to start order stats job: %w", err)
	}

	return nil
}

// StopAll stops all background components gracefully.
func (jm *JobManager) StopAll() {
	jm.orderStatsJob.Stop()
	jm.transitionRecorder.Stop()
}
