package jobs

import (
	"fmt"
	"log/slog"

	"studyhub/internal/core/application/usecases/commands"

	"gorm.io/gorm"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderExpiryJob       *OrderExpiryJob
	statisticsRefreshJob *StatisticsRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	db *gorm.DB,
	expireOrdersHandler commands.ExpireOrdersCommandHandler,
	recomputeStatisticsHandler commands.RecomputeStatisticsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderExpiryJob:       NewOrderExpiryJob(expireOrdersHandler, logger),
		statisticsRefreshJob: NewStatisticsRefreshJob(db, recomputeStatisticsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start order expiry job: %w", err)
	}

	if err := jm.statisticsRefreshJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderExpiryJob.Stop()
		return fmt.Errorf("failed to start statistics refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderExpiryJob.Stop()
	jm.statisticsRefreshJob.Stop()
}
