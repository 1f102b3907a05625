package jobs

import (
	"context"
	"log/slog"

	"studyhub/internal/core/application/usecases/commands"
	"studyhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StatisticsRefreshJob periodically rebuilds every registered expert's
// statistics from the order and rating history. Recomputation is the
// source of truth; the job exists so stored aggregates cannot drift for
// long even if an inline update was missed.
type StatisticsRefreshJob struct {
	db      *gorm.DB
	handler commands.RecomputeStatisticsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatisticsRefreshJob creates a new job for refreshing expert statistics.
func NewStatisticsRefreshJob(
	db *gorm.DB,
	handler commands.RecomputeStatisticsCommandHandler,
	logger *slog.Logger,
) *StatisticsRefreshJob {
	return &StatisticsRefreshJob{
		db:      db,
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "statistics_refresh_job"),
	}
}

// Start begins the statistics refresh job to run every five minutes.
func (j *StatisticsRefreshJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		j.refreshAll(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Statistics refresh job started (running every five minutes)")
	return nil
}

// Stop stops the statistics refresh job.
func (j *StatisticsRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Statistics refresh job stopped")
}

// refreshAll recomputes statistics for every expert with a registered
// specialization. A failure for one expert is logged and does not block
// the rest of the sweep.
func (j *StatisticsRefreshJob) refreshAll(ctx context.Context) {
	expertIDs, err := j.listExpertIDs(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Statistics refresh job failed to list experts", "error", err)
		return
	}

	for _, expertID := range expertIDs {
		cmd, err := commands.NewRecomputeStatisticsCommand(expertID)
		if err != nil {
			j.logger.ErrorContext(ctx, "Statistics refresh job skipped expert",
				"expert_id", expertID.String(), "error", err)
			continue
		}

		if _, err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Statistics refresh failed for expert",
				"expert_id", expertID.String(), "error", err)
		}
	}
}

func (j *StatisticsRefreshJob) listExpertIDs(ctx context.Context) ([]kernel.UUID, error) {
	var ids []uuid.UUID

	err := j.db.WithContext(ctx).
		Raw("SELECT DISTINCT expert_id FROM specializations ORDER BY expert_id").
		Scan(&ids).Error
	if err != nil {
		return nil, err
	}

	expertIDs := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		expertID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		expertIDs = append(expertIDs, expertID)
	}

	return expertIDs, nil
}
