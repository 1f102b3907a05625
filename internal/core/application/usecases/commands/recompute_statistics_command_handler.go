package commands

import (
	"context"
	"time"

	"studyhub/internal/core/domain/model/expert"
)

// RecomputeStatisticsCommandHandler rebuilds expert statistics on demand.
// The rebuild reads orders and ratings in one transaction snapshot and
// upserts the derived row; running it twice with no intervening writes
// produces identical results, so concurrent recomputes need no locking.
type RecomputeStatisticsCommandHandler struct {
	uowFactory UoWFactory
}

// NewRecomputeStatisticsCommandHandler creates a handler for statistics
// rebuilds. Requires a UoWFactory for transactional persistence.
func NewRecomputeStatisticsCommandHandler(uowFactory UoWFactory) RecomputeStatisticsCommandHandler {
	return RecomputeStatisticsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle rebuilds and returns the expert's statistics.
func (h *RecomputeStatisticsCommandHandler) Handle(
	ctx context.Context,
	cmd RecomputeStatisticsCommand,
) (*expert.Statistics, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stats, err := recomputeStatistics(
		ctx, uow.OrderRepository(), uow.ExpertRepository(), cmd.ExpertID(), time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}
