package commands

import (
	"context"
	"time"

	"studyhub/internal/core/domain/model/expert"
	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/core/domain/model/order"
	"studyhub/internal/core/ports"
)

// recomputeStatistics rebuilds the expert's statistics row from the orders
// and ratings visible to the given repositories. Callers run it inside the
// same transaction as the triggering write so the rebuild sees a consistent
// snapshot; the result is the same however many times it runs.
func recomputeStatistics(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	expertRepo ports.ExpertRepository,
	expertID kernel.UUID,
	now time.Time,
) (*expert.Statistics, error) {
	orders, err := orderRepo.GetAllByExpert(ctx, expertID)
	if err != nil {
		return nil, err
	}

	var (
		completed int
		earnings  float64
	)
	for _, o := range orders {
		if o.Status() != order.StatusCompleted {
			continue
		}
		completed++
		if price := o.FinalPrice(); price != nil {
			earnings += *price
		}
	}

	ratings, err := expertRepo.GetRatingsByExpert(ctx, expertID)
	if err != nil {
		return nil, err
	}

	values := make([]int, 0, len(ratings))
	for _, r := range ratings {
		values = append(values, r.Value())
	}

	stats, err := expert.BuildStatistics(expertID, len(orders), completed, values, earnings, now)
	if err != nil {
		return nil, err
	}

	if err = expertRepo.SaveStatistics(ctx, stats); err != nil {
		return nil, err
	}

	return stats, nil
}
