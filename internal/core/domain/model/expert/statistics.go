package expert

import (
	"errors"
	"time"

	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/pkg/errs"
)

// ErrStatisticsIsNotConstructed is returned when Statistics were not created
// through BuildStatistics.
var ErrStatisticsIsNotConstructed = errors.New("Statistics must be created via BuildStatistics")

// Statistics is the derived per-expert aggregate row: it is rebuilt from
// scratch out of the expert's orders and ratings and is never hand-edited.
// Rebuilding twice over the same source rows yields identical values, so a
// stale row can always be repaired by one more rebuild.
type Statistics struct {
	expertID        kernel.UUID
	totalOrders     int
	completedOrders int
	averageRating   float64
	successRate     float64
	totalEarnings   float64
	updatedAt       time.Time

	isConstructed bool
}

// BuildStatistics computes the aggregate from source figures.
// successRate is derived as completed/total*100 (zero when the expert has no
// orders); averageRating is the mean of the published ratings (zero when
// none exist). The inputs are multisets, so the result does not depend on
// the order prior partial updates happened in.
func BuildStatistics(
	expertID kernel.UUID,
	totalOrders int,
	completedOrders int,
	ratings []int,
	totalEarnings float64,
	now time.Time,
) (*Statistics, error) {
	if err := expertID.Validate(); err != nil {
		return nil, err
	}
	if totalOrders < 0 {
		return nil, errs.NewValueIsInvalidError("totalOrders")
	}
	if completedOrders < 0 || completedOrders > totalOrders {
		return nil, errs.NewValueIsOutOfRangeError("completedOrders", completedOrders, 0, totalOrders)
	}
	if totalEarnings < 0 {
		return nil, errs.NewValueIsInvalidError("totalEarnings")
	}

	var successRate float64
	if totalOrders > 0 {
		successRate = float64(completedOrders) / float64(totalOrders) * 100
	}

	var averageRating float64
	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r
		}
		averageRating = float64(sum) / float64(len(ratings))
	}

	return &Statistics{
		expertID:        expertID,
		totalOrders:     totalOrders,
		completedOrders: completedOrders,
		averageRating:   averageRating,
		successRate:     successRate,
		totalEarnings:   totalEarnings,
		updatedAt:       now,
		isConstructed:   true,
	}, nil
}

// RestoreStatistics reconstructs the aggregate row from persistence with the
// rates that were stored, without recomputing them.
func RestoreStatistics(
	expertID kernel.UUID,
	totalOrders int,
	completedOrders int,
	averageRating float64,
	successRate float64,
	totalEarnings float64,
	updatedAt time.Time,
) (*Statistics, error) {
	if err := expertID.Validate(); err != nil {
		return nil, err
	}
	if totalOrders < 0 {
		return nil, errs.NewValueIsInvalidError("totalOrders")
	}
	if completedOrders < 0 || completedOrders > totalOrders {
		return nil, errs.NewValueIsOutOfRangeError("completedOrders", completedOrders, 0, totalOrders)
	}

	return &Statistics{
		expertID:        expertID,
		totalOrders:     totalOrders,
		completedOrders: completedOrders,
		averageRating:   averageRating,
		successRate:     successRate,
		totalEarnings:   totalEarnings,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Statistics were properly constructed.
func (s *Statistics) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStatisticsIsNotConstructed
	}
	return nil
}

// ExpertID returns the expert these aggregates describe.
func (s *Statistics) ExpertID() kernel.UUID {
	return s.expertID
}

// TotalOrders returns the number of orders ever assigned to the expert.
func (s *Statistics) TotalOrders() int {
	return s.totalOrders
}

// CompletedOrders returns the number of orders the expert completed.
func (s *Statistics) CompletedOrders() int {
	return s.completedOrders
}

// AverageRating returns the mean of the expert's published ratings.
func (s *Statistics) AverageRating() float64 {
	return s.averageRating
}

// SuccessRate returns completed/total as a percentage within [0, 100].
func (s *Statistics) SuccessRate() float64 {
	return s.successRate
}

// TotalEarnings returns the sum of the expert's settled payouts.
func (s *Statistics) TotalEarnings() float64 {
	return s.totalEarnings
}

// UpdatedAt returns the time of the last rebuild.
func (s *Statistics) UpdatedAt() time.Time {
	return s.updatedAt
}
