package queries

import (
	"errors"
	"time"

	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/pkg/guard"
)

var ErrGetExpertStatisticsQueryIsNotConstructed = errors.New(
	"GetExpertStatisticsQuery must be created via NewGetExpertStatisticsQuery constructor",
)

// GetExpertStatisticsQuery retrieves the derived aggregate row for one expert.
type GetExpertStatisticsQuery struct { //nolint:recvcheck //using for validation
	expertID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetExpertStatisticsQuery creates a query for one expert's statistics.
func NewGetExpertStatisticsQuery(expertID kernel.UUID) (GetExpertStatisticsQuery, error) {
	if err := expertID.Validate(); err != nil {
		return GetExpertStatisticsQuery{}, err
	}

	return GetExpertStatisticsQuery{
		expertID: expertID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// ExpertID returns the expert whose statistics are requested.
func (q GetExpertStatisticsQuery) ExpertID() kernel.UUID {
	return q.expertID
}

// Validate ensures the query was created through the constructor.
func (q GetExpertStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetExpertStatisticsQueryIsNotConstructed)
}

// GetExpertStatisticsQueryResponse represents the aggregate row in the read model.
type GetExpertStatisticsQueryResponse struct {
	ExpertID        kernel.UUID
	TotalOrders     int
	CompletedOrders int
	AverageRating   float64
	SuccessRate     float64
	TotalEarnings   float64
	UpdatedAt       time.Time
}
