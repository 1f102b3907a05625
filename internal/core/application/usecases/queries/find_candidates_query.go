// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/pkg/guard"
)

var ErrFindCandidatesQueryIsNotConstructed = errors.New(
	"FindCandidatesQuery must be created via NewFindCandidatesQuery constructor",
)

// FindCandidatesQuery retrieves the ranked expert candidates for one order.
// The snapshot joins verified specializations for the order's subject with
// the experts' statistics and live workload, then the domain matcher filters
// and ranks it.
//
// Example:
//
//	query, err := NewFindCandidatesQuery(orderID, 5)
//	if err != nil {
//	    return err
//	}
//
//	candidates, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to find candidates: %w", err)
//	}
//
//	for _, c := range candidates {
//	    fmt.Printf("Expert %s scored %.3f\n", c.ExpertID, c.Score)
//	}
type FindCandidatesQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	limit   int

	guard guard.ConstructorGuard
}

// NewFindCandidatesQuery creates a query for one order's candidate ranking.
// A non-positive limit falls back to the matcher's default.
func NewFindCandidatesQuery(orderID kernel.UUID, limit int) (FindCandidatesQuery, error) {
	if err := orderID.Validate(); err != nil {
		return FindCandidatesQuery{}, err
	}

	return FindCandidatesQuery{
		orderID: orderID,
		limit:   limit,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order whose candidates are requested.
func (q FindCandidatesQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Limit returns the requested ranking size.
func (q FindCandidatesQuery) Limit() int {
	return q.limit
}

// Validate ensures the query was created through the constructor.
func (q FindCandidatesQuery) Validate() error {
	return q.guard.Validate(ErrFindCandidatesQueryIsNotConstructed)
}

// FindCandidatesQueryResponse represents one ranked candidate in the read model.
type FindCandidatesQueryResponse struct {
	ExpertID        kernel.UUID
	Score           float64
	AverageRating   float64
	SuccessRate     float64
	ExperienceYears int
	Workload        int
}
