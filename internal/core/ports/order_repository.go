package ports

import (
	"context"
	"time"

	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Besides plain CRUD it exposes the conditional writes the lifecycle relies
// on: claiming, optimistic status transitions and deadline expiry are all
// single atomic UPDATEs at the storage level.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateStatusFrom persists the aggregate's current state on the
	// condition that the stored row still carries the given status.
	// Returns errs.ErrConflict when the row moved on under a concurrent
	// writer, without mutating storage.
	UpdateStatusFrom(ctx context.Context, aggregate *order.Order, from order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ClaimForExpert atomically assigns the order to the expert with a
	// single conditional update (status new, no expert). Zero rows affected
	// means the claim lost the race or the order moved on; that surfaces as
	// order.ErrOrderNotAvailable.
	ClaimForExpert(ctx context.Context, orderID kernel.UUID, expertID kernel.UUID) error

	// CountActiveByExpert counts the expert's orders in active statuses
	// (in_progress, revision). Feeds the workload cap check.
	CountActiveByExpert(ctx context.Context, expertID kernel.UUID) (int, error)

	// GetAllActive retrieves every order in a non-terminal status.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllByExpert retrieves every order ever assigned to the expert.
	// Feeds the statistics rebuild.
	GetAllByExpert(ctx context.Context, expertID kernel.UUID) ([]*order.Order, error)

	// ExpireOverdue cancels every new order whose deadline passed before
	// now, in one conditional update. Returns the number of orders
	// cancelled; zero is a normal outcome, re-running is a no-op.
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}
