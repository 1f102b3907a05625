package ports

import (
	"context"

	"studyhub/internal/core/domain/model/dispute"
	"studyhub/internal/core/domain/model/kernel"
)

// DisputeRepository defines the persistence contract for dispute episodes.
type DisputeRepository interface {
	// AddExclusive persists a new dispute on the condition that the order
	// has no other unresolved dispute, in one conditional insert. Returns
	// dispute.ErrDisputeAlreadyExists when the guard rejects the row.
	AddExclusive(ctx context.Context, aggregate *dispute.Dispute) error

	// Update persists changes to an existing dispute.
	Update(ctx context.Context, aggregate *dispute.Dispute) error

	// Get retrieves a dispute by its unique identifier. Returns
	// errs.ErrObjectNotFound when no such dispute exists.
	Get(ctx context.Context, id kernel.UUID) (*dispute.Dispute, error)

	// GetUnresolvedByOrder retrieves the order's open dispute, or
	// errs.ErrObjectNotFound when none is open.
	GetUnresolvedByOrder(ctx context.Context, orderID kernel.UUID) (*dispute.Dispute, error)
}
