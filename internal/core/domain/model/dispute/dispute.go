package dispute

import (
	"errors"
	"fmt"
	"time"

	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/core/domain/model/order"
	"studyhub/internal/pkg/errs"
)

var (
	// ErrDisputeIsNotConstructed is returned when a Dispute was not created
	// through NewDispute or RestoreDispute.
	ErrDisputeIsNotConstructed = errors.New("Dispute must be created via NewDispute or RestoreDispute")

	// ErrDisputeAlreadyExists is returned when an unresolved dispute is
	// already open for the order; a new conflict episode requires the prior
	// one to be resolved first.
	ErrDisputeAlreadyExists = errors.New("an unresolved dispute already exists for the order")
)

// Dispute is one conflict episode on an order. It is created once, optionally
// gets an arbitrator, and is closed exactly once by a resolution.
type Dispute struct {
	id           kernel.UUID
	orderID      kernel.UUID
	raisedBy     kernel.UUID
	reason       string
	arbitratorID *kernel.UUID
	resolved     bool
	outcome      *Outcome
	result       string
	createdAt    time.Time
	resolvedAt   *time.Time

	isConstructed bool
}

// NewDispute opens a conflict episode. Exclusivity against other unresolved
// disputes on the same order is enforced at the storage layer, inside the
// same transaction that moves the order to disputed.
func NewDispute(
	id kernel.UUID,
	orderID kernel.UUID,
	raisedBy kernel.UUID,
	reason string,
	now time.Time,
) (*Dispute, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		raisedBy.Validate(),
	); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}

	return &Dispute{
		id:            id,
		orderID:       orderID,
		raisedBy:      raisedBy,
		reason:        reason,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreDispute reconstructs a Dispute from persistence without reapplying
// lifecycle rules.
func RestoreDispute(
	id kernel.UUID,
	orderID kernel.UUID,
	raisedBy kernel.UUID,
	reason string,
	arbitratorID *kernel.UUID,
	resolved bool,
	outcome *Outcome,
	result string,
	createdAt time.Time,
	resolvedAt *time.Time,
) (*Dispute, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		raisedBy.Validate(),
	); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}
	if arbitratorID != nil {
		if err := arbitratorID.Validate(); err != nil {
			return nil, err
		}
	}
	if outcome != nil {
		if err := outcome.Validate(); err != nil {
			return nil, err
		}
	}
	if resolved && outcome == nil {
		return nil, errs.NewValueIsRequiredError("outcome")
	}

	return &Dispute{
		id:            id,
		orderID:       orderID,
		raisedBy:      raisedBy,
		reason:        reason,
		arbitratorID:  arbitratorID,
		resolved:      resolved,
		outcome:       outcome,
		result:        result,
		createdAt:     createdAt,
		resolvedAt:    resolvedAt,
		isConstructed: true,
	}, nil
}

// AssignArbitrator sets the arbitrator handling the episode. Re-assigning
// the same arbitrator is a no-op; switching arbitrators or assigning on a
// resolved dispute fails.
func (d *Dispute) AssignArbitrator(arbitratorID kernel.UUID) error {
	if err := arbitratorID.Validate(); err != nil {
		return err
	}
	if d.resolved {
		return fmt.Errorf("%w: dispute is already resolved", order.ErrInvalidTransition)
	}
	if d.arbitratorID != nil {
		if d.arbitratorID.IsEqual(arbitratorID) {
			return nil
		}
		return fmt.Errorf("%w: dispute already has an arbitrator", order.ErrInvalidTransition)
	}

	d.arbitratorID = &arbitratorID
	return nil
}

// Resolve closes the episode with an outcome and a free-form result text.
// A dispute resolves at most once.
func (d *Dispute) Resolve(outcome Outcome, result string, now time.Time) error {
	if err := outcome.Validate(); err != nil {
		return err
	}
	if d.resolved {
		return fmt.Errorf("%w: dispute is already resolved", order.ErrInvalidTransition)
	}
	if d.arbitratorID == nil {
		return fmt.Errorf("%w: dispute has no arbitrator", order.ErrInvalidTransition)
	}

	d.resolved = true
	d.outcome = &outcome
	d.result = result
	d.resolvedAt = &now
	return nil
}

// Validate ensures the Dispute was properly constructed.
func (d *Dispute) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDisputeIsNotConstructed
	}
	return nil
}

// ID returns the dispute's unique identifier.
func (d *Dispute) ID() kernel.UUID {
	return d.id
}

// OrderID returns the disputed order.
func (d *Dispute) OrderID() kernel.UUID {
	return d.orderID
}

// RaisedBy returns the party who opened the dispute.
func (d *Dispute) RaisedBy() kernel.UUID {
	return d.raisedBy
}

// Reason returns the complaint text given at opening.
func (d *Dispute) Reason() string {
	return d.reason
}

// ArbitratorID returns the assigned arbitrator, or nil while unassigned.
func (d *Dispute) ArbitratorID() *kernel.UUID {
	return d.arbitratorID
}

// IsResolved reports whether the episode is closed.
func (d *Dispute) IsResolved() bool {
	return d.resolved
}

// Outcome returns the resolution outcome, or nil while unresolved.
func (d *Dispute) Outcome() *Outcome {
	return d.outcome
}

// Result returns the arbitrator's resolution text.
func (d *Dispute) Result() string {
	return d.result
}

// CreatedAt returns the opening timestamp.
func (d *Dispute) CreatedAt() time.Time {
	return d.createdAt
}

// ResolvedAt returns the resolution timestamp, or nil while unresolved.
func (d *Dispute) ResolvedAt() *time.Time {
	return d.resolvedAt
}
