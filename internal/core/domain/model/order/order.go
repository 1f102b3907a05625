package order

import (
	"errors"
	"fmt"
	"time"

	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderNotAvailable is returned when an order cannot be claimed:
	// another expert already took it or it left the new status.
	ErrOrderNotAvailable = errors.New("order is not available")
)

// Order is the aggregate root of the brokered-work lifecycle. It carries
// the client's request, the optional expert assignment and the current
// lifecycle status, and enforces that every status change goes through the
// transition table in status.go.
//
// Invariants:
//   - id and clientID are valid UUIDs
//   - workType is non-empty; complexity is within [1, 5]; budget is positive
//   - expertID is nil while the order is in new or waiting_payment, and is
//     set in review, revision, disputed and completed
//   - status transitions follow the transition table; terminal statuses
//     accept no further events
//
// Orders are never deleted, only terminalized.
type Order struct {
	id         kernel.UUID
	clientID   kernel.UUID
	expertID   *kernel.UUID
	subject    string
	workType   string
	complexity int
	budget     float64
	finalPrice *float64
	status     Status
	deadline   time.Time
	createdAt  time.Time
	updatedAt  time.Time

	isConstructed bool
}

const (
	minComplexity = 1
	maxComplexity = 5
)

// NewOrder creates an order in the new status. Subject may be empty, which
// means the order has no subject requirement and any verified expert may
// claim it.
func NewOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	subject string,
	workType string,
	complexity int,
	budget float64,
	deadline time.Time,
	now time.Time,
) (*Order, error) {
	order := &Order{
		subject:       subject,
		status:        StatusNew,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientID(clientID),
		order.setWorkType(workType),
		order.setComplexity(complexity),
		order.setBudget(budget),
		order.setDeadline(deadline, now),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistent storage without
// re-running the creation-time deadline check. The stored status and the
// expert assignment are validated for consistency.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	expertID *kernel.UUID,
	subject string,
	workType string,
	complexity int,
	budget float64,
	finalPrice *float64,
	status Status,
	deadline time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		expertID:      expertID,
		subject:       subject,
		finalPrice:    finalPrice,
		status:        status,
		deadline:      deadline,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientID(clientID),
		order.setWorkType(workType),
		order.setComplexity(complexity),
		order.setBudget(budget),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if expertID != nil {
		if err := expertID.Validate(); err != nil {
			return nil, err
		}
	}

	if err := order.validateExpertConsistency(); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the identity of the client who placed the order.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// ExpertID returns the assigned expert's ID, or nil while unassigned.
func (o *Order) ExpertID() *kernel.UUID {
	return o.expertID
}

// Subject returns the order's subject. Empty means no subject requirement.
func (o *Order) Subject() string {
	return o.subject
}

// WorkType returns the kind of work requested (essay, thesis, …).
func (o *Order) WorkType() string {
	return o.workType
}

// Complexity returns the difficulty grade within [1, 5].
func (o *Order) Complexity() int {
	return o.complexity
}

// Budget returns the price offered by the client.
func (o *Order) Budget() float64 {
	return o.budget
}

// FinalPrice returns the settled price, or nil while the order is not
// completed.
func (o *Order) FinalPrice() *float64 {
	return o.finalPrice
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Deadline returns the time by which the order must be claimed and done.
func (o *Order) Deadline() time.Time {
	return o.deadline
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last status change.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Apply performs a lifecycle transition. The event must be legal from the
// current status and the actor must hold a permitted role, otherwise
// ErrInvalidTransition is returned and the order is left unchanged. Events
// that would move an unassigned order into a status requiring an expert
// (submit and everything past it) are rejected until a take happens: a
// paid order must still be claimed before work can be recorded on it.
//
// Apply has no side effects beyond status, updatedAt, the expert
// assignment on a take event and the final price on a completing event.
func (o *Order) Apply(event Event, actor Actor, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := event.Validate(); err != nil {
		return err
	}

	next, err := o.status.Next(event, actor)
	if err != nil {
		return err
	}

	if o.expertID == nil && event != EventTake && requiresExpert(next) {
		return fmt.Errorf("%w: %s requires an assigned expert", ErrInvalidTransition, event)
	}

	if event == EventTake {
		expertID := actor.ID()
		o.expertID = &expertID
	}

	if next == StatusCompleted && o.finalPrice == nil {
		budget := o.budget
		o.finalPrice = &budget
	}

	o.status = next
	o.updatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setWorkType(workType string) error {
	if workType == "" {
		return errs.NewValueIsRequiredError("workType")
	}
	o.workType = workType
	return nil
}

func (o *Order) setComplexity(complexity int) error {
	if complexity < minComplexity || complexity > maxComplexity {
		return errs.NewValueIsOutOfRangeError("complexity", complexity, minComplexity, maxComplexity)
	}
	o.complexity = complexity
	return nil
}

func (o *Order) setBudget(budget float64) error {
	if budget <= 0 {
		return errs.NewValueIsInvalidError("budget")
	}
	o.budget = budget
	return nil
}

func (o *Order) setDeadline(deadline time.Time, now time.Time) error {
	if deadline.IsZero() {
		return errs.NewValueIsRequiredError("deadline")
	}
	if !deadline.After(now) {
		return errs.NewValueIsInvalidError("deadline")
	}
	o.deadline = deadline
	return nil
}

// validateExpertConsistency enforces the assignment invariant: no expert
// before the order leaves new/waiting_payment, and an expert wherever work
// demonstrably happened. in_progress and cancelled admit both forms
// (payment-confirmed orders await assignment; cancellation happens before
// and after assignment).
func (o *Order) validateExpertConsistency() error {
	hasExpert := o.expertID != nil

	switch {
	case o.status == StatusNew || o.status == StatusWaitingPayment:
		if hasExpert {
			return errs.NewValueIsInvalidError("expertID must be empty for status " + o.status.String())
		}
	case requiresExpert(o.status):
		if !hasExpert {
			return errs.NewValueIsRequiredError("expertID is required for status " + o.status.String())
		}
	}

	return nil
}

// requiresExpert reports whether a status records demonstrable work and an
// expert assignment is therefore mandatory.
func requiresExpert(s Status) bool {
	switch s {
	case StatusReview, StatusRevision, StatusDisputed, StatusCompleted:
		return true
	}
	return false
}
