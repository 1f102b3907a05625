package order

import (
	"errors"
	"fmt"

	"studyhub/internal/pkg/errs"
)

// ErrInvalidTransition is returned when an event is not legal from the
// order's current status, or when the acting party is not permitted to
// trigger it. Use errors.Is to classify.
var ErrInvalidTransition = errors.New("invalid order transition")

// Status represents the lifecycle state of an order. It is a value object
// that owns the transition rules: every status change goes through Next,
// which consults the transition table and the acting party's roles.
//
// Lifecycle:
//
//	new ──┬─> waiting_payment ──> in_progress
//	      ├─> in_progress (expert claim)
//	      └─> cancelled (client cancel / deadline expiry)
//
//	in_progress ──> review ──┬─> completed
//	                         └─> revision ──> review
//
//	{in_progress, review, revision} ──> disputed ──┬─> completed
//	                                               └─> cancelled
//
// completed and cancelled are terminal.
type Status string

const (
	// StatusNew is the initial status: the order is published and waiting
	// to be claimed by an expert or paid for by the client.
	StatusNew Status = "new"

	// StatusWaitingPayment indicates the client initiated payment and the
	// order waits for external confirmation.
	StatusWaitingPayment Status = "waiting_payment"

	// StatusInProgress indicates an expert is working on the order.
	StatusInProgress Status = "in_progress"

	// StatusReview indicates a deliverable was submitted and waits for the
	// client's verdict.
	StatusReview Status = "review"

	// StatusRevision indicates the client requested changes and the expert
	// is reworking the deliverable.
	StatusRevision Status = "revision"

	// StatusCompleted is a terminal status: the client accepted the work or
	// an arbitrator resolved a dispute in the expert's favor.
	StatusCompleted Status = "completed"

	// StatusDisputed indicates an open conflict episode awaiting arbitration.
	StatusDisputed Status = "disputed"

	// StatusCancelled is a terminal status: the order was cancelled before
	// assignment, expired, or a dispute was resolved against completion.
	StatusCancelled Status = "cancelled"
)

// Event identifies a lifecycle action requested on an order.
type Event string

const (
	EventInitiatePayment Event = "initiate_payment"
	EventConfirmPayment  Event = "confirm_payment"
	EventTake            Event = "take"
	EventSubmit          Event = "submit"
	EventRequestRevision Event = "request_revision"
	EventAccept          Event = "accept"
	EventResubmit        Event = "resubmit"
	EventOpenDispute     Event = "open_dispute"
	EventResolveComplete Event = "resolve_complete"
	EventResolveCancel   Event = "resolve_cancel"
	EventCancel          Event = "cancel"
)

// transition is the lookup key of the transition table.
type transition struct {
	from  Status
	event Event
}

// transitionRule captures the target status and the roles permitted to
// trigger the transition.
type transitionRule struct {
	to    Status
	roles []Role
}

// transitionTable enumerates every legal (status, event) pair. Anything
// absent from this table fails with ErrInvalidTransition.
func transitionTable() map[transition]transitionRule {
	return map[transition]transitionRule{
		{StatusNew, EventInitiatePayment}:           {StatusWaitingPayment, []Role{RoleClient}},
		{StatusWaitingPayment, EventConfirmPayment}: {StatusInProgress, []Role{RoleSystem}},
		{StatusNew, EventTake}:                      {StatusInProgress, []Role{RoleExpert}},
		{StatusInProgress, EventSubmit}:             {StatusReview, []Role{RoleExpert}},
		{StatusReview, EventRequestRevision}:        {StatusRevision, []Role{RoleClient}},
		{StatusReview, EventAccept}:                 {StatusCompleted, []Role{RoleClient}},
		{StatusRevision, EventResubmit}:             {StatusReview, []Role{RoleExpert}},
		{StatusInProgress, EventOpenDispute}:        {StatusDisputed, []Role{RoleClient, RoleExpert}},
		{StatusReview, EventOpenDispute}:            {StatusDisputed, []Role{RoleClient, RoleExpert}},
		{StatusRevision, EventOpenDispute}:          {StatusDisputed, []Role{RoleClient, RoleExpert}},
		{StatusDisputed, EventResolveComplete}:      {StatusCompleted, []Role{RoleArbitrator}},
		{StatusDisputed, EventResolveCancel}:        {StatusCancelled, []Role{RoleArbitrator}},
		{StatusNew, EventCancel}:                    {StatusCancelled, []Role{RoleClient, RoleSystem}},
	}
}

// getValidStatusStrings returns the set of valid statuses to support
// validation of values arriving from persistence or transport.
func getValidStatusStrings() map[Status]struct{} {
	return map[Status]struct{}{
		StatusNew:            {},
		StatusWaitingPayment: {},
		StatusInProgress:     {},
		StatusReview:         {},
		StatusRevision:       {},
		StatusCompleted:      {},
		StatusDisputed:       {},
		StatusCancelled:      {},
	}
}

// Validate checks that the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the persisted snake_case name of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are permitted.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// IsActive reports whether the order counts toward an expert's workload.
// Only in_progress and revision orders do: review and disputed orders sit
// with the client or an arbitrator, not the expert.
func (s Status) IsActive() bool {
	return s == StatusInProgress || s == StatusRevision
}

// CanOpenDispute reports whether a dispute may be raised from this status.
func (s Status) CanOpenDispute() bool {
	_, ok := transitionTable()[transition{s, EventOpenDispute}]
	return ok
}

// Next computes the status reached by applying event as actor. It is a
// total function over (status, event): every pair outside the transition
// table fails with ErrInvalidTransition, as does a permitted pair triggered
// by an actor lacking the required role.
func (s Status) Next(event Event, actor Actor) (Status, error) {
	if err := actor.Validate(); err != nil {
		return "", err
	}

	rule, ok := transitionTable()[transition{s, event}]
	if !ok {
		return "", fmt.Errorf("%w: %s is not legal from %s", ErrInvalidTransition, event, s)
	}

	if !actor.HasAnyRole(rule.roles...) {
		return "", fmt.Errorf("%w: actor may not apply %s from %s", ErrInvalidTransition, event, s)
	}

	return rule.to, nil
}

// Validate checks that the Event value is one of the defined events.
func (e Event) Validate() error {
	switch e {
	case EventInitiatePayment, EventConfirmPayment, EventTake, EventSubmit,
		EventRequestRevision, EventAccept, EventResubmit, EventOpenDispute,
		EventResolveComplete, EventResolveCancel, EventCancel:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("event", fmt.Errorf("%q is not a valid event", string(e)))
}

// String returns the wire name of the event.
func (e Event) String() string {
	return string(e)
}
