package ports

import (
	"context"

	"studyhub/internal/core/domain/model/dispute"
	"studyhub/internal/core/domain/model/kernel"
)

// NotificationEvent is a fire-and-forget integration event emitted after a
// successful lifecycle transition. The core never awaits delivery.
type NotificationEvent interface {
	// Name returns the event's wire name.
	Name() string
}

// OrderAssigned is emitted after an expert successfully claims an order.
type OrderAssigned struct {
	OrderID  kernel.UUID
	ExpertID kernel.UUID
}

func (OrderAssigned) Name() string { return "order.assigned" }

// OrderCompleted is emitted when an order reaches the completed status.
type OrderCompleted struct {
	OrderID kernel.UUID
}

func (OrderCompleted) Name() string { return "order.completed" }

// DisputeOpened is emitted after a dispute episode is opened.
type DisputeOpened struct {
	DisputeID kernel.UUID
	OrderID   kernel.UUID
}

func (DisputeOpened) Name() string { return "dispute.opened" }

// DisputeResolved is emitted after an arbitrator closes a dispute.
type DisputeResolved struct {
	DisputeID kernel.UUID
	Outcome   dispute.Outcome
}

func (DisputeResolved) Name() string { return "dispute.resolved" }

// NotificationGateway delivers integration events to interested parties.
// Emit never returns an error: delivery is best-effort and failures are the
// gateway's problem to log and retry.
type NotificationGateway interface {
	Emit(ctx context.Context, event NotificationEvent)
}

// PaymentGateway instructs the payment system to act on behalf of the core.
// It is invoked only from dispute resolution; a failed instruction is logged
// and retried out-of-band, never rolled back.
type PaymentGateway interface {
	// InstructCompensation asks the payment system to refund percentage
	// percent of the order's price to the client.
	InstructCompensation(ctx context.Context, orderID kernel.UUID, percentage int) error
}
