package commands

import (
	"errors"
	"time"

	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/pkg/errs"
	"studyhub/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a client's request to publish a new order.
// Encapsulates the work description, the price offered and the deadline.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, clientID, "mathematics", "essay", 3, 120, deadline)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	clientID   kernel.UUID
	subject    string
	workType   string
	complexity int
	budget     float64
	deadline   time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to publish a new order. Subject
// may be empty (no subject requirement); everything else is validated here
// and again by the aggregate.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	subject string,
	workType string,
	complexity int,
	budget float64,
	deadline time.Time,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		subject:    subject,
		complexity: complexity,
		budget:     budget,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setClientID(clientID),
		orderCommand.setWorkType(workType),
		orderCommand.setDeadline(deadline),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the identity of the requesting client.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Subject returns the academic subject, or empty for no requirement.
func (c CreateOrderCommand) Subject() string {
	return c.subject
}

// WorkType returns the kind of work requested.
func (c CreateOrderCommand) WorkType() string {
	return c.workType
}

// Complexity returns the difficulty grade.
func (c CreateOrderCommand) Complexity() int {
	return c.complexity
}

// Budget returns the price offered by the client.
func (c CreateOrderCommand) Budget() float64 {
	return c.budget
}

// Deadline returns the time the work is due.
func (c CreateOrderCommand) Deadline() time.Time {
	return c.deadline
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setWorkType(workType string) error {
	if workType == "" {
		return errs.NewValueIsRequiredError("workType")
	}

	c.workType = workType
	return nil
}

func (c *CreateOrderCommand) setDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return errs.NewValueIsRequiredError("deadline")
	}

	c.deadline = deadline
	return nil
}
