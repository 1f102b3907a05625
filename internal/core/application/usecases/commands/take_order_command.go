package commands

import (
	"errors"

	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/pkg/guard"
)

var ErrTakeOrderCommandIsNotConstructed = errors.New(
	"TakeOrderCommand must be created via NewTakeOrderCommand constructor",
)

// TakeOrderCommand represents an expert's claim on a published order.
type TakeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	expertID kernel.UUID

	guard guard.ConstructorGuard
}

// NewTakeOrderCommand creates a command for an expert to claim an order.
func NewTakeOrderCommand(orderID kernel.UUID, expertID kernel.UUID) (TakeOrderCommand, error) {
	cmd := TakeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setExpertID(expertID),
	); err != nil {
		return TakeOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TakeOrderCommand) Validate() error {
	return c.guard.Validate(ErrTakeOrderCommandIsNotConstructed)
}

// OrderID returns the order being claimed.
func (c TakeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ExpertID returns the claiming expert.
func (c TakeOrderCommand) ExpertID() kernel.UUID {
	return c.expertID
}

func (c *TakeOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TakeOrderCommand) setExpertID(expertID kernel.UUID) error {
	if err := expertID.Validate(); err != nil {
		return err
	}

	c.expertID = expertID
	return nil
}
