package commands

import (
	"errors"

	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/pkg/errs"
	"studyhub/internal/pkg/guard"
)

var ErrCreateRatingCommandIsNotConstructed = errors.New(
	"CreateRatingCommand must be created via NewCreateRatingCommand constructor",
)

// CreateRatingCommand represents a client's rating of a completed order.
type CreateRatingCommand struct { //nolint:recvcheck //using for validation
	ratingID kernel.UUID
	orderID  kernel.UUID
	value    int

	guard guard.ConstructorGuard
}

// NewCreateRatingCommand creates a command to rate a completed order with a
// value within [1, 5].
func NewCreateRatingCommand(ratingID kernel.UUID, orderID kernel.UUID, value int) (CreateRatingCommand, error) {
	cmd := CreateRatingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRatingID(ratingID),
		cmd.setOrderID(orderID),
		cmd.setValue(value),
	); err != nil {
		return CreateRatingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRatingCommand) Validate() error {
	return c.guard.Validate(ErrCreateRatingCommandIsNotConstructed)
}

// RatingID returns the identifier assigned to the new rating.
func (c CreateRatingCommand) RatingID() kernel.UUID {
	return c.ratingID
}

// OrderID returns the rated order.
func (c CreateRatingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Value returns the rating value.
func (c CreateRatingCommand) Value() int {
	return c.value
}

func (c *CreateRatingCommand) setRatingID(ratingID kernel.UUID) error {
	if err := ratingID.Validate(); err != nil {
		return err
	}

	c.ratingID = ratingID
	return nil
}

func (c *CreateRatingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateRatingCommand) setValue(value int) error {
	if value < 1 || value > 5 {
		return errs.NewValueIsOutOfRangeError("rating", value, 1, 5)
	}

	c.value = value
	return nil
}
