package commands

import (
	"errors"

	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/core/domain/model/order"
	"studyhub/internal/pkg/errs"
	"studyhub/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand represents a request to apply one lifecycle event
// to an order on behalf of an acting party.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	event      order.Event
	actorID    kernel.UUID
	actorRoles []order.Role

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to apply event to the order as
// the actor identified by actorID holding actorRoles.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	event order.Event,
	actorID kernel.UUID,
	actorRoles ...order.Role,
) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setEvent(event),
		cmd.setActor(actorID, actorRoles),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the order being transitioned.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Event returns the lifecycle event to apply.
func (c TransitionOrderCommand) Event() order.Event {
	return c.event
}

// ActorID returns the acting party's identifier.
func (c TransitionOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRoles returns the acting party's roles.
func (c TransitionOrderCommand) ActorRoles() []order.Role {
	return c.actorRoles
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setEvent(event order.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	c.event = event
	return nil
}

func (c *TransitionOrderCommand) setActor(actorID kernel.UUID, roles []order.Role) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if len(roles) == 0 {
		return errs.NewValueIsRequiredError("actorRoles")
	}
	for _, role := range roles {
		if err := role.Validate(); err != nil {
			return err
		}
	}

	c.actorID = actorID
	c.actorRoles = roles
	return nil
}
