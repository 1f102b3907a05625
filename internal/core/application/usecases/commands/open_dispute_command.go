package commands

import (
	"errors"

	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/core/domain/model/order"
	"studyhub/internal/pkg/errs"
	"studyhub/internal/pkg/guard"
)

var ErrOpenDisputeCommandIsNotConstructed = errors.New(
	"OpenDisputeCommand must be created via NewOpenDisputeCommand constructor",
)

// OpenDisputeCommand represents a request to open a conflict episode on an
// order. Only the order's client or expert may raise one.
type OpenDisputeCommand struct { //nolint:recvcheck //using for validation
	disputeID  kernel.UUID
	orderID    kernel.UUID
	raisedBy   kernel.UUID
	raisedRole order.Role
	reason     string

	guard guard.ConstructorGuard
}

// NewOpenDisputeCommand creates a command to open a dispute raised by the
// party identified by raisedBy acting in raisedRole.
func NewOpenDisputeCommand(
	disputeID kernel.UUID,
	orderID kernel.UUID,
	raisedBy kernel.UUID,
	raisedRole order.Role,
	reason string,
) (OpenDisputeCommand, error) {
	cmd := OpenDisputeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDisputeID(disputeID),
		cmd.setOrderID(orderID),
		cmd.setRaisedBy(raisedBy, raisedRole),
		cmd.setReason(reason),
	); err != nil {
		return OpenDisputeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenDisputeCommand) Validate() error {
	return c.guard.Validate(ErrOpenDisputeCommandIsNotConstructed)
}

// DisputeID returns the identifier assigned to the new dispute.
func (c OpenDisputeCommand) DisputeID() kernel.UUID {
	return c.disputeID
}

// OrderID returns the disputed order.
func (c OpenDisputeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RaisedBy returns the raising party's identifier.
func (c OpenDisputeCommand) RaisedBy() kernel.UUID {
	return c.raisedBy
}

// RaisedRole returns the role the raising party acts in.
func (c OpenDisputeCommand) RaisedRole() order.Role {
	return c.raisedRole
}

// Reason returns the complaint text.
func (c OpenDisputeCommand) Reason() string {
	return c.reason
}

func (c *OpenDisputeCommand) setDisputeID(disputeID kernel.UUID) error {
	if err := disputeID.Validate(); err != nil {
		return err
	}

	c.disputeID = disputeID
	return nil
}

func (c *OpenDisputeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *OpenDisputeCommand) setRaisedBy(raisedBy kernel.UUID, role order.Role) error {
	if err := raisedBy.Validate(); err != nil {
		return err
	}
	if err := role.Validate(); err != nil {
		return err
	}

	c.raisedBy = raisedBy
	c.raisedRole = role
	return nil
}

func (c *OpenDisputeCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
