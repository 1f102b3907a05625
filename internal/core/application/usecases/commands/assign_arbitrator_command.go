package commands

import (
	"errors"

	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/pkg/guard"
)

var ErrAssignArbitratorCommandIsNotConstructed = errors.New(
	"AssignArbitratorCommand must be created via NewAssignArbitratorCommand constructor",
)

// AssignArbitratorCommand represents a request to put an arbitrator in
// charge of an open dispute.
type AssignArbitratorCommand struct { //nolint:recvcheck //using for validation
	disputeID    kernel.UUID
	arbitratorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignArbitratorCommand creates a command to assign an arbitrator.
func NewAssignArbitratorCommand(disputeID kernel.UUID, arbitratorID kernel.UUID) (AssignArbitratorCommand, error) {
	cmd := AssignArbitratorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDisputeID(disputeID),
		cmd.setArbitratorID(arbitratorID),
	); err != nil {
		return AssignArbitratorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignArbitratorCommand) Validate() error {
	return c.guard.Validate(ErrAssignArbitratorCommandIsNotConstructed)
}

// DisputeID returns the dispute being assigned.
func (c AssignArbitratorCommand) DisputeID() kernel.UUID {
	return c.disputeID
}

// ArbitratorID returns the arbitrator taking charge.
func (c AssignArbitratorCommand) ArbitratorID() kernel.UUID {
	return c.arbitratorID
}

func (c *AssignArbitratorCommand) setDisputeID(disputeID kernel.UUID) error {
	if err := disputeID.Validate(); err != nil {
		return err
	}

	c.disputeID = disputeID
	return nil
}

func (c *AssignArbitratorCommand) setArbitratorID(arbitratorID kernel.UUID) error {
	if err := arbitratorID.Validate(); err != nil {
		return err
	}

	c.arbitratorID = arbitratorID
	return nil
}
