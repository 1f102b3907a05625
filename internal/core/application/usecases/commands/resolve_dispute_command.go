package commands

import (
	"errors"

	"studyhub/internal/core/domain/model/dispute"
	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/pkg/guard"
)

var ErrResolveDisputeCommandIsNotConstructed = errors.New(
	"ResolveDisputeCommand must be created via NewResolveDisputeCommand constructor",
)

// ResolveDisputeCommand represents an arbitrator's verdict on an open
// dispute.
type ResolveDisputeCommand struct { //nolint:recvcheck //using for validation
	disputeID kernel.UUID
	outcome   dispute.Outcome
	result    string

	guard guard.ConstructorGuard
}

// NewResolveDisputeCommand creates a command to close a dispute with an
// outcome and a free-form result text. The text may be empty.
func NewResolveDisputeCommand(
	disputeID kernel.UUID,
	outcome dispute.Outcome,
	result string,
) (ResolveDisputeCommand, error) {
	cmd := ResolveDisputeCommand{
		result: result,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDisputeID(disputeID),
		cmd.setOutcome(outcome),
	); err != nil {
		return ResolveDisputeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveDisputeCommand) Validate() error {
	return c.guard.Validate(ErrResolveDisputeCommandIsNotConstructed)
}

// DisputeID returns the dispute being resolved.
func (c ResolveDisputeCommand) DisputeID() kernel.UUID {
	return c.disputeID
}

// Outcome returns the arbitrator's verdict.
func (c ResolveDisputeCommand) Outcome() dispute.Outcome {
	return c.outcome
}

// Result returns the resolution text.
func (c ResolveDisputeCommand) Result() string {
	return c.result
}

func (c *ResolveDisputeCommand) setDisputeID(disputeID kernel.UUID) error {
	if err := disputeID.Validate(); err != nil {
		return err
	}

	c.disputeID = disputeID
	return nil
}

func (c *ResolveDisputeCommand) setOutcome(outcome dispute.Outcome) error {
	if err := outcome.Validate(); err != nil {
		return err
	}

	c.outcome = outcome
	return nil
}
