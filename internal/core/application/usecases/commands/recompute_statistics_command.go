package commands

import (
	"errors"

	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/pkg/guard"
)

var ErrRecomputeStatisticsCommandIsNotConstructed = errors.New(
	"RecomputeStatisticsCommand must be created via NewRecomputeStatisticsCommand constructor",
)

// RecomputeStatisticsCommand represents a request to rebuild one expert's
// statistics row from scratch.
type RecomputeStatisticsCommand struct { //nolint:recvcheck //using for validation
	expertID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecomputeStatisticsCommand creates a command to rebuild the expert's
// statistics.
func NewRecomputeStatisticsCommand(expertID kernel.UUID) (RecomputeStatisticsCommand, error) {
	cmd := RecomputeStatisticsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setExpertID(expertID); err != nil {
		return RecomputeStatisticsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecomputeStatisticsCommand) Validate() error {
	return c.guard.Validate(ErrRecomputeStatisticsCommandIsNotConstructed)
}

// ExpertID returns the expert whose statistics are rebuilt.
func (c RecomputeStatisticsCommand) ExpertID() kernel.UUID {
	return c.expertID
}

func (c *RecomputeStatisticsCommand) setExpertID(expertID kernel.UUID) error {
	if err := expertID.Validate(); err != nil {
		return err
	}

	c.expertID = expertID
	return nil
}
