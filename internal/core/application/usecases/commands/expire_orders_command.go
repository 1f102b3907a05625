package commands

import (
	"errors"

	"studyhub/internal/pkg/guard"
)

var ErrExpireOrdersCommandIsNotConstructed = errors.New(
	"ExpireOrdersCommand must be created via NewExpireOrdersCommand constructor",
)

// ExpireOrdersCommand triggers scheduled cancellation of every new order
// whose deadline has passed. This is a parameterless command run by the
// expiry job; re-running it when nothing is overdue is a no-op.
type ExpireOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireOrdersCommand creates a new command to expire overdue orders.
func NewExpireOrdersCommand() ExpireOrdersCommand {
	return ExpireOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrExpireOrdersCommandIsNotConstructed if validation fails.
func (c *ExpireOrdersCommand) Validate() error {
	return c.guard.Validate(
		ErrExpireOrdersCommandIsNotConstructed,
	)
}
