package commands

import (
	"context"
	"time"
)

// ExpireOrdersCommandHandler cancels overdue unclaimed orders. The whole
// sweep is one conditional update, so concurrent runs and re-runs are
// harmless: an already-cancelled order matches zero rows.
type ExpireOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewExpireOrdersCommandHandler creates a handler for the expiry sweep.
// Requires an OrderUoWFactory for transactional persistence.
func NewExpireOrdersCommandHandler(uowFactory OrderUoWFactory) ExpireOrdersCommandHandler {
	return ExpireOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels every new order past its deadline and returns the number
// of orders cancelled.
func (h *ExpireOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireOrdersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	expired, err := uow.OrderRepository().ExpireOverdue(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return expired, nil
}
