package commands

import (
	"context"
	"time"

	"studyhub/internal/core/domain/model/order"
	"studyhub/internal/core/ports"
)

// TransitionOrderCommandHandler applies lifecycle events to orders. The
// write is an optimistic conditional update keyed on the status the order
// was loaded with, so a concurrent transition on the same order surfaces as
// errs.ErrConflict instead of silently overwriting.
type TransitionOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.NotificationGateway
}

// NewTransitionOrderCommandHandler creates a handler for lifecycle
// transitions. Requires a UoWFactory for transactional persistence and a
// NotificationGateway for the post-commit OrderCompleted event.
func NewTransitionOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.NotificationGateway,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle applies the event and returns the updated order. A transition into
// completed rebuilds the expert's statistics inside the same transaction.
func (h *TransitionOrderCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor, err := order.NewActor(cmd.ActorID(), cmd.ActorRoles()...)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previous := aggregate.Status()
	if err = aggregate.Apply(cmd.Event(), actor, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateStatusFrom(ctx, aggregate, previous); err != nil {
		return nil, err
	}

	completed := aggregate.Status() == order.StatusCompleted
	if completed && aggregate.ExpertID() != nil {
		if _, err = recomputeStatistics(
			ctx, orderRepo, uow.ExpertRepository(), *aggregate.ExpertID(), time.Now().UTC(),
		); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if completed {
		h.notifier.Emit(ctx, ports.OrderCompleted{OrderID: aggregate.ID()})
	}

	return aggregate, nil
}
