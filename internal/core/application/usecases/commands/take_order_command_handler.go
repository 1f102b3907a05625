package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studyhub/internal/core/domain/model/expert"
	"studyhub/internal/core/domain/model/order"
	"studyhub/internal/core/ports"
	"studyhub/internal/pkg/errs"
)

// TakeOrderCommandHandler handles expert claims on published orders.
//
// The claim itself is a single conditional update at the storage level, so
// two experts racing for the same order resolve to exactly one winner; the
// loser gets order.ErrOrderNotAvailable. Qualification and workload checks
// run in the same transaction as the claim.
type TakeOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.NotificationGateway
}

// NewTakeOrderCommandHandler creates a handler for order claims. Requires a
// UoWFactory for transactional persistence and a NotificationGateway for the
// post-commit OrderAssigned event.
func NewTakeOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.NotificationGateway,
) TakeOrderCommandHandler {
	return TakeOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the claim and returns the assigned order. A lost
// serialization race is retried once transparently; a second loss surfaces
// as order.ErrOrderNotAvailable.
func (h *TakeOrderCommandHandler) Handle(ctx context.Context, cmd TakeOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	claimed, err := h.claim(ctx, cmd)
	if errors.Is(err, errs.ErrConflict) {
		claimed, err = h.claim(ctx, cmd)
		if errors.Is(err, errs.ErrConflict) {
			return nil, fmt.Errorf("%w: storage conflict persisted after retry", order.ErrOrderNotAvailable)
		}
	}
	if err != nil {
		return nil, err
	}

	h.notifier.Emit(ctx, ports.OrderAssigned{
		OrderID:  claimed.ID(),
		ExpertID: cmd.ExpertID(),
	})

	return claimed, nil
}

func (h *TakeOrderCommandHandler) claim(ctx context.Context, cmd TakeOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	expertRepo := uow.ExpertRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if subject := aggregate.Subject(); subject != "" {
		qualified, err := expertRepo.HasVerifiedSpecialization(ctx, cmd.ExpertID(), subject)
		if err != nil {
			return nil, err
		}
		if !qualified {
			return nil, fmt.Errorf("%w: no verified specialization for %s", expert.ErrExpertNotQualified, subject)
		}
	}

	workload, err := orderRepo.CountActiveByExpert(ctx, cmd.ExpertID())
	if err != nil {
		return nil, err
	}
	if workload >= expert.MaxWorkload {
		return nil, fmt.Errorf("%w: %d active orders", expert.ErrExpertOverloaded, workload)
	}

	if err = orderRepo.ClaimForExpert(ctx, cmd.OrderID(), cmd.ExpertID()); err != nil {
		return nil, err
	}

	actor, err := order.NewActor(cmd.ExpertID(), order.RoleExpert)
	if err != nil {
		return nil, err
	}

	// The conditional update already moved the row; mirror the transition on
	// the loaded aggregate so the caller sees the assigned state.
	if err = aggregate.Apply(order.EventTake, actor, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
