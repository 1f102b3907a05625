package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studyhub/internal/core/domain/model/dispute"
	"studyhub/internal/core/domain/model/order"
	"studyhub/internal/core/ports"
	"studyhub/internal/pkg/errs"
)

// OpenDisputeCommandHandler opens conflict episodes. The order's move to
// disputed and the dispute insert share one transaction; an already-open
// dispute is refused up front, and the insert itself is guarded against a
// concurrent second episode at the storage level, the same way claims are
// guarded against double assignment.
type OpenDisputeCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.NotificationGateway
}

// NewOpenDisputeCommandHandler creates a handler for opening disputes.
// Requires a UoWFactory for transactional persistence and a
// NotificationGateway for the post-commit DisputeOpened event.
func NewOpenDisputeCommandHandler(
	uowFactory UoWFactory,
	notifier ports.NotificationGateway,
) OpenDisputeCommandHandler {
	return OpenDisputeCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle opens the dispute and returns it. A lost serialization race is
// retried once transparently.
func (h *OpenDisputeCommandHandler) Handle(ctx context.Context, cmd OpenDisputeCommand) (*dispute.Dispute, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	opened, err := h.open(ctx, cmd)
	if errors.Is(err, errs.ErrConflict) {
		opened, err = h.open(ctx, cmd)
		if errors.Is(err, errs.ErrConflict) {
			return nil, fmt.Errorf("%w: dispute not opened, storage conflict persisted after retry",
				order.ErrOrderNotAvailable)
		}
	}
	if err != nil {
		return nil, err
	}

	h.notifier.Emit(ctx, ports.DisputeOpened{
		DisputeID: opened.ID(),
		OrderID:   opened.OrderID(),
	})

	return opened, nil
}

func (h *OpenDisputeCommandHandler) open(ctx context.Context, cmd OpenDisputeCommand) (*dispute.Dispute, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	disputeRepo := uow.DisputeRepository()

	// The conditional insert below still guards the race window; this read
	// turns the common duplicate into a clean refusal before the order's
	// transition is touched.
	if _, err := disputeRepo.GetUnresolvedByOrder(ctx, cmd.OrderID()); err == nil {
		return nil, fmt.Errorf("%w: order %s has an open dispute",
			dispute.ErrDisputeAlreadyExists, cmd.OrderID().String())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	actor, err := order.NewActor(cmd.RaisedBy(), cmd.RaisedRole())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	previous := aggregate.Status()
	if err = aggregate.Apply(order.EventOpenDispute, actor, now); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateStatusFrom(ctx, aggregate, previous); err != nil {
		return nil, err
	}

	episode, err := dispute.NewDispute(cmd.DisputeID(), cmd.OrderID(), cmd.RaisedBy(), cmd.Reason(), now)
	if err != nil {
		return nil, err
	}

	if err = disputeRepo.AddExclusive(ctx, episode); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return episode, nil
}
