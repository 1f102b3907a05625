package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"studyhub/internal/core/domain/model/dispute"
	"studyhub/internal/core/domain/model/order"
	"studyhub/internal/core/domain/services"
	"studyhub/internal/core/ports"
)

// ResolveDisputeCommandHandler applies arbitrator verdicts. The dispute
// close, the order's terminal transition and (on completion) the statistics
// rebuild share one transaction. The compensation instruction runs after
// commit: a payment failure is logged and retried out-of-band, never rolled
// back.
type ResolveDisputeCommandHandler struct {
	uowFactory UoWFactory
	policy     services.CompensationPolicy
	payments   ports.PaymentGateway
	notifier   ports.NotificationGateway
	logger     *slog.Logger
}

// NewResolveDisputeCommandHandler creates a handler for dispute resolution.
func NewResolveDisputeCommandHandler(
	uowFactory UoWFactory,
	policy services.CompensationPolicy,
	payments ports.PaymentGateway,
	notifier ports.NotificationGateway,
	logger *slog.Logger,
) ResolveDisputeCommandHandler {
	return ResolveDisputeCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		payments:   payments,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle resolves the dispute and returns it. The outcome decides the
// order's terminal status: favor_expert completes it, favor_client and
// compromise cancel it with a compensation percentage from the policy.
func (h *ResolveDisputeCommandHandler) Handle(
	ctx context.Context,
	cmd ResolveDisputeCommand,
) (*dispute.Dispute, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	percentage, err := h.policy.CompensationPercentage(cmd.Outcome())
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

	disputeRepo := uow.DisputeRepository()
	orderRepo := uow.OrderRepository()

	episode, err := disputeRepo.Get(ctx, cmd.DisputeID())
	if err != nil {
		return nil, err
	}
	if episode.IsResolved() {
		return nil, fmt.Errorf("%w: dispute is already resolved", order.ErrInvalidTransition)
	}
	if episode.ArbitratorID() == nil {
		return nil, fmt.Errorf("%w: dispute has no arbitrator", order.ErrInvalidTransition)
	}

	aggregate, err := orderRepo.Get(ctx, episode.OrderID())
	if err != nil {
		return nil, err
	}

	actor, err := order.NewActor(*episode.ArbitratorID(), order.RoleArbitrator)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	previous := aggregate.Status()
	if err = aggregate.Apply(cmd.Outcome().OrderEvent(), actor, now); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateStatusFrom(ctx, aggregate, previous); err != nil {
		return nil, err
	}

	if err = episode.Resolve(cmd.Outcome(), cmd.Result(), now); err != nil {
		return nil, err
	}

	if err = disputeRepo.Update(ctx, episode); err != nil {
		return nil, err
	}

	completed := aggregate.Status() == order.StatusCompleted
	if completed && aggregate.ExpertID() != nil {
		if _, err = recomputeStatistics(
			ctx, orderRepo, uow.ExpertRepository(), *aggregate.ExpertID(), now,
		); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.payments.InstructCompensation(ctx, aggregate.ID(), percentage); err != nil {
		h.logger.ErrorContext(ctx, "compensation instruction failed, retried out-of-band",
			"order_id", aggregate.ID().String(),
			"dispute_id", episode.ID().String(),
			"percentage", percentage,
			"error", err,
		)
	}

	h.notifier.Emit(ctx, ports.DisputeResolved{
		DisputeID: episode.ID(),
		Outcome:   cmd.Outcome(),
	})
	if completed {
		h.notifier.Emit(ctx, ports.OrderCompleted{OrderID: aggregate.ID()})
	}

	return episode, nil
}
