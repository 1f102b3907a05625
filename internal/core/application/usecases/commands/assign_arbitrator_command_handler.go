package commands

import (
	"context"

	"studyhub/internal/core/domain/model/dispute"
)

// AssignArbitratorCommandHandler puts arbitrators in charge of open
// disputes. Re-assigning the same arbitrator is a no-op; the aggregate
// rejects switching arbitrators or assigning on a resolved dispute.
type AssignArbitratorCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignArbitratorCommandHandler creates a handler for arbitrator
// assignment. Requires a UoWFactory for transactional persistence.
func NewAssignArbitratorCommandHandler(uowFactory UoWFactory) AssignArbitratorCommandHandler {
	return AssignArbitratorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle assigns the arbitrator and returns the updated dispute.
func (h *AssignArbitratorCommandHandler) Handle(
	ctx context.Context,
	cmd AssignArbitratorCommand,
) (*dispute.Dispute, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	disputeRepo := uow.DisputeRepository()

	episode, err := disputeRepo.Get(ctx, cmd.DisputeID())
	if err != nil {
		return nil, err
	}

	if err = episode.AssignArbitrator(cmd.ArbitratorID()); err != nil {
		return nil, err
	}

	if err = disputeRepo.Update(ctx, episode); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return episode, nil
}
