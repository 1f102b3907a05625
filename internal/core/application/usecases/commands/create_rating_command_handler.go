package commands

import (
	"context"
	"fmt"
	"time"

	"studyhub/internal/core/domain/model/expert"
	"studyhub/internal/core/domain/model/order"
)

// CreateRatingCommandHandler records a client's rating of a completed
// order. The rated expert and client come from the order itself; a second
// rating on the same order is rejected by the storage uniqueness constraint.
// The rating write and the statistics rebuild share one transaction.
type CreateRatingCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateRatingCommandHandler creates a handler for rating creation.
// Requires a UoWFactory for transactional persistence.
func NewCreateRatingCommandHandler(uowFactory UoWFactory) CreateRatingCommandHandler {
	return CreateRatingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle records the rating and returns it. Only completed orders can be
// rated.
func (h *CreateRatingCommandHandler) Handle(ctx context.Context, cmd CreateRatingCommand) (*expert.Rating, error) {
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

	orderRepo := uow.OrderRepository()
	expertRepo := uow.ExpertRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if aggregate.Status() != order.StatusCompleted || aggregate.ExpertID() == nil {
		return nil, fmt.Errorf("%w: only completed orders can be rated", order.ErrInvalidTransition)
	}

	now := time.Now().UTC()
	rating, err := expert.NewRating(
		cmd.RatingID(),
		*aggregate.ExpertID(),
		aggregate.ClientID(),
		aggregate.ID(),
		cmd.Value(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = expertRepo.AddRating(ctx, rating); err != nil {
		return nil, err
	}

	if _, err = recomputeStatistics(ctx, orderRepo, expertRepo, rating.ExpertID(), now); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return rating, nil
}
