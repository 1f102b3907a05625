package commands

import (
	"context"

	"studyhub/internal/core/domain/model/expert"
)

// AddSpecializationCommandHandler handles registration of expert
// specialization claims.
type AddSpecializationCommandHandler struct {
	uowFactory ExpertUoWFactory
}

// NewAddSpecializationCommandHandler creates a handler for specialization
// registration. Requires an ExpertUoWFactory for transactional persistence.
func NewAddSpecializationCommandHandler(uowFactory ExpertUoWFactory) AddSpecializationCommandHandler {
	return AddSpecializationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the stored specialization.
// A duplicate (expert, subject) pair surfaces as errs.ErrConflict from the
// repository.
func (h *AddSpecializationCommandHandler) Handle(
	ctx context.Context,
	cmd AddSpecializationCommand,
) (*expert.Specialization, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	spec, err := expert.NewSpecialization(
		cmd.ExpertID(),
		cmd.Subject(),
		cmd.ExperienceYears(),
		cmd.HourlyRate(),
		cmd.Verified(),
	)
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

	if err = uow.ExpertRepository().AddSpecialization(ctx, spec); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return spec, nil
}
