package ports

import (
	"context"

	"studyhub/internal/core/domain/model/expert"
	"studyhub/internal/core/domain/model/kernel"
)

// ExpertRepository defines the persistence contract for the expert side of
// the model: specializations, ratings and the derived statistics row.
type ExpertRepository interface {
	// AddSpecialization persists a specialization record. A duplicate
	// (expert, subject) pair surfaces as errs.ErrConflict.
	AddSpecialization(ctx context.Context, spec *expert.Specialization) error

	// HasVerifiedSpecialization reports whether the expert carries a
	// verified specialization for the subject.
	HasVerifiedSpecialization(ctx context.Context, expertID kernel.UUID, subject string) (bool, error)

	// AddRating persists a rating. A second rating on the same order
	// surfaces as expert.ErrRatingAlreadyExists.
	AddRating(ctx context.Context, rating *expert.Rating) error

	// GetRatingsByExpert retrieves all of the expert's ratings. Feeds the
	// statistics rebuild.
	GetRatingsByExpert(ctx context.Context, expertID kernel.UUID) ([]*expert.Rating, error)

	// SaveStatistics upserts the expert's derived statistics row.
	// Last writer wins; the rebuild is idempotent so that is safe.
	SaveStatistics(ctx context.Context, stats *expert.Statistics) error

	// GetStatistics retrieves the expert's statistics row. Returns
	// errs.ErrObjectNotFound when no rebuild has run for the expert yet.
	GetStatistics(ctx context.Context, expertID kernel.UUID) (*expert.Statistics, error)
}
