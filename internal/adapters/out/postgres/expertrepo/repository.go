package expertrepo

import (
	"context"
	"errors"

	"studyhub/internal/core/domain/model/expert"
	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// uniqueViolation is the postgres error code for unique constraint breaches.
const uniqueViolation = "23505"

// GormExpertRepository implements ExpertRepository using GORM.
type GormExpertRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormExpertRepository creates a new GORM expert repository.
func NewGormExpertRepository(db *gorm.DB, tracker aggregateTracker) *GormExpertRepository {
	return &GormExpertRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddSpecialization saves a new capability record. A second record for the
// same (expert, subject) pair breaks the composite unique index and is
// reported as a conflict.
func (r *GormExpertRepository) AddSpecialization(ctx context.Context, spec *expert.Specialization) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	dto := specializationFromDomain(spec)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewConflictError("specialization", spec.Subject())
		}
		return err
	}

	r.tracker.TrackAggregate(spec.ExpertID(), spec)
	return nil
}

// HasVerifiedSpecialization reports whether the expert holds a verified
// capability record for the subject.
func (r *GormExpertRepository) HasVerifiedSpecialization(
	ctx context.Context,
	expertID kernel.UUID,
	subject string,
) (bool, error) {
	if err := expertID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&SpecializationDTO{}).
		Where("expert_id = ? AND subject = ? AND is_verified", expertID.Bytes(), subject).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// AddRating saves a new rating. The unique index on order_id enforces at
// most one rating per order.
func (r *GormExpertRepository) AddRating(ctx context.Context, rating *expert.Rating) error {
	if err := rating.Validate(); err != nil {
		return err
	}

	dto := ratingFromDomain(rating)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return expert.ErrRatingAlreadyExists
		}
		return err
	}

	r.tracker.TrackAggregate(rating.ID(), rating)
	return nil
}

// GetRatingsByExpert retrieves every published rating for the expert.
func (r *GormExpertRepository) GetRatingsByExpert(
	ctx context.Context,
	expertID kernel.UUID,
) ([]*expert.Rating, error) {
	if err := expertID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RatingDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "expert_id = ?", expertID.Bytes()).Error; err != nil {
		return nil, err
	}

	ratings := make([]*expert.Rating, 0, len(dtos))
	for _, dto := range dtos {
		rating, err := ratingToDomain(dto)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}

	return ratings, nil
}

// SaveStatistics upserts the derived aggregate row. Last writer wins: the
// recompute always rewrites every field from source rows, so overwriting a
// concurrent rebuild loses nothing.
func (r *GormExpertRepository) SaveStatistics(ctx context.Context, stats *expert.Statistics) error {
	if err := stats.Validate(); err != nil {
		return err
	}

	dto := statisticsFromDomain(stats)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "expert_id"}},
		UpdateAll: true,
	}).Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(stats.ExpertID(), stats)
	return nil
}

// GetStatistics retrieves the expert's aggregate row.
func (r *GormExpertRepository) GetStatistics(ctx context.Context, expertID kernel.UUID) (*expert.Statistics, error) {
	if err := expertID.Validate(); err != nil {
		return nil, err
	}

	var dto StatisticsDTO
	if err := r.db.WithContext(ctx).First(&dto, "expert_id = ?", expertID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("expert statistics", expertID.String())
		}
		return nil, err
	}

	return statisticsToDomain(dto)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
