package disputerepo

import (
	"context"
	"errors"

	"studyhub/internal/core/domain/model/dispute"
	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the postgres error code for unique constraint breaches.
const uniqueViolation = "23505"

// GormDisputeRepository implements DisputeRepository using GORM.
type GormDisputeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDisputeRepository creates a new GORM dispute repository.
func NewGormDisputeRepository(db *gorm.DB, tracker aggregateTracker) *GormDisputeRepository {
	return &GormDisputeRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddExclusive inserts the dispute only while the order has no other
// unresolved episode. The guard runs inside the insert statement itself,
// so two concurrent opens on the same order cannot both pass: the second
// one inserts zero rows and gets dispute.ErrDisputeAlreadyExists.
func (r *GormDisputeRepository) AddExclusive(ctx context.Context, aggregate *dispute.Dispute) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO disputes (id, order_id, raised_by, reason, arbitrator_id, resolved, outcome, result, created_at, resolved_at)
		SELECT ?, ?, ?, ?, NULL, false, NULL, ?, ?, NULL
		WHERE NOT EXISTS (
			SELECT 1 FROM disputes WHERE order_id = ? AND NOT resolved
		)
	`, dto.ID, dto.OrderID, dto.RaisedBy, dto.Reason, dto.Result, dto.CreatedAt, dto.OrderID)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return dispute.ErrDisputeAlreadyExists
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return dispute.ErrDisputeAlreadyExists
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing dispute to the database.
func (r *GormDisputeRepository) Update(ctx context.Context, aggregate *dispute.Dispute) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DisputeDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"arbitrator_id": dto.ArbitratorID,
			"resolved":      dto.Resolved,
			"outcome":       dto.Outcome,
			"result":        dto.Result,
			"resolved_at":   dto.ResolvedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a dispute by ID.
func (r *GormDisputeRepository) Get(ctx context.Context, id kernel.UUID) (*dispute.Dispute, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DisputeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dispute", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// GetUnresolvedByOrder retrieves the order's open episode, if any.
func (r *GormDisputeRepository) GetUnresolvedByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*dispute.Dispute, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DisputeDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND NOT resolved", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("unresolved dispute", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
