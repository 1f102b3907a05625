package orderrepo

import (
	"context"
	"errors"
	"time"

	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/core/domain/model/order"
	"studyhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateStatusFrom persists the aggregate with an optimistic guard on the
// status it was loaded in. Zero rows affected means another writer moved
// the order first and the caller's view is stale.
func (r *GormOrderRepository) UpdateStatusFrom(
	ctx context.Context,
	aggregate *order.Order,
	from order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, from.String()).
		Updates(map[string]any{
			"expert_id":   dto.ExpertID,
			"final_price": dto.FinalPrice,
			"status":      dto.Status,
			"updated_at":  dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ClaimForExpert assigns the order to the expert with a single conditional
// update. Under concurrent claims the database serializes the writes and
// exactly one of them matches the WHERE clause; the losers get
// order.ErrOrderNotAvailable.
func (r *GormOrderRepository) ClaimForExpert(
	ctx context.Context,
	orderID kernel.UUID,
	expertID kernel.UUID,
) error {
	if err := errors.Join(orderID.Validate(), expertID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ? AND expert_id IS NULL", orderID.Bytes(), order.StatusNew.String()).
		Updates(map[string]any{
			"expert_id":  expertID.Bytes(),
			"status":     order.StatusInProgress.String(),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return order.ErrOrderNotAvailable
	}

	return nil
}

// CountActiveByExpert returns the expert's workload: the number of orders
// currently sitting with the expert in in_progress or revision.
func (r *GormOrderRepository) CountActiveByExpert(ctx context.Context, expertID kernel.UUID) (int, error) {
	if err := expertID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("expert_id = ? AND status IN ?", expertID.Bytes(),
			[]string{order.StatusInProgress.String(), order.StatusRevision.String()}).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// GetAllActive retrieves all orders that have not reached a terminal status.
func (r *GormOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status NOT IN ?",
			[]string{order.StatusCompleted.String(), order.StatusCancelled.String()}).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// GetAllByExpert retrieves every order ever assigned to the expert,
// regardless of status. Used by the statistics rebuild.
func (r *GormOrderRepository) GetAllByExpert(ctx context.Context, expertID kernel.UUID) ([]*order.Order, error) {
	if err := expertID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "expert_id = ?", expertID.Bytes()).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// ExpireOverdue cancels every unclaimed order whose deadline has passed.
// The conditional update makes the sweep idempotent: a second run over the
// same rows affects nothing and reports zero.
func (r *GormOrderRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("status = ? AND deadline < ?", order.StatusNew.String(), now).
		Updates(map[string]any{
			"status":     order.StatusCancelled.String(),
			"updated_at": now,
		})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
