// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and expert assignment.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID   uuid.UUID  `gorm:"type:uuid;index"`
	ExpertID   *uuid.UUID `gorm:"type:uuid;index"`
	Subject    string
	WorkType   string
	Complexity int      `gorm:"type:smallint"`
	Budget     float64  `gorm:"type:numeric"`
	FinalPrice *float64 `gorm:"type:numeric"`
	Status     string   `gorm:"index"`
	Deadline   time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional expert assignment and final price.
func fromDomain(aggregate *order.Order) OrderDTO {
	var expertID *uuid.UUID
	if id := aggregate.ExpertID(); id != nil {
		raw := id.Bytes()
		expertID = &raw
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		ClientID:   aggregate.ClientID().Bytes(),
		ExpertID:   expertID,
		Subject:    aggregate.Subject(),
		WorkType:   aggregate.WorkType(),
		Complexity: aggregate.Complexity(),
		Budget:     aggregate.Budget(),
		FinalPrice: aggregate.FinalPrice(),
		Status:     aggregate.Status().String(),
		Deadline:   aggregate.Deadline(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and expert assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var expertID *kernel.UUID
	if dto.ExpertID != nil {
		eID, expertErr := kernel.UUIDFromBytes((*dto.ExpertID)[:])
		if expertErr != nil {
			return nil, expertErr
		}

		expertID = &eID
	}

	return order.RestoreOrder(
		id,
		clientID,
		expertID,
		dto.Subject,
		dto.WorkType,
		dto.Complexity,
		dto.Budget,
		dto.FinalPrice,
		order.Status(dto.Status),
		dto.Deadline,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
