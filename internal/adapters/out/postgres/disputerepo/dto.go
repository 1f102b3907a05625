// Package disputerepo persists conflict episodes. The storage layer owns
// the exclusivity invariant: at most one unresolved dispute per order.
package disputerepo

import (
	"time"

	"studyhub/internal/core/domain/model/dispute"
	"studyhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DisputeDTO maps a dispute episode row. The partial unique index on
// order_id backs up the conditional insert: even under concurrent opens
// the database admits at most one unresolved row per order.
type DisputeDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID  `gorm:"type:uuid;index;index:idx_disputes_open_order,unique,where:not resolved"`
	RaisedBy     uuid.UUID  `gorm:"type:uuid"`
	Reason       string
	ArbitratorID *uuid.UUID `gorm:"type:uuid"`
	Resolved     bool
	Outcome      *string
	Result       string
	CreatedAt    time.Time
	ResolvedAt   *time.Time
}

// TableName overrides GORM's default naming convention.
func (DisputeDTO) TableName() string {
	return "disputes"
}

// fromDomain converts a dispute aggregate to its database representation.
func fromDomain(aggregate *dispute.Dispute) DisputeDTO {
	var arbitratorID *uuid.UUID
	if id := aggregate.ArbitratorID(); id != nil {
		raw := id.Bytes()
		arbitratorID = &raw
	}

	var outcome *string
	if o := aggregate.Outcome(); o != nil {
		raw := o.String()
		outcome = &raw
	}

	return DisputeDTO{
		ID:           aggregate.ID().Bytes(),
		OrderID:      aggregate.OrderID().Bytes(),
		RaisedBy:     aggregate.RaisedBy().Bytes(),
		Reason:       aggregate.Reason(),
		ArbitratorID: arbitratorID,
		Resolved:     aggregate.IsResolved(),
		Outcome:      outcome,
		Result:       aggregate.Result(),
		CreatedAt:    aggregate.CreatedAt(),
		ResolvedAt:   aggregate.ResolvedAt(),
	}
}

// toDomain converts a database DTO to a dispute aggregate using RestoreDispute.
func toDomain(dto DisputeDTO) (*dispute.Dispute, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	raisedBy, err := kernel.UUIDFromBytes(dto.RaisedBy[:])
	if err != nil {
		return nil, err
	}

	var arbitratorID *kernel.UUID
	if dto.ArbitratorID != nil {
		aID, arbErr := kernel.UUIDFromBytes((*dto.ArbitratorID)[:])
		if arbErr != nil {
			return nil, arbErr
		}
		arbitratorID = &aID
	}

	var outcome *dispute.Outcome
	if dto.Outcome != nil {
		o := dispute.Outcome(*dto.Outcome)
		outcome = &o
	}

	return dispute.RestoreDispute(
		id,
		orderID,
		raisedBy,
		dto.Reason,
		arbitratorID,
		dto.Resolved,
		outcome,
		dto.Result,
		dto.CreatedAt,
		dto.ResolvedAt,
	)
}
