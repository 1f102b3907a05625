// Package expertrepo persists the expert-side records: specializations,
// ratings and the derived statistics row. It also produces the candidate
// snapshot the matcher ranks.
package expertrepo

import (
	"time"

	"studyhub/internal/core/domain/model/expert"
	"studyhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// SpecializationDTO maps a verified (expert, subject) capability record.
// The composite unique index enforces one row per pair.
type SpecializationDTO struct {
	ExpertID        uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_specializations_expert_subject"`
	Subject         string    `gorm:"uniqueIndex:idx_specializations_expert_subject"`
	ExperienceYears int       `gorm:"type:smallint"`
	HourlyRate      float64   `gorm:"type:numeric"`
	IsVerified      bool
}

// TableName overrides GORM's default naming convention.
func (SpecializationDTO) TableName() string {
	return "specializations"
}

// StatisticsDTO maps the derived per-expert aggregate row. It is rewritten
// wholesale by the recompute upsert, never patched field by field.
type StatisticsDTO struct {
	ExpertID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TotalOrders     int
	CompletedOrders int
	AverageRating   float64 `gorm:"type:numeric"`
	SuccessRate     float64 `gorm:"type:numeric"`
	TotalEarnings   float64 `gorm:"type:numeric"`
	UpdatedAt       time.Time
}

// TableName overrides GORM's default naming convention.
func (StatisticsDTO) TableName() string {
	return "expert_statistics"
}

// RatingDTO maps one published client rating. The unique index on order_id
// enforces at most one rating per order.
type RatingDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExpertID  uuid.UUID `gorm:"type:uuid;index"`
	ClientID  uuid.UUID `gorm:"type:uuid"`
	OrderID   uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Rating    int       `gorm:"type:smallint"`
	CreatedAt time.Time
}

// TableName overrides GORM's default naming convention.
func (RatingDTO) TableName() string {
	return "expert_ratings"
}

func specializationFromDomain(s *expert.Specialization) SpecializationDTO {
	return SpecializationDTO{
		ExpertID:        s.ExpertID().Bytes(),
		Subject:         s.Subject(),
		ExperienceYears: s.ExperienceYears(),
		HourlyRate:      s.HourlyRate(),
		IsVerified:      s.IsVerified(),
	}
}

func statisticsFromDomain(s *expert.Statistics) StatisticsDTO {
	return StatisticsDTO{
		ExpertID:        s.ExpertID().Bytes(),
		TotalOrders:     s.TotalOrders(),
		CompletedOrders: s.CompletedOrders(),
		AverageRating:   s.AverageRating(),
		SuccessRate:     s.SuccessRate(),
		TotalEarnings:   s.TotalEarnings(),
		UpdatedAt:       s.UpdatedAt(),
	}
}

func statisticsToDomain(dto StatisticsDTO) (*expert.Statistics, error) {
	expertID, err := kernel.UUIDFromBytes(dto.ExpertID[:])
	if err != nil {
		return nil, err
	}

	return expert.RestoreStatistics(
		expertID,
		dto.TotalOrders,
		dto.CompletedOrders,
		dto.AverageRating,
		dto.SuccessRate,
		dto.TotalEarnings,
		dto.UpdatedAt,
	)
}

func ratingFromDomain(r *expert.Rating) RatingDTO {
	return RatingDTO{
		ID:        r.ID().Bytes(),
		ExpertID:  r.ExpertID().Bytes(),
		ClientID:  r.ClientID().Bytes(),
		OrderID:   r.OrderID().Bytes(),
		Rating:    r.Value(),
		CreatedAt: r.RatedAt(),
	}
}

func ratingToDomain(dto RatingDTO) (*expert.Rating, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	expertID, err := kernel.UUIDFromBytes(dto.ExpertID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return expert.NewRating(id, expertID, clientID, orderID, dto.Rating, dto.CreatedAt)
}
