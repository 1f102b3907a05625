package queries

import (
	"context"
	"database/sql"
	"errors"

	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetExpertStatisticsQueryHandler retrieves one expert's aggregate row.
type GetExpertStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetExpertStatisticsQueryHandler creates a handler for statistics queries.
func NewGetExpertStatisticsQueryHandler(db *gorm.DB) GetExpertStatisticsQueryHandler {
	return GetExpertStatisticsQueryHandler{db: db}
}

// Handle executes the query. An expert without a statistics row has simply
// never completed the recompute, which reads as not found.
func (h GetExpertStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetExpertStatisticsQuery,
) (GetExpertStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetExpertStatisticsQueryResponse{}, err
	}

	var response GetExpertStatisticsQueryResponse
	var id uuid.UUID

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			expert_id,
			total_orders,
			completed_orders,
			average_rating,
			success_rate,
			total_earnings,
			updated_at
		FROM expert_statistics
		WHERE expert_id = ?
	`, query.ExpertID().Bytes()).Row().Scan(
		&id,
		&response.TotalOrders,
		&response.CompletedOrders,
		&response.AverageRating,
		&response.SuccessRate,
		&response.TotalEarnings,
		&response.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetExpertStatisticsQueryResponse{},
				errs.NewObjectNotFoundError("expert statistics", query.ExpertID().String())
		}
		return GetExpertStatisticsQueryResponse{}, err
	}

	expertID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetExpertStatisticsQueryResponse{}, err
	}
	response.ExpertID = expertID

	return response, nil
}
