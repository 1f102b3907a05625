package queries

import (
	"context"

	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves non-terminal orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal orders.
// Returns a slice of order read models sorted by id.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			expert_id,
			subject,
			work_type,
			status,
			budget,
			deadline
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY id
	`, order.StatusCompleted.String(), order.StatusCancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetActiveOrdersQueryResponse
		var id, clientID uuid.UUID
		var expertID *uuid.UUID

		err = rows.Scan(
			&id,
			&clientID,
			&expertID,
			&response.Subject,
			&response.WorkType,
			&response.Status,
			&response.Budget,
			&response.Deadline,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = orderID

		ownerID, idErr := kernel.UUIDFromBytes(clientID[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ClientID = ownerID

		if expertID != nil {
			eID, idErr := kernel.UUIDFromBytes((*expertID)[:])
			if idErr != nil {
				return nil, idErr
			}
			response.ExpertID = &eID
		}

		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
