package queries

import (
	"context"
	"database/sql"
	"errors"

	"studyhub/internal/core/domain/model/expert"
	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/core/domain/model/order"
	"studyhub/internal/core/domain/services"
	"studyhub/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FindCandidatesQueryHandler ranks expert candidates for an order.
// Reads a raw snapshot for optimal performance in the CQRS pattern and
// delegates filtering and scoring to the domain matcher, so the ranking
// rules live in exactly one place.
type FindCandidatesQueryHandler struct {
	db      *gorm.DB
	matcher services.ExpertMatcher
}

// NewFindCandidatesQueryHandler creates a handler for candidate ranking queries.
func NewFindCandidatesQueryHandler(db *gorm.DB, matcher services.ExpertMatcher) FindCandidatesQueryHandler {
	return FindCandidatesQueryHandler{db: db, matcher: matcher}
}

// Handle executes the query: resolves the order's subject, snapshots the
// verified experts for it and returns the matcher's ranking. Orders without
// a subject requirement rank every verified expert of every subject.
func (h FindCandidatesQueryHandler) Handle(
	ctx context.Context,
	query FindCandidatesQuery,
) ([]FindCandidatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	subject, err := h.orderSubject(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	candidates, err := h.snapshot(ctx, subject)
	if err != nil {
		return nil, err
	}

	ranked, err := h.matcher.Match(candidates, query.Limit())
	if err != nil {
		return nil, err
	}

	responses := make([]FindCandidatesQueryResponse, 0, len(ranked))
	for _, c := range ranked {
		responses = append(responses, FindCandidatesQueryResponse{
			ExpertID:        c.ExpertID(),
			Score:           h.matcher.Score(c),
			AverageRating:   c.AverageRating(),
			SuccessRate:     c.SuccessRate(),
			ExperienceYears: c.ExperienceYears(),
			Workload:        c.Workload(),
		})
	}

	return responses, nil
}

func (h FindCandidatesQueryHandler) orderSubject(ctx context.Context, orderID kernel.UUID) (string, error) {
	var subject string
	err := h.db.WithContext(ctx).Raw(`
		SELECT subject FROM orders WHERE id = ?
	`, orderID.Bytes()).Row().Scan(&subject)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", errs.NewObjectNotFoundError("order", orderID.String())
		}
		return "", err
	}

	return subject, nil
}

func (h FindCandidatesQueryHandler) snapshot(ctx context.Context, subject string) ([]expert.Candidate, error) {
	stmt := `
		SELECT
			s.expert_id,
			COALESCE(st.average_rating, 0),
			COALESCE(st.success_rate, 0),
			s.experience_years,
			COALESCE(w.active_orders, 0)
		FROM specializations s
		LEFT JOIN expert_statistics st ON st.expert_id = s.expert_id
		LEFT JOIN (
			SELECT expert_id, COUNT(*) AS active_orders
			FROM orders
			WHERE status IN (?, ?)
			GROUP BY expert_id
		) w ON w.expert_id = s.expert_id
		WHERE s.is_verified`
	args := []any{order.StatusInProgress.String(), order.StatusRevision.String()}

	if subject != "" {
		stmt += " AND s.subject = ?"
		args = append(args, subject)
	}

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := make([]expert.Candidate, 0)
	for rows.Next() {
		var id uuid.UUID
		var averageRating, successRate float64
		var experienceYears, workload int

		if err = rows.Scan(&id, &averageRating, &successRate, &experienceYears, &workload); err != nil {
			return nil, err
		}

		expertID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		candidate, candErr := expert.NewCandidate(expertID, averageRating, successRate, experienceYears, workload)
		if candErr != nil {
			return nil, candErr
		}
		candidates = append(candidates, candidate)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return candidates, nil
}
