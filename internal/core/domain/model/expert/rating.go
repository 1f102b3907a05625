package expert

import (
	"errors"
	"time"

	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/pkg/errs"
)

var (
	// ErrRatingIsNotConstructed is returned when a Rating was not created
	// through NewRating.
	ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating")

	// ErrRatingAlreadyExists is returned when a rating for the same
	// (expert, order) pair is already stored; each completed order carries
	// exactly one rating.
	ErrRatingAlreadyExists = errors.New("rating already exists for the order")
)

const (
	minRatingValue = 1
	maxRatingValue = 5
)

// Rating is one client's verdict on one completed order.
type Rating struct {
	id       kernel.UUID
	expertID kernel.UUID
	clientID kernel.UUID
	orderID  kernel.UUID
	value    int
	ratedAt  time.Time

	isConstructed bool
}

// NewRating creates a rating with a value within [1, 5].
func NewRating(
	id kernel.UUID,
	expertID kernel.UUID,
	clientID kernel.UUID,
	orderID kernel.UUID,
	value int,
	now time.Time,
) (*Rating, error) {
	if err := errors.Join(
		id.Validate(),
		expertID.Validate(),
		clientID.Validate(),
		orderID.Validate(),
	); err != nil {
		return nil, err
	}
	if value < minRatingValue || value > maxRatingValue {
		return nil, errs.NewValueIsOutOfRangeError("rating", value, minRatingValue, maxRatingValue)
	}

	return &Rating{
		id:            id,
		expertID:      expertID,
		clientID:      clientID,
		orderID:       orderID,
		value:         value,
		ratedAt:       now,
		isConstructed: true,
	}, nil
}

// Validate ensures the Rating was properly constructed.
func (r *Rating) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRatingIsNotConstructed
	}
	return nil
}

// ID returns the rating's unique identifier.
func (r *Rating) ID() kernel.UUID {
	return r.id
}

// ExpertID returns the rated expert.
func (r *Rating) ExpertID() kernel.UUID {
	return r.expertID
}

// ClientID returns the client who rated.
func (r *Rating) ClientID() kernel.UUID {
	return r.clientID
}

// OrderID returns the completed order the rating refers to.
func (r *Rating) OrderID() kernel.UUID {
	return r.orderID
}

// Value returns the rating value within [1, 5].
func (r *Rating) Value() int {
	return r.value
}

// RatedAt returns the creation timestamp.
func (r *Rating) RatedAt() time.Time {
	return r.ratedAt
}
