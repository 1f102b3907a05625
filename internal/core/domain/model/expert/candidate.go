package expert

import (
	"errors"

	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/pkg/errs"
)

var (
	// ErrCandidateIsNotConstructed is returned when a Candidate was not
	// created through NewCandidate.
	ErrCandidateIsNotConstructed = errors.New("Candidate must be created via NewCandidate")

	// ErrExpertOverloaded is returned when an expert's active workload has
	// reached the hard cap and no further orders may be claimed.
	ErrExpertOverloaded = errors.New("expert workload cap reached")
)

// MaxWorkload is the hard cap on an expert's concurrently active orders
// (in_progress and revision). Experts at the cap are filtered out of
// matching and rejected on claim attempts.
const MaxWorkload = 5

// Candidate is an immutable snapshot of one expert considered for matching:
// the expert's aggregate quality figures plus current workload, as read in a
// single query. The matching service scores candidates without touching
// storage.
type Candidate struct {
	expertID        kernel.UUID
	averageRating   float64
	successRate     float64
	experienceYears int
	workload        int

	isConstructed bool
}

// NewCandidate creates a matching snapshot for one expert.
// averageRating is within [0, 5]; successRate is a percentage within [0, 100].
func NewCandidate(
	expertID kernel.UUID,
	averageRating float64,
	successRate float64,
	experienceYears int,
	workload int,
) (Candidate, error) {
	if err := expertID.Validate(); err != nil {
		return Candidate{}, err
	}
	if averageRating < 0 || averageRating > 5 {
		return Candidate{}, errs.NewValueIsOutOfRangeError("averageRating", averageRating, 0, 5)
	}
	if successRate < 0 || successRate > 100 {
		return Candidate{}, errs.NewValueIsOutOfRangeError("successRate", successRate, 0, 100)
	}
	if experienceYears < 0 {
		return Candidate{}, errs.NewValueIsInvalidError("experienceYears")
	}
	if workload < 0 {
		return Candidate{}, errs.NewValueIsInvalidError("workload")
	}

	return Candidate{
		expertID:        expertID,
		averageRating:   averageRating,
		successRate:     successRate,
		experienceYears: experienceYears,
		workload:        workload,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Candidate was properly constructed.
func (c Candidate) Validate() error {
	if !c.isConstructed {
		return ErrCandidateIsNotConstructed
	}
	return nil
}

// ExpertID returns the candidate expert's identifier.
func (c Candidate) ExpertID() kernel.UUID {
	return c.expertID
}

// AverageRating returns the expert's mean published rating.
func (c Candidate) AverageRating() float64 {
	return c.averageRating
}

// SuccessRate returns the completed/total percentage within [0, 100].
func (c Candidate) SuccessRate() float64 {
	return c.successRate
}

// ExperienceYears returns the years of experience in the matched subject.
func (c Candidate) ExperienceYears() int {
	return c.experienceYears
}

// Workload returns the count of the expert's currently active orders.
func (c Candidate) Workload() int {
	return c.workload
}

// IsOverloaded reports whether the candidate sits at or above the workload
// cap.
func (c Candidate) IsOverloaded() bool {
	return c.workload >= MaxWorkload
}
