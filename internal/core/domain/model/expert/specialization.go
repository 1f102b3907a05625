package expert

import (
	"errors"

	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/pkg/errs"
)

var (
	// ErrSpecializationIsNotConstructed is returned when a Specialization was
	// not created through NewSpecialization.
	ErrSpecializationIsNotConstructed = errors.New("Specialization must be created via NewSpecialization")

	// ErrExpertNotQualified is returned when an expert has no verified
	// specialization for an order's subject.
	ErrExpertNotQualified = errors.New("expert is not qualified for the subject")
)

// Specialization is a per-(expert, subject) capability record. Only a
// verified specialization makes an expert eligible to claim orders in that
// subject.
type Specialization struct {
	expertID        kernel.UUID
	subject         string
	experienceYears int
	hourlyRate      float64
	isVerified      bool

	isConstructed bool
}

// NewSpecialization creates a specialization claim. It starts unverified
// unless verified is set; verification itself is an administrative concern
// outside this core.
func NewSpecialization(
	expertID kernel.UUID,
	subject string,
	experienceYears int,
	hourlyRate float64,
	verified bool,
) (*Specialization, error) {
	spec := &Specialization{
		isVerified:    verified,
		isConstructed: true,
	}

	if err := errors.Join(
		spec.setExpertID(expertID),
		spec.setSubject(subject),
		spec.setExperienceYears(experienceYears),
		spec.setHourlyRate(hourlyRate),
	); err != nil {
		return nil, err
	}

	return spec, nil
}

// Validate ensures the Specialization was properly constructed.
func (s *Specialization) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSpecializationIsNotConstructed
	}
	return nil
}

// ExpertID returns the owning expert's identifier.
func (s *Specialization) ExpertID() kernel.UUID {
	return s.expertID
}

// Subject returns the subject this specialization covers.
func (s *Specialization) Subject() string {
	return s.subject
}

// ExperienceYears returns the declared years of experience in the subject.
func (s *Specialization) ExperienceYears() int {
	return s.experienceYears
}

// HourlyRate returns the expert's asking rate for the subject.
func (s *Specialization) HourlyRate() float64 {
	return s.hourlyRate
}

// IsVerified reports whether the specialization passed verification and
// therefore gates order claims.
func (s *Specialization) IsVerified() bool {
	return s.isVerified
}

func (s *Specialization) setExpertID(expertID kernel.UUID) error {
	if err := expertID.Validate(); err != nil {
		return err
	}
	s.expertID = expertID
	return nil
}

func (s *Specialization) setSubject(subject string) error {
	if subject == "" {
		return errs.NewValueIsRequiredError("subject")
	}
	s.subject = subject
	return nil
}

func (s *Specialization) setExperienceYears(years int) error {
	if years < 0 {
		return errs.NewValueIsInvalidError("experienceYears")
	}
	s.experienceYears = years
	return nil
}

func (s *Specialization) setHourlyRate(rate float64) error {
	if rate <= 0 {
		return errs.NewValueIsInvalidError("hourlyRate")
	}
	s.hourlyRate = rate
	return nil
}
