package commands

import (
	"errors"

	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/pkg/errs"
	"studyhub/internal/pkg/guard"
)

var ErrAddSpecializationCommandIsNotConstructed = errors.New(
	"AddSpecializationCommand must be created via NewAddSpecializationCommand constructor",
)

// AddSpecializationCommand represents a request to register an expert's
// specialization claim for a subject.
type AddSpecializationCommand struct { //nolint:recvcheck //using for validation
	expertID        kernel.UUID
	subject         string
	experienceYears int
	hourlyRate      float64
	verified        bool

	guard guard.ConstructorGuard
}

// NewAddSpecializationCommand creates a command to register a specialization.
// Validates that the expert ID is valid, the subject is not empty and the
// hourly rate is positive.
func NewAddSpecializationCommand(
	expertID kernel.UUID,
	subject string,
	experienceYears int,
	hourlyRate float64,
	verified bool,
) (AddSpecializationCommand, error) {
	cmd := AddSpecializationCommand{
		experienceYears: experienceYears,
		verified:        verified,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setExpertID(expertID),
		cmd.setSubject(subject),
		cmd.setHourlyRate(hourlyRate),
	); err != nil {
		return AddSpecializationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddSpecializationCommand) Validate() error {
	return c.guard.Validate(ErrAddSpecializationCommandIsNotConstructed)
}

// ExpertID returns the claiming expert's identifier.
func (c AddSpecializationCommand) ExpertID() kernel.UUID {
	return c.expertID
}

// Subject returns the subject the specialization covers.
func (c AddSpecializationCommand) Subject() string {
	return c.subject
}

// ExperienceYears returns the declared years of experience.
func (c AddSpecializationCommand) ExperienceYears() int {
	return c.experienceYears
}

// HourlyRate returns the expert's asking rate.
func (c AddSpecializationCommand) HourlyRate() float64 {
	return c.hourlyRate
}

// Verified reports whether the specialization is registered as verified.
func (c AddSpecializationCommand) Verified() bool {
	return c.verified
}

func (c *AddSpecializationCommand) setExpertID(expertID kernel.UUID) error {
	if err := expertID.Validate(); err != nil {
		return err
	}

	c.expertID = expertID
	return nil
}

func (c *AddSpecializationCommand) setSubject(subject string) error {
	if subject == "" {
		return errs.NewValueIsRequiredError("subject")
	}

	c.subject = subject
	return nil
}

func (c *AddSpecializationCommand) setHourlyRate(hourlyRate float64) error {
	if hourlyRate <= 0 {
		return errs.NewValueIsInvalidError("hourlyRate")
	}

	c.hourlyRate = hourlyRate
	return nil
}
