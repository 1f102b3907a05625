package services

import (
	"fmt"

	"studyhub/internal/core/domain/model/dispute"
	"studyhub/internal/pkg/errs"
)

// CompensationPolicy maps a dispute outcome to the percentage of the order
// budget refunded to the client. Percentages are data, not code: resolution
// behavior can be reconfigured without touching the arbitration workflow.
type CompensationPolicy struct {
	percentages map[dispute.Outcome]int
}

// NewCompensationPolicy creates a policy with the default percentages:
// favor_expert 0, compromise 50, favor_client 100.
func NewCompensationPolicy() CompensationPolicy {
	return CompensationPolicy{
		percentages: map[dispute.Outcome]int{
			dispute.OutcomeFavorExpert: 0,
			dispute.OutcomeCompromise:  50,
			dispute.OutcomeFavorClient: 100,
		},
	}
}

// NewCompensationPolicyWithPercentages creates a policy with custom
// percentages. Every defined outcome must be covered with a value in
// [0, 100].
func NewCompensationPolicyWithPercentages(percentages map[dispute.Outcome]int) (CompensationPolicy, error) {
	for _, outcome := range []dispute.Outcome{
		dispute.OutcomeFavorExpert,
		dispute.OutcomeFavorClient,
		dispute.OutcomeCompromise,
	} {
		pct, ok := percentages[outcome]
		if !ok {
			return CompensationPolicy{}, errs.NewValueIsRequiredError(fmt.Sprintf("percentage for %s", outcome))
		}
		if pct < 0 || pct > 100 {
			return CompensationPolicy{}, errs.NewValueIsOutOfRangeError(fmt.Sprintf("percentage for %s", outcome), pct, 0, 100)
		}
	}

	copied := make(map[dispute.Outcome]int, len(percentages))
	for outcome, pct := range percentages {
		copied[outcome] = pct
	}

	return CompensationPolicy{percentages: copied}, nil
}

// CompensationPercentage returns the refund percentage for an outcome.
func (p CompensationPolicy) CompensationPercentage(outcome dispute.Outcome) (int, error) {
	if err := outcome.Validate(); err != nil {
		return 0, err
	}

	pct, ok := p.percentages[outcome]
	if !ok {
		return 0, errs.NewValueIsRequiredError(fmt.Sprintf("percentage for %s", outcome))
	}

	return pct, nil
}
