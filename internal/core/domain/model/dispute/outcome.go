package dispute

import (
	"fmt"

	"studyhub/internal/core/domain/model/order"
	"studyhub/internal/pkg/errs"
)

// Outcome is the arbitrator's verdict on a dispute. It decides both the
// order's terminal status and the compensation percentage owed to the
// client.
type Outcome string

const (
	// OutcomeFavorExpert completes the order; the expert keeps the payment.
	OutcomeFavorExpert Outcome = "favor_expert"

	// OutcomeFavorClient cancels the order; the client is refunded in full.
	OutcomeFavorClient Outcome = "favor_client"

	// OutcomeCompromise cancels the order with a partial refund.
	OutcomeCompromise Outcome = "compromise"
)

// Validate checks that the Outcome value is one of the defined outcomes.
func (o Outcome) Validate() error {
	switch o {
	case OutcomeFavorExpert, OutcomeFavorClient, OutcomeCompromise:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("outcome", fmt.Errorf("%q is not a valid outcome", string(o)))
}

// String returns the wire name of the outcome.
func (o Outcome) String() string {
	return string(o)
}

// OrderEvent maps the outcome to the terminal lifecycle event it drives:
// favor_expert completes the order, everything else cancels it.
func (o Outcome) OrderEvent() order.Event {
	if o == OutcomeFavorExpert {
		return order.EventResolveComplete
	}
	return order.EventResolveCancel
}
