// Package payment provides the outbound payment adapter. The core hands it
// explicit compensation instructions during dispute resolution; the adapter
// owns delivery to the payment system.
package payment

import (
	"context"
	"log/slog"

	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/pkg/errs"
)

// SlogPaymentGateway records compensation instructions as structured log
// entries. It stands in for the real payment system integration.
type SlogPaymentGateway struct {
	logger *slog.Logger
}

// NewSlogPaymentGateway creates a logging payment gateway.
func NewSlogPaymentGateway(logger *slog.Logger) *SlogPaymentGateway {
	return &SlogPaymentGateway{logger: logger}
}

// InstructCompensation records the instruction to refund percentage percent
// of the order's price to the client.
func (g *SlogPaymentGateway) InstructCompensation(
	ctx context.Context,
	orderID kernel.UUID,
	percentage int,
) error {
	if percentage < 0 || percentage > 100 {
		return errs.NewValueIsOutOfRangeError("percentage", percentage, 0, 100)
	}

	g.logger.InfoContext(ctx, "compensation instructed",
		"order_id", orderID.String(),
		"percentage", percentage,
	)
	return nil
}
