// Package notify provides the outbound notification adapter. The current
// implementation writes structured log records; a broker-backed publisher
// can replace it behind the same port.
package notify

import (
	"context"
	"log/slog"

	"studyhub/internal/core/ports"
)

// SlogNotificationGateway logs every emitted integration event.
type SlogNotificationGateway struct {
	logger *slog.Logger
}

// NewSlogNotificationGateway creates a logging notification gateway.
func NewSlogNotificationGateway(logger *slog.Logger) *SlogNotificationGateway {
	return &SlogNotificationGateway{logger: logger}
}

// Emit records the event. Delivery is best-effort: there is nothing to
// return to the caller and nothing to roll back.
func (g *SlogNotificationGateway) Emit(ctx context.Context, event ports.NotificationEvent) {
	g.logger.InfoContext(ctx, "notification emitted",
		"event", event.Name(),
		"payload", event,
	)
}
