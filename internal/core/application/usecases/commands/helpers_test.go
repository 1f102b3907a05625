package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/core/domain/model/order"
)

func newTestOrder(t *testing.T, subject string) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		subject,
		"essay",
		3,
		120,
		time.Now().UTC().Add(72*time.Hour),
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func restoreTestOrder(t *testing.T, status order.Status, expertID *kernel.UUID) *order.Order {
	t.Helper()

	now := time.Now().UTC()
	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		expertID,
		"mathematics",
		"essay",
		3,
		120,
		nil,
		status,
		now.Add(72*time.Hour),
		now.Add(-time.Hour),
		now,
	)
	require.NoError(t, err)
	return o
}
