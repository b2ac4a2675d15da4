package payment_test

import (
	"testing"

	"payu/payment"

	"github.com/stretchr/testify/require"
)

func TestDeviceSessionID_DistinctPerCall(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := payment.DeviceSessionID()
		require.Len(t, id, 32)
		require.False(t, seen[id], "duplicate device session id %s", id)
		seen[id] = true
	}
}

func TestHTML(t *testing.T) {
	html := payment.HTML("vghs6tvkcle931686k1900o6e1")
	require.Contains(t, html, "vghs6tvkcle931686k1900o6e1")
	require.Contains(t, html, "80200")
	require.NotContains(t, html, "$[deviceSessionId]")
	require.NotContains(t, html, "$[usuarioId]")
}
