package signer_test

import (
	"testing"

	"payu/signer"

	"github.com/stretchr/testify/require"
)

func TestSign_ReferenceVector(t *testing.T) {
	// Fixed vector from the gateway's own integration test suite.
	got := signer.Sign("4Vj8eK4rloUd272L48hsrarnUA", "509029", "TestPayU", "30000", "COP")
	require.Equal(t, "332826df3772a170dd87cc46a2741023e9290461", got)
}

func TestSign_FieldOrderMatters(t *testing.T) {
	a := signer.Sign("key", "509029", "ref-1", "100", "COP")
	b := signer.Sign("key", "ref-1", "509029", "100", "COP")
	require.NotEqual(t, a, b)
}
