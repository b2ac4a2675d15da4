package signer

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// Sign computes the order authentication tag the gateway re-derives server
// side: the hex SHA-1 digest of the fields joined with "~". Field order
// matters; a mismatch makes the gateway reject the order.
func Sign(parts ...string) string {
	sum := sha1.Sum([]byte(strings.Join(parts, "~")))
	return hex.EncodeToString(sum[:])
}
