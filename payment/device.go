package payment

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Merchant user id the gateway's fraud-detection service assigns to this
// integration.
const fraudUserID = "80200"

const fraudCheckHTML = `<script type="text/javascript" src="https://maf.pagosonline.net/ws/fp/tags.js?id=$[deviceSessionId]$[usuarioId]"></script>
<noscript>
<iframe style="width: 100px; height: 100px; border: 0; position: absolute; top: -5000px;" src="https://maf.pagosonline.net/ws/fp/tags.js?id=$[deviceSessionId]$[usuarioId]"></iframe>
</noscript>`

// DeviceSessionID produces the opaque token the gateway's fraud-detection
// service uses to correlate a browsing session. Unique per call; not a
// secret and not cryptographically significant.
func DeviceSessionID() string {
	seed := uuid.NewString() + strconv.FormatInt(time.Now().UnixNano(), 10)
	sum := md5.Sum([]byte(seed))
	return hex.EncodeToString(sum[:])
}

// HTML renders the fraud-check snippet to embed in the checkout page, with
// the device session id and the partner user id substituted in.
func HTML(deviceSessionID string) string {
	return strings.NewReplacer(
		"$[deviceSessionId]", deviceSessionID,
		"$[usuarioId]", fraudUserID,
	).Replace(fraudCheckHTML)
}
