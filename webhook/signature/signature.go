package signature

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

/* Honeycommb signs webhooks with a hex-encoded HMAC-SHA1 over the raw
 * request body, delivered in the X-Honeycommb-Signature header with an
 * optional "sha1=" prefix. The scheme is fixed by the platform
 */

// HeaderPrefix is the optional scheme prefix carried by the header
const HeaderPrefix = "sha1="

// Verifier validates inbound webhook signatures against a shared secret
type Verifier struct {
	secret []byte
}

// NewVerifier creates a verifier. An empty secret disables verification
// entirely; callers are expected to log that degraded mode.
func NewVerifier(secret string) *Verifier {
	if secret == "" {
		return &Verifier{}
	}
	return &Verifier{secret: []byte(secret)}
}

// Enabled reports whether a secret is configured
func (v *Verifier) Enabled() bool {
	return len(v.secret) > 0
}

/* Verify checks the signature header against the raw body bytes
 * Must be called with the exact bytes read from the wire: the HMAC of a
 * re-serialized payload will not match
 */
func (v *Verifier) Verify(rawBody []byte, header string) bool {
	if !v.Enabled() {
		return true
	}
	if header == "" {
		return false
	}

	received := strings.TrimPrefix(header, HeaderPrefix)
	expected := v.digest(rawBody)

	// Mismatched lengths are a definite failure; the constant-time
	// comparison below only holds for equal-length inputs.
	if len(received) != len(expected) {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(received), []byte(expected)) == 1
}

// Sign computes the header value this verifier would accept for rawBody
func (v *Verifier) Sign(rawBody []byte) string {
	return HeaderPrefix + v.digest(rawBody)
}

func (v *Verifier) digest(rawBody []byte) string {
	mac := hmac.New(sha1.New, v.secret)
	mac.Write(rawBody)
	return hex.EncodeToString(mac.Sum(nil))
}
