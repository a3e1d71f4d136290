package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	body := []byte(`{"event":"user.created","data":{"id":42,"name":"Amal"}}`)

	t.Run("success - signature over raw body", func(t *testing.T) {
		v := NewVerifier("topsecret")
		assert.True(t, v.Verify(body, v.Sign(body)))
	})

	t.Run("success - header without sha1 prefix", func(t *testing.T) {
		v := NewVerifier("topsecret")
		header := v.Sign(body)
		require.True(t, len(header) > len(HeaderPrefix))
		assert.True(t, v.Verify(body, header[len(HeaderPrefix):]))
	})

	t.Run("success - no secret configured accepts anything", func(t *testing.T) {
		v := NewVerifier("")
		assert.False(t, v.Enabled())
		assert.True(t, v.Verify(body, ""))
		assert.True(t, v.Verify(body, "sha1=deadbeef"))
	})

	t.Run("error - missing header with secret configured", func(t *testing.T) {
		v := NewVerifier("topsecret")
		assert.False(t, v.Verify(body, ""))
	})

	t.Run("error - any single byte mutation breaks verification", func(t *testing.T) {
		v := NewVerifier("topsecret")
		header := v.Sign(body)
		for i := range body {
			mutated := make([]byte, len(body))
			copy(mutated, body)
			mutated[i] ^= 0x01
			assert.False(t, v.Verify(mutated, header), "mutation at byte %d must fail", i)
		}
	})

	t.Run("error - wrong secret", func(t *testing.T) {
		signer := NewVerifier("topsecret")
		v := NewVerifier("othersecret")
		assert.False(t, v.Verify(body, signer.Sign(body)))
	})

	t.Run("error - mismatched length signature does not panic", func(t *testing.T) {
		v := NewVerifier("topsecret")
		assert.NotPanics(t, func() {
			assert.False(t, v.Verify(body, "sha1=abc"))
			assert.False(t, v.Verify(body, "sha1="))
		})
	})
}
