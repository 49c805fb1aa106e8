package discord

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func signBody(t *testing.T, priv ed25519.PrivateKey, timestamp string, body []byte) string {
	t.Helper()
	msg := append([]byte(timestamp), body...)
	return hex.EncodeToString(ed25519.Sign(priv, msg))
}

func Test_Verify(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	timestamp := "1700000000"
	body := []byte(`{"type":1}`)
	signature := signBody(t, priv, timestamp, body)

	require.NoError(t, Verify(timestamp, signature, body, pub))
}

func Test_Verify_tamperedBody(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	timestamp := "1700000000"
	body := []byte(`{"type":1}`)
	signature := signBody(t, priv, timestamp, body)

	tampered := []byte(`{"type":2}`)
	require.Error(t, Verify(timestamp, signature, tampered, pub))
}

func Test_Verify_tamperedTimestamp(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	body := []byte(`{"type":1}`)
	signature := signBody(t, priv, "1700000000", body)

	require.Error(t, Verify("1700000001", signature, body, pub))
}

func Test_Verify_tamperedSignature(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	timestamp := "1700000000"
	body := []byte(`{"type":1}`)
	signature := signBody(t, priv, timestamp, body)

	flipped := []byte(signature)
	if flipped[0] == 'a' {
		flipped[0] = 'b'
	} else {
		flipped[0] = 'a'
	}

	require.Error(t, Verify(timestamp, string(flipped), body, pub))
}

func Test_Verify_invalidInputs(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	timestamp := "1700000000"
	body := []byte(`{"type":1}`)
	signature := signBody(t, priv, timestamp, body)

	require.Error(t, Verify(timestamp, "", body, pub))
	require.Error(t, Verify("", signature, body, pub))
	require.Error(t, Verify(timestamp, "zz", body, pub))
	require.Error(t, Verify(timestamp, "abcd", body, pub))
	require.Error(t, Verify(timestamp, signature, body, pub[:16]))
}

func Test_VerifyRequest(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	timestamp := "1700000000"
	body := []byte(`{"type":1}`)

	req := httptest.NewRequest("POST", "/interactions", nil)
	req.Header.Set(TimestampHeader, timestamp)
	req.Header.Set(SignatureHeader, signBody(t, priv, timestamp, body))

	require.NoError(t, VerifyRequest(req, body, pub))

	req.Header.Del(SignatureHeader)
	require.Error(t, VerifyRequest(req, body, pub))
}
