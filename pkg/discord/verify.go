package discord

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"net/http"
)

const (
	SignatureHeader = "X-Signature-Ed25519"
	TimestampHeader = "X-Signature-Timestamp"
)

// Verify checks the detached ed25519 signature over the concatenation of the
// timestamp header and the raw request body. The body must be the exact wire
// bytes; callers must not parse or re-serialize it before verifying.
func Verify(timestamp, signature string, body []byte, key ed25519.PublicKey) error {
	if signature == "" {
		return fmt.Errorf("signature can not empty")
	}

	sig, err := hex.DecodeString(signature)
	if err != nil {
		return err
	}

	if len(sig) != ed25519.SignatureSize || sig[63]&224 != 0 {
		return fmt.Errorf("signature is not valid")
	}

	if timestamp == "" {
		return fmt.Errorf("timestamp can not empty")
	}

	if len(key) != ed25519.PublicKeySize {
		return fmt.Errorf("public key is not valid")
	}

	msg := append([]byte(timestamp), body...)
	if !ed25519.Verify(key, msg, sig) {
		return fmt.Errorf("signature is not valid")
	}

	return nil
}

// VerifyRequest verifies the signature headers of r against the given body,
// which the caller has already read from r.
func VerifyRequest(r *http.Request, body []byte, key ed25519.PublicKey) error {
	return Verify(
		r.Header.Get(TimestampHeader),
		r.Header.Get(SignatureHeader),
		body,
		key,
	)
}
