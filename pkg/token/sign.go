package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
)

// Sign computes a deterministic HMAC-SHA256 signature over data using the
// given secret.
func Sign(data []byte, secret string) []byte {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return h.Sum(nil)
}

// Verify reports whether sig is a valid signature for data under secret.
// A length mismatch fails before any byte comparison; the comparison itself
// is constant-time so verification cannot be used as a timing oracle.
// Verify never returns an error - all failures collapse to false.
func Verify(data, sig []byte, secret string) bool {
	if len(sig) != sha256.Size {
		return false
	}
	expected := Sign(data, secret)
	return subtle.ConstantTimeCompare(sig, expected) == 1
}
