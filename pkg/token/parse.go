package token

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// Claims is implemented by token payloads that carry their issue time.
// Parse uses it to enforce the max-age check without knowing the concrete
// payload type.
type Claims interface {
	IssuedAt() time.Time
}

// swapped in tests to pin the clock
var timeNow = time.Now

// Parse verifies the token's signature, decodes the JSON payload into the
// generic type, and rejects tokens older than maxAge. The age boundary is
// inclusive: a token exactly maxAge old is still valid.
//
// Parse never panics on attacker-controlled input; every structural or
// cryptographic failure is reported as an error and the zero value.
func Parse[T Claims](tokenStr, secret string, maxAge time.Duration) (T, error) {
	var zero T

	parts := strings.Split(tokenStr, ".")
	if len(parts) != 2 {
		return zero, ErrInvalidToken
	}

	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return zero, ErrInvalidToken
	}

	// Signature is checked before the payload is parsed so malformed JSON
	// can only be reached with a valid signature.
	if !Verify([]byte(parts[0]), sig, secret) {
		return zero, ErrSignatureInvalid
	}

	data, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return zero, ErrInvalidToken
	}

	var payload T
	if err := json.Unmarshal(data, &payload); err != nil {
		return zero, ErrInvalidToken
	}

	now := timeNow()
	iat := payload.IssuedAt()
	// Missing issue time or a token dated in the future fails closed.
	if iat.UnixMilli() <= 0 || iat.After(now) {
		return zero, ErrInvalidToken
	}
	if now.Sub(iat) > maxAge {
		return zero, ErrTokenExpired
	}

	return payload, nil
}
