package token

import (
	"encoding/base64"
	"encoding/json"
)

// Generate creates a token by JSON encoding the payload and appending an
// HMAC-SHA256 signature computed over the encoded payload segment.
func Generate[T any](payload T, secret string) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	payloadEnc := base64.RawURLEncoding.EncodeToString(data)
	sig := Sign([]byte(payloadEnc), secret)

	return payloadEnc + "." + base64.RawURLEncoding.EncodeToString(sig), nil
}
