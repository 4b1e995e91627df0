// Package token provides compact, signed session tokens for embedding JSON
// payloads in cookie values.
//
// Tokens use HMAC-SHA256 with the full 32-byte signature. The token is the
// session record: there is no server-side session store, so tamper
// resistance and the max-age check are the only things standing between a
// cookie value and an authenticated identity.
//
// Token format: base64url(payload) + "." + base64url(signature)
//
// The signature is computed over the encoded payload segment, and verified
// with a constant-time comparison before the payload is parsed.
//
// # Usage
//
//	import "github.com/leadvane/leadvane/pkg/token"
//
//	type Payload struct {
//	    UserID int64 `json:"uid"`
//	    IAT    int64 `json:"iat"` // unix millis
//	}
//
//	func (p Payload) IssuedAt() time.Time { return time.UnixMilli(p.IAT) }
//
//	tok, err := token.Generate(Payload{UserID: 42, IAT: time.Now().UnixMilli()}, secret)
//	p, err := token.Parse[Payload](tok, secret, 12*time.Hour)
//
// Parse returns ErrInvalidToken for structurally malformed tokens,
// ErrSignatureInvalid for signature mismatches, and ErrTokenExpired for
// well-formed tokens past their max age. Callers that guard HTTP routes
// should collapse all three to a single unauthenticated result so the
// distinction never leaks to a client.
package token
