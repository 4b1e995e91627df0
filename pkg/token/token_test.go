package token_test

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/leadvane/leadvane/pkg/token"
)

type testPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	IAT  int64  `json:"iat"`
}

func (p testPayload) IssuedAt() time.Time { return time.UnixMilli(p.IAT) }

func freshPayload() testPayload {
	return testPayload{ID: 1, Name: "test", IAT: time.Now().UnixMilli()}
}

func TestGenerateAndParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		payload testPayload
		secret  string
	}{
		{
			name:    "valid token",
			payload: testPayload{ID: 1, Name: "test", IAT: time.Now().UnixMilli()},
			secret:  "secret123",
		},
		{
			name:    "unicode payload",
			payload: testPayload{ID: 7, Name: "müller & søn", IAT: time.Now().UnixMilli()},
			secret:  "secret123",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tokenStr, err := token.Generate(tt.payload, tt.secret)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}

			parts := strings.Split(tokenStr, ".")
			if len(parts) != 2 {
				t.Fatalf("Generate() invalid token format, got %v parts, want 2", len(parts))
			}

			got, err := token.Parse[testPayload](tokenStr, tt.secret, time.Hour)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got != tt.payload {
				t.Errorf("Parse() got = %v, want %v", got, tt.payload)
			}
		})
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()
	tokenStr, err := token.Generate(freshPayload(), "secret-a")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	_, err = token.Parse[testPayload](tokenStr, "secret-b", time.Hour)
	if !errors.Is(err, token.ErrSignatureInvalid) {
		t.Errorf("Parse() error = %v, want %v", err, token.ErrSignatureInvalid)
	}
}

func TestParse_TamperedSignature(t *testing.T) {
	t.Parallel()
	const secret = "secret123"
	tokenStr, err := token.Generate(freshPayload(), secret)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	parts := strings.Split(tokenStr, ".")
	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("decode signature: %v", err)
	}

	// Flipping any single bit of the signature must invalidate the token.
	for byteIdx := range sig {
		for bit := 0; bit < 8; bit++ {
			mutated := make([]byte, len(sig))
			copy(mutated, sig)
			mutated[byteIdx] ^= 1 << bit

			forged := parts[0] + "." + base64.RawURLEncoding.EncodeToString(mutated)
			if _, err := token.Parse[testPayload](forged, secret, time.Hour); !errors.Is(err, token.ErrSignatureInvalid) {
				t.Fatalf("Parse() accepted token with bit %d of byte %d flipped", bit, byteIdx)
			}
		}
	}
}

func TestParse_TamperedPayload(t *testing.T) {
	t.Parallel()
	const secret = "secret123"
	tokenStr, err := token.Generate(freshPayload(), secret)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	other, err := token.Generate(testPayload{ID: 999, Name: "attacker", IAT: time.Now().UnixMilli()}, secret)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// Payload from one token with the signature of another.
	spliced := strings.Split(other, ".")[0] + "." + strings.Split(tokenStr, ".")[1]
	if _, err := token.Parse[testPayload](spliced, secret, time.Hour); !errors.Is(err, token.ErrSignatureInvalid) {
		t.Errorf("Parse() error = %v, want %v", err, token.ErrSignatureInvalid)
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		token string
	}{
		{name: "no separator", token: "invalid"},
		{name: "empty string", token: ""},
		{name: "too many parts", token: "a.b.c"},
		{name: "invalid base64 signature", token: "eyJpZCI6MX0.!@#$"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := token.Parse[testPayload](tt.token, "secret123", time.Hour)
			if !errors.Is(err, token.ErrInvalidToken) {
				t.Errorf("Parse() error = %v, want %v", err, token.ErrInvalidToken)
			}
		})
	}
}

func TestParse_FutureIssuedAt(t *testing.T) {
	t.Parallel()
	payload := testPayload{ID: 1, IAT: time.Now().Add(time.Hour).UnixMilli()}
	tokenStr, err := token.Generate(payload, "secret123")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := token.Parse[testPayload](tokenStr, "secret123", time.Hour); !errors.Is(err, token.ErrInvalidToken) {
		t.Errorf("Parse() error = %v, want %v", err, token.ErrInvalidToken)
	}
}

func TestParse_MissingIssuedAt(t *testing.T) {
	t.Parallel()
	payload := testPayload{ID: 1, Name: "no iat"}
	tokenStr, err := token.Generate(payload, "secret123")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := token.Parse[testPayload](tokenStr, "secret123", time.Hour); !errors.Is(err, token.ErrInvalidToken) {
		t.Errorf("Parse() error = %v, want %v", err, token.ErrInvalidToken)
	}
}

func TestSignVerify(t *testing.T) {
	t.Parallel()
	data := []byte("payload bytes")
	sig := token.Sign(data, "secret")

	if !token.Verify(data, sig, "secret") {
		t.Error("Verify() = false for valid signature")
	}
	if token.Verify(data, sig, "other-secret") {
		t.Error("Verify() = true for wrong secret")
	}
	if token.Verify(data, sig[:len(sig)-1], "secret") {
		t.Error("Verify() = true for truncated signature")
	}
	if token.Verify([]byte("other bytes"), sig, "secret") {
		t.Error("Verify() = true for different data")
	}
}
