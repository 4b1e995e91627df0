package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leadvane/leadvane/pkg/sanitizer"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases", input: "User@Example.COM", want: "user@example.com"},
		{name: "trims whitespace", input: "  user@example.com ", want: "user@example.com"},
		{name: "consolidates dots", input: "first..last@example.com", want: "first.last@example.com"},
		{name: "strips edge dots", input: ".user.@example.com", want: "user@example.com"},
		{name: "invalid shape unchanged", input: "not-an-email", want: "not-an-email"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.NormalizeEmail(tt.input))
		})
	}
}

func TestTrimText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", sanitizer.TrimText("  hello\n"))
}
