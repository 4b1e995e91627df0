package sanitizer

import (
	"regexp"
	"strings"
)

var dotRegex = regexp.MustCompile(`\.{2,}`)

// NormalizeEmail lowercases and trims an email address so lookups and
// uniqueness checks are case-insensitive. Consecutive dots in the local part
// are consolidated; invalid shapes are returned as-is for the validator to
// reject.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	email = strings.ToLower(email)

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	local := parts[0]
	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + parts[1]
}

// TrimText collapses surrounding whitespace on free-form user input.
func TrimText(s string) string {
	return strings.TrimSpace(s)
}
