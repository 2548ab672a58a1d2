package validation

import (
	"regexp"
	"unicode/utf8"
)

const (
	UsernameMinLength = 3
	UsernameMaxLength = 10
	PasswordMinLength = 8
	PasswordMaxLength = 20
)

var (
	upperRegex   = regexp.MustCompile(`[A-Z]`)
	lowerRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex   = regexp.MustCompile(`[0-9]`)
	specialRegex = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// PasswordViolations lists every composition rule password breaks.
func PasswordViolations(password string) []string {
	var out []string
	if n := utf8.RuneCountInString(password); n < PasswordMinLength || n > PasswordMaxLength {
		out = append(out, "Password must be between 8 and 20 characters")
	}
	if !upperRegex.MatchString(password) {
		out = append(out, "Password must contain at least one uppercase letter")
	}
	if !lowerRegex.MatchString(password) {
		out = append(out, "Password must contain at least one lowercase letter")
	}
	if !digitRegex.MatchString(password) {
		out = append(out, "Password must contain at least one number")
	}
	if !specialRegex.MatchString(password) {
		out = append(out, "Password must contain at least one special character")
	}
	return out
}
