package validation

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinEmailLength is the shortest value the submission form accepts
const MinEmailLength = 3

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	codeRegex  = regexp.MustCompile(`^[0-9]{4,12}$`)
)

// IsValidEmail reports whether email is a bare RFC 5322 address with a
// dotted domain. Display names and angle brackets are rejected.
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	return emailRegex.MatchString(email)
}

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// HasMinLength reports whether s holds at least n characters
func HasMinLength(s string, n int) bool {
	return utf8.RuneCountInString(s) >= n
}

// IsValidCode checks that a submitted one-time code is a plain digit string
func IsValidCode(code string) bool {
	return codeRegex.MatchString(code)
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
