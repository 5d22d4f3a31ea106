// Package validation holds the field-level checks applied during sign-up and
// password changes. The rules are the subsystem's public contract, so they are
// kept as plain functions with no dependencies and tested exhaustively.
package validation

import (
	"strings"
	"time"
	"unicode"
)

// passwordSpecials is the set of characters counted as special for password
// strength purposes.
const passwordSpecials = "#@$%&*!^"

// IsEmpty reports whether s has no characters at all. Whitespace counts as
// content; the required-field rule only rejects values that are entirely
// absent.
func IsEmpty(s string) bool {
	return s == ""
}

// IsValidContactNumber reports whether s is exactly ten ASCII digits.
func IsValidContactNumber(s string) bool {
	if len(s) != 10 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsValidEmail reports whether s has the accepted mailbox shape: an
// alphanumeric local part, a single '@', and a domain whose final label is
// separated by exactly one '.'. Multi-dot domains and dots adjacent to the
// separator are rejected, so "a.b@c.com" is invalid while "ab@cd.ef" is not.
func IsValidEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 || strings.IndexByte(s[at+1:], '@') >= 0 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	dot := strings.LastIndexByte(domain, '.')
	if dot < 0 {
		return false
	}
	label, final := domain[:dot], domain[dot+1:]
	return isAlphanumeric(local) && isAlphanumeric(label) && isAlphanumeric(final)
}

func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}

// IsStrongPassword reports whether s satisfies the password policy: at least
// eight characters, with at least one uppercase letter, one digit and one
// special character from "#@$%&*!^".
func IsStrongPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var upper, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return upper && digit && special
}

// HasSessionExpired reports whether a session with the given expiry timestamp
// is expired at now. The boundary instant itself counts as expired.
func HasSessionExpired(expiresAt, now time.Time) bool {
	return !now.Before(expiresAt)
}
