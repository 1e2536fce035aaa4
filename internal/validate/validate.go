// Package validate implements the input rules for institutional accounts.
// The same rules apply on the server (authoritative) and in the CLI
// (fast feedback before a round trip).
package validate

import (
	"regexp"
	"strings"
)

var (
	emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	tenDigits  = regexp.MustCompile(`^[0-9]{10}$`)

	upperChar   = regexp.MustCompile(`[A-Z]`)
	digitChar   = regexp.MustCompile(`[0-9]`)
	specialChar = regexp.MustCompile(`[!@#$%^&*]`)
)

// InstitutionalEmail reports whether email is well formed and belongs to the
// given institutional domain (e.g. "litoral.edu.co").
func InstitutionalEmail(email, domain string) bool {
	return emailShape.MatchString(email) &&
		strings.HasSuffix(email, "@"+domain)
}

// Phone reports whether phone is exactly 10 digits.
func Phone(phone string) bool {
	return tenDigits.MatchString(phone)
}

// InstitutionalID reports whether id is exactly 10 digits.
func InstitutionalID(id string) bool {
	return tenDigits.MatchString(id)
}

// Name reports whether a first or last name has the minimum length.
func Name(name string) bool {
	return len([]rune(name)) >= 2
}

// Password reports whether password satisfies the policy: at least 8
// characters, one uppercase letter, one digit, and one of !@#$%^&*.
func Password(password string) bool {
	return len(password) >= 8 &&
		upperChar.MatchString(password) &&
		digitChar.MatchString(password) &&
		specialChar.MatchString(password)
}

// SharePermission reports whether p is a recognized share permission.
func SharePermission(p string) bool {
	return p == "view" || p == "edit"
}
