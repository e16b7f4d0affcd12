package validation

import "regexp"

// emailPattern requires a local-part@domain.tld shape: the top-level
// segment must be at least two alphabetic characters.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// IsValidEmail reports whether email has a valid local@domain.tld
// shape. The check is purely syntactic; no DNS or mailbox verification
// is performed.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
