package utils

import (
	"regexp"
	"strings"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// IsValidEmail reports whether the address looks like local@domain.tld
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// NormalizeEmail lower-cases and trims an e-mail address. Every e-mail is
// normalized this way before comparison and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone strips everything but digits from a phone number
func NormalizePhone(phone string) string {
	return nonDigitPattern.ReplaceAllString(phone, "")
}

// IsValidPhone reports whether the number has 10 to 15 digits once
// non-digits are stripped
func IsValidPhone(phone string) bool {
	digits := NormalizePhone(phone)
	return len(digits) >= 10 && len(digits) <= 15
}

// IsValidString reports whether the text has at least minLength characters
// after trimming whitespace
func IsValidString(text string, minLength int) bool {
	return len(strings.TrimSpace(text)) >= minLength
}
