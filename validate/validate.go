// Package validate implements the purely local form checks performed
// before any network call: email shape, registration domain allow-list,
// password strength scoring, and phone number shape.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	// ErrInvalidEmail rejects strings that are not local@domain.tld.
	ErrInvalidEmail = errors.New("enter a valid email address")

	// ErrInvalidPhone rejects strings that are not a plausible
	// international phone number.
	ErrInvalidPhone = errors.New("enter a valid phone number")
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{7,14}$`)
)

// AllowedDomains lists the email domains accepted at registration.
// Login has no domain restriction.
var AllowedDomains = []string{"gmail.com", "yahoo.com", "charusat.edu.in", "charusat.ac.in"}

// Email checks the local@domain.tld shape.
func Email(s string) error {
	if !emailPattern.MatchString(s) {
		return ErrInvalidEmail
	}
	return nil
}

// RegistrationEmail checks shape plus the domain allow-list. Any other
// domain is rejected before the network call.
func RegistrationEmail(s string) error {
	if err := Email(s); err != nil {
		return err
	}
	domain := s[strings.LastIndex(s, "@")+1:]
	for _, allowed := range AllowedDomains {
		if strings.EqualFold(domain, allowed) {
			return nil
		}
	}
	return fmt.Errorf("please register with a valid domain: %s", strings.Join(AllowedDomains, ", "))
}

// Phone checks for a plausible E.164-style number.
func Phone(s string) error {
	if !phonePattern.MatchString(s) {
		return ErrInvalidPhone
	}
	return nil
}

// PasswordStrength scores a password 0-4, one point for each satisfied
// criterion: at least 8 characters, mixed case, a digit, a symbol. The
// score drives a visual indicator only and never blocks submission.
func PasswordStrength(password string) int {
	score := 0
	if len(password) >= 8 {
		score++
	}
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	if lower && upper {
		score++
	}
	if digit {
		score++
	}
	if symbol {
		score++
	}
	return score
}

// StrengthLabel names a strength score for display.
func StrengthLabel(score int) string {
	switch {
	case score <= 1:
		return "weak"
	case score == 2:
		return "fair"
	case score == 3:
		return "good"
	default:
		return "strong"
	}
}
