// Package validate checks submitted credentials before any storage or
// hashing work happens. All checks are pure functions of their inputs.
package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Reason classifies why a credential check failed.
type Reason int

const (
	OK Reason = iota
	MissingField
	InvalidEmail
	WeakPassword
)

// Message returns the user-facing flash text for the reason.
func (r Reason) Message() string {
	switch r {
	case MissingField:
		return "Please provide an email and password"
	case InvalidEmail:
		return "Please provide a valid email"
	case WeakPassword:
		return "Your password should be 6 characters or more, and include a mix of uppercase and lowercase characters, or numbers"
	default:
		return ""
	}
}

var v = validator.New()

// CheckLogin validates presence and email format. The email is trimmed
// before checking; the returned string is the trimmed email.
func CheckLogin(email, password string) (string, Reason) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return email, MissingField
	}
	if err := v.Var(email, "email"); err != nil {
		return email, InvalidEmail
	}
	return email, OK
}

// CheckSignup validates like CheckLogin and additionally requires a
// password of at least 6 characters containing two of {lowercase,
// uppercase, digit}.
func CheckSignup(email, password string) (string, Reason) {
	email, reason := CheckLogin(email, password)
	if reason != OK {
		return email, reason
	}
	if !strongPassword(password) {
		return email, WeakPassword
	}
	return email, OK
}

func strongPassword(password string) bool {
	if len(password) < 6 {
		return false
	}
	var lower, upper, digit bool
	for _, c := range password {
		switch {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= '0' && c <= '9':
			digit = true
		}
	}
	classes := 0
	for _, ok := range []bool{lower, upper, digit} {
		if ok {
			classes++
		}
	}
	return classes >= 2
}
