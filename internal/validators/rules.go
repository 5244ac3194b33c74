// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"regexp"

	"github.com/Tarekazabou/health-app/internal/app"
)

const minPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail reports whether email has an acceptable address format.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// PasswordProblem returns the message for the first strength rule the
// password violates, or an empty string for a strong password.
//
// Rules, in order: at least 8 characters, one ASCII uppercase letter, one
// ASCII lowercase letter, one digit.
func PasswordProblem(password string) string {
	if len([]rune(password)) < minPasswordLength {
		return app.MsgPasswordTooShort
	}

	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}

	switch {
	case !upper:
		return app.MsgPasswordNoUppercase
	case !lower:
		return app.MsgPasswordNoLowercase
	case !digit:
		return app.MsgPasswordNoDigit
	}
	return ""
}
