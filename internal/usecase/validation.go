package usecase

import (
	"net/mail"
	"unicode"
	"unicode/utf8"
)

const maxBusinessNameLength = 255

// ValidateBusinessName checks the merchant-facing business name.
// Returns one message per violation.
func ValidateBusinessName(name string) []string {
	var messages []string
	if name == "" {
		messages = append(messages, "business name is required")
		return messages
	}
	if utf8.RuneCountInString(name) > maxBusinessNameLength {
		messages = append(messages, "business name must be at most 255 characters")
	}
	return messages
}

// ValidateEmail checks presence and RFC 5322 format.
func ValidateEmail(email string) []string {
	var messages []string
	if email == "" {
		messages = append(messages, "email is required")
		return messages
	}
	if _, err := mail.ParseAddress(email); err != nil {
		messages = append(messages, "email must be a valid email address")
	}
	return messages
}

// ValidatePassword enforces the registration password policy. Every
// violated rule produces its own message so the client can show all of
// them at once.
func ValidatePassword(password string) []string {
	var messages []string
	if len(password) < 8 {
		messages = append(messages, "password must be at least 8 characters")
	}

	var hasDigit, hasLower, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}

	if !hasDigit {
		messages = append(messages, "password must contain at least one digit")
	}
	if !hasLower {
		messages = append(messages, "password must contain at least one lowercase letter")
	}
	if !hasUpper {
		messages = append(messages, "password must contain at least one uppercase letter")
	}
	return messages
}
