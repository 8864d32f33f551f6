package validators

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 8

const (
	MsgEmailRequired        = "Email is required"
	MsgEmailInvalid         = "Enter a valid email address"
	MsgPasswordRequired     = "Password is required"
	MsgPasswordTooShort     = "Password must be at least 8 characters"
	MsgPasswordNoUpper      = "Password must contain an uppercase letter"
	MsgPasswordNoLower      = "Password must contain a lowercase letter"
	MsgPasswordNoDigit      = "Password must contain a digit"
	MsgPasswordNoSpecial    = "Password must contain a special character"
	MsgPasswordsDoNotMatch  = "Passwords do not match"
	MsgConfirmationRequired = "Confirm your password"
	MsgUsernameRequired     = "Username is required"
	MsgUsernameInvalid      = "Username must be 3 to 32 letters, digits or underscores"
)

// Result is the outcome of a single field rule. ErrorMessage is nil when
// IsValid is true.
type Result struct {
	IsValid      bool
	ErrorMessage *string
}

func valid() Result {
	return Result{IsValid: true}
}

func invalid(msg string) Result {
	return Result{ErrorMessage: &msg}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateEmail checks that email is present and well formed.
func ValidateEmail(email string) Result {
	email = strings.TrimSpace(email)
	if email == "" {
		return invalid(MsgEmailRequired)
	}
	if err := validate.Var(email, "email"); err != nil {
		return invalid(MsgEmailInvalid)
	}
	return valid()
}

// ValidateStrongPassword requires at least MinPasswordLength characters with
// an upper case letter, a lower case letter, a digit and a special
// character. The first broken rule is reported.
func ValidateStrongPassword(password string) Result {
	if password == "" {
		return invalid(MsgPasswordRequired)
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return invalid(MsgPasswordTooShort)
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}

	switch {
	case !upper:
		return invalid(MsgPasswordNoUpper)
	case !lower:
		return invalid(MsgPasswordNoLower)
	case !digit:
		return invalid(MsgPasswordNoDigit)
	case !special:
		return invalid(MsgPasswordNoSpecial)
	}
	return valid()
}

// ValidatePasswordConfirmation checks that confirmation repeats password.
func ValidatePasswordConfirmation(password, confirmation string) Result {
	if confirmation == "" {
		return invalid(MsgConfirmationRequired)
	}
	if password != confirmation {
		return invalid(MsgPasswordsDoNotMatch)
	}
	return valid()
}

// ValidateUsername accepts 3 to 32 ASCII letters, digits or underscores.
func ValidateUsername(username string) Result {
	username = strings.TrimSpace(username)
	if username == "" {
		return invalid(MsgUsernameRequired)
	}
	if err := validate.Var(username, "min=3,max=32"); err != nil {
		return invalid(MsgUsernameInvalid)
	}
	for _, r := range username {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return invalid(MsgUsernameInvalid)
		}
	}
	return valid()
}
