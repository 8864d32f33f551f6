package validators

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-test-prep/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldEmail                = "email"
	FieldPassword             = "password"
	FieldPasswordConfirmation = "password_confirmation"
	FieldUsername             = "username"
	FieldArticlesPerDay       = "articles_per_day"
	FieldDirections           = "directions"
	FieldDeliveryFrequency    = "delivery_frequency"
)

// MaxArticlesPerDay bounds UserPreferences.ArticlesPerDay.
const MaxArticlesPerDay = 20

type clientValidator struct{}

// NewClientValidator returns the [Validator] for payloads the client sends:
// models.Credentials, models.Registration and models.UserPreferences.
func NewClientValidator() Validator {
	return &clientValidator{}
}

func (v *clientValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch payload := value.(type) {
	case models.Credentials:
		return v.validateCredentials(payload, fields...)
	case *models.Credentials:
		return v.validateCredentials(*payload, fields...)
	case models.Registration:
		return v.validateRegistration(payload, fields...)
	case *models.Registration:
		return v.validateRegistration(*payload, fields...)
	case models.UserPreferences:
		return v.validatePreferences(payload, fields...)
	case *models.UserPreferences:
		return v.validatePreferences(*payload, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

// Login only checks that a password was typed; strength rules apply at
// registration.
func (v *clientValidator) validateCredentials(c models.Credentials, fields ...string) error {
	checks := map[string]func() error{
		FieldEmail: func() error { return fieldError(FieldEmail, ValidateEmail(c.Email), ErrInvalidEmail) },
		FieldPassword: func() error {
			if c.Password == "" {
				return fieldError(FieldPassword, invalid(MsgPasswordRequired), ErrWeakPassword)
			}
			return nil
		},
	}
	return runChecks(checks, []string{FieldEmail, FieldPassword}, fields)
}

func (v *clientValidator) validateRegistration(r models.Registration, fields ...string) error {
	checks := map[string]func() error{
		FieldUsername: func() error { return fieldError(FieldUsername, ValidateUsername(r.Username), ErrInvalidUsername) },
		FieldEmail:    func() error { return fieldError(FieldEmail, ValidateEmail(r.Email), ErrInvalidEmail) },
		FieldPassword: func() error {
			return fieldError(FieldPassword, ValidateStrongPassword(r.Password), ErrWeakPassword)
		},
		FieldPasswordConfirmation: func() error {
			return fieldError(FieldPasswordConfirmation,
				ValidatePasswordConfirmation(r.Password, r.PasswordConfirmation), ErrPasswordMismatch)
		},
	}
	return runChecks(checks, []string{FieldUsername, FieldEmail, FieldPassword, FieldPasswordConfirmation}, fields)
}

func (v *clientValidator) validatePreferences(p models.UserPreferences, fields ...string) error {
	checks := map[string]func() error{
		FieldArticlesPerDay: func() error {
			if err := validate.Var(p.ArticlesPerDay, fmt.Sprintf("min=1,max=%d", MaxArticlesPerDay)); err != nil {
				return &FieldError{
					Field:   FieldArticlesPerDay,
					Message: fmt.Sprintf("Choose between 1 and %d articles per day", MaxArticlesPerDay),
					err:     ErrInvalidArticlesLimit,
				}
			}
			return nil
		},
		FieldDirections: func() error {
			for _, d := range p.Directions {
				if _, err := models.ParseDirection(string(d)); err != nil {
					return &FieldError{Field: FieldDirections, Message: "Unknown direction", err: ErrInvalidPreferences}
				}
			}
			return nil
		},
		FieldDeliveryFrequency: func() error {
			if _, err := models.ParseDeliveryFrequency(string(p.DeliveryFrequency)); err != nil {
				return &FieldError{Field: FieldDeliveryFrequency, Message: "Choose a delivery frequency", err: ErrInvalidPreferences}
			}
			return nil
		},
	}
	return runChecks(checks, []string{FieldArticlesPerDay, FieldDirections, FieldDeliveryFrequency}, fields)
}

// runChecks runs the requested checks, or all of them in order when fields
// is empty, and returns the first failure.
func runChecks(checks map[string]func() error, order []string, fields []string) error {
	if len(fields) == 0 {
		fields = order
	}
	for _, f := range fields {
		if !slices.Contains(order, f) {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	for _, f := range order {
		if !slices.Contains(fields, f) {
			continue
		}
		if err := checks[f](); err != nil {
			return err
		}
	}
	return nil
}
