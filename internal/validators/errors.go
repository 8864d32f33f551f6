package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail         = errors.New("invalid email")
	ErrWeakPassword         = errors.New("weak password")
	ErrPasswordMismatch     = errors.New("password confirmation mismatch")
	ErrInvalidUsername      = errors.New("invalid username")
	ErrInvalidPreferences   = errors.New("invalid preferences")
	ErrInvalidArticlesLimit = errors.New("invalid articles per day")
)

// FieldError reports the first rule a field broke. Message is meant for the
// user; the wrapped sentinel is meant for errors.Is.
type FieldError struct {
	Field   string
	Message string
	err     error
}

func (e *FieldError) Error() string {
	return e.err.Error() + ": " + e.Field + ": " + e.Message
}

func (e *FieldError) Unwrap() error {
	return e.err
}

func fieldError(field string, r Result, sentinel error) error {
	if r.IsValid {
		return nil
	}
	msg := ""
	if r.ErrorMessage != nil {
		msg = *r.ErrorMessage
	}
	return &FieldError{Field: field, Message: msg, err: sentinel}
}
