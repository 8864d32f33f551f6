package app

import (
	"errors"
	"fmt"
)

// Kind classifies an [Error].
type Kind int

const (
	// KindValidation is a client-side input error found before any network call.
	KindValidation Kind = iota + 1
	// KindNetwork is a transport failure or timeout.
	KindNetwork
	// KindServer is a non-success reply from the server.
	KindServer
	// KindStorage is a local read or write failure.
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNetwork:
		return "network"
	case KindServer:
		return "server"
	case KindStorage:
		return "storage"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a classified application error. Message is safe to show to the
// user; the cause is kept for logs and errors.Is checks.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

// Option configures an [Error] built by [New].
type Option func(*Error)

// WithMessage sets the user-facing message.
func WithMessage(msg string) Option {
	return func(e *Error) {
		e.Message = msg
	}
}

// WithCause attaches the underlying error.
func WithCause(err error) Option {
	return func(e *Error) {
		e.cause = err
	}
}

func New(kind Kind, opts ...Option) *Error {
	e := &Error{Kind: kind}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validation is shorthand for a validation error with msg.
func Validation(msg string) *Error {
	return New(KindValidation, WithMessage(msg))
}

func (e *Error) Error() string {
	switch {
	case e.cause != nil && e.Message != "":
		return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Message, e.cause)
	case e.cause != nil:
		return fmt.Sprintf("%s error: %v", e.Kind, e.cause)
	case e.Message != "":
		return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
	default:
		return e.Kind.String() + " error"
	}
}

func (e *Error) Unwrap() error {
	return e.cause
}

// IsKind reports whether err is an [Error] of kind k anywhere in its chain.
func IsKind(err error, k Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == k
}
