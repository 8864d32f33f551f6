package app

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-test-prep/internal/adapter"
	"github.com/MKhiriev/go-test-prep/internal/logger"
)

// MessageMapper turns any error into a single user-facing message and logs
// the raw cause.
type MessageMapper struct {
	logger *logger.Logger
}

func NewMessageMapper(log *logger.Logger) *MessageMapper {
	return &MessageMapper{logger: log}
}

// Map returns the message to show for err. A nil error maps to "". An
// [Error] carrying a message is shown as is; validation errors are not
// logged.
func (m *MessageMapper) Map(ctx context.Context, err error) string {
	if err == nil {
		return ""
	}

	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind == KindValidation && appErr.Message != "" {
		return appErr.Message
	}

	msg := messageFor(err)
	if appErr != nil && appErr.Message != "" {
		msg = appErr.Message
	}
	logger.FromContextOr(ctx, m.logger).Err(err).
		Str("func", "MessageMapper.Map").
		Str("shown", msg).
		Msg("operation failed")

	return msg
}

func messageFor(err error) string {
	switch {
	case errors.Is(err, adapter.ErrUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		return MsgNoConnection
	case errors.Is(err, adapter.ErrUnauthorized):
		return MsgSessionExpired
	case errors.Is(err, adapter.ErrForbidden):
		return MsgAccessDenied
	case errors.Is(err, adapter.ErrNotFound):
		return MsgNotFound
	case errors.Is(err, adapter.ErrConflict):
		return MsgConflict
	case errors.Is(err, adapter.ErrBadRequest):
		return MsgBadRequest
	}

	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind == KindNetwork {
		return MsgNoConnection
	}
	return MsgSomethingWentWrong
}
