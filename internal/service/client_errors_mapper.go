// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-test-prep/internal/adapter"
	"github.com/MKhiriev/go-test-prep/internal/app"
	"github.com/MKhiriev/go-test-prep/internal/validators"
)

// mapAdapterError translates the adapter's transport error into an app error.
// The adapter sentinel stays in the chain so the message mapper can pick the
// right text.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *app.Error
	if errors.As(err, &appErr) {
		return err
	}

	switch {
	case errors.Is(err, adapter.ErrUnavailable),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, adapter.ErrInvalidAddress):
		return app.New(app.KindNetwork, app.WithCause(err))
	default:
		return app.New(app.KindServer, app.WithCause(err))
	}
}

// mapStorageError wraps a local persistence failure.
func mapStorageError(err error) error {
	if err == nil {
		return nil
	}
	return app.New(app.KindStorage, app.WithCause(err))
}

// validateInput runs v against value and turns the first failing field into
// a validation error carrying its message.
func validateInput(ctx context.Context, v validators.Validator, value any, fields ...string) error {
	err := v.Validate(ctx, value, fields...)
	if err == nil {
		return nil
	}

	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		return app.New(app.KindValidation, app.WithMessage(fieldErr.Message), app.WithCause(err))
	}
	return app.New(app.KindValidation, app.WithMessage(app.MsgBadRequest), app.WithCause(err))
}

// isOffline reports whether err means the server could not be reached.
func isOffline(err error) bool {
	return app.IsKind(err, app.KindNetwork)
}
