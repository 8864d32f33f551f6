package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-test-prep/internal/adapter"
	"github.com/MKhiriev/go-test-prep/internal/app"
	"github.com/MKhiriev/go-test-prep/internal/validators"
	"github.com/MKhiriev/go-test-prep/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind app.Kind
	}{
		{name: "unavailable", err: adapter.ErrUnavailable, wantKind: app.KindNetwork},
		{name: "wrapped unavailable", err: fmt.Errorf("get tests: %w", adapter.ErrUnavailable), wantKind: app.KindNetwork},
		{name: "deadline", err: context.DeadlineExceeded, wantKind: app.KindNetwork},
		{name: "bad address", err: adapter.ErrInvalidAddress, wantKind: app.KindNetwork},
		{name: "unauthorized", err: adapter.ErrUnauthorized, wantKind: app.KindServer},
		{name: "internal", err: adapter.ErrInternalServerError, wantKind: app.KindServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.err)
			assert.True(t, app.IsKind(got, tt.wantKind), "kind of %v", got)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestMapAdapterError_KeepsAppError(t *testing.T) {
	original := app.Validation("bad")
	assert.Same(t, original, mapAdapterError(original))
	assert.NoError(t, mapAdapterError(nil))
}

func TestMapStorageError(t *testing.T) {
	assert.NoError(t, mapStorageError(nil))

	got := mapStorageError(assert.AnError)
	assert.True(t, app.IsKind(got, app.KindStorage))
	assert.ErrorIs(t, got, assert.AnError)
}

func TestValidateInput(t *testing.T) {
	v := validators.NewClientValidator()
	ctx := context.Background()

	require.NoError(t, validateInput(ctx, v, models.Credentials{Email: "alice@example.com", Password: "secret"}))

	err := validateInput(ctx, v, models.Credentials{Email: "alice", Password: "secret"})
	require.ErrorIs(t, err, validators.ErrInvalidEmail)
	assert.True(t, app.IsKind(err, app.KindValidation))

	err = validateInput(ctx, v, 42)
	require.ErrorIs(t, err, validators.ErrUnsupportedType)
	assert.Equal(t, app.MsgBadRequest, err.(*app.Error).Message)
}

func TestIsOffline(t *testing.T) {
	assert.True(t, isOffline(mapAdapterError(adapter.ErrUnavailable)))
	assert.False(t, isOffline(mapAdapterError(adapter.ErrConflict)))
	assert.False(t, isOffline(nil))
}
