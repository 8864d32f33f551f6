package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMapGRPCError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"invalid argument", status.Error(codes.InvalidArgument, "x"), ErrBadRequest},
		{"unauthenticated", status.Error(codes.Unauthenticated, "x"), ErrUnauthorized},
		{"permission denied", status.Error(codes.PermissionDenied, "x"), ErrForbidden},
		{"not found", status.Error(codes.NotFound, "x"), ErrNotFound},
		{"already exists", status.Error(codes.AlreadyExists, "x"), ErrConflict},
		{"unavailable", status.Error(codes.Unavailable, "x"), ErrUnavailable},
		{"deadline", status.Error(codes.DeadlineExceeded, "x"), context.DeadlineExceeded},
		{"internal", status.Error(codes.Internal, "x"), ErrInternalServerError},
		{"non status error", errors.New("dial failed"), ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapGRPCError(tt.err), tt.want)
		})
	}

	assert.NoError(t, mapGRPCError(nil))
}

func TestJSONCodec_EmptyPayload(t *testing.T) {
	var v struct{ A int }
	assert.NoError(t, jsonCodec{}.Unmarshal(nil, &v))
	assert.Equal(t, "json", jsonCodec{}.Name())
}
