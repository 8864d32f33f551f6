// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestRequestIDCtxKey(t *testing.T) {
	if RequestIDCtxKey.String() != "requestID" {
		t.Errorf("expected 'requestID', got '%s'", RequestIDCtxKey.String())
	}
}

func TestGetRequestIDFromContext_Success(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")

	requestID, ok := GetRequestIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if requestID != "req-1" {
		t.Errorf("expected requestID=req-1, got %s", requestID)
	}
}

func TestGetRequestIDFromContext_Missing(t *testing.T) {
	if _, ok := GetRequestIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for missing value")
	}
}

func TestGetRequestIDFromContext_Empty(t *testing.T) {
	if _, ok := GetRequestIDFromContext(WithRequestID(context.Background(), "")); ok {
		t.Error("expected ok=false for empty value")
	}
}

func TestGetRequestIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDCtxKey, 42)

	if _, ok := GetRequestIDFromContext(ctx); ok {
		t.Error("expected ok=false for non-string value")
	}
}
