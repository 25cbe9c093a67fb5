// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestTraceIDCtxKey(t *testing.T) {
	if TraceIDCtxKey.String() != "traceID" {
		t.Errorf("expected 'traceID', got '%s'", TraceIDCtxKey.String())
	}
}

func TestGetTraceIDFromContext_Success(t *testing.T) {
	ctx := WithTraceID(context.Background(), "0192-abc")

	traceID, ok := GetTraceIDFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if traceID != "0192-abc" {
		t.Errorf("expected traceID=0192-abc, got %s", traceID)
	}
}

func TestGetTraceIDFromContext_Missing(t *testing.T) {
	if _, ok := GetTraceIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetTraceIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, 42)

	if _, ok := GetTraceIDFromContext(ctx); ok {
		t.Error("expected ok=false for non-string value")
	}
}

func TestGetTraceIDFromContext_Empty(t *testing.T) {
	if _, ok := GetTraceIDFromContext(WithTraceID(context.Background(), "")); ok {
		t.Error("expected ok=false for empty trace id")
	}
}
