// Package utils holds small helpers shared by the phonebook server and
// client: request trace IDs, JSON response writing and the resty client
// wrapper.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so keys never collide with
// string keys of other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the context key of the request trace ID.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace ID stored by [WithTraceID].
// ok is false when ctx carries none.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
