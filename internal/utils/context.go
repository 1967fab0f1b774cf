// Package utils provides general-purpose helper utilities used across
// different parts of the client: context keys, the HTTP client constructor,
// identifier generation and JWT inspection.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the key under which a caller-chosen request id is stored.
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying id. The gateway sends it as the
// X-Request-ID header instead of generating a fresh one.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// GetRequestIDFromContext retrieves the request id from the context.
//
// Returns ok == false when the value is missing, empty, or has an unexpected
// type.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}
