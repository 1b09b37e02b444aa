// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the sync server
// and client: type-safe context keys, HMAC hashing, JSON response writing,
// the HTTP client wrapper and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// OwnerKeyCtxKey is the key under which the secret-key auth middleware stores
// the derived owner key of the current request.
var OwnerKeyCtxKey = contextKey("ownerKey")

// TraceIDCtxKey is the key under which the trace-id middleware stores the
// request trace id.
var TraceIDCtxKey = contextKey("traceID")

// WithOwnerKey returns a copy of ctx carrying ownerKey.
func WithOwnerKey(ctx context.Context, ownerKey string) context.Context {
	return context.WithValue(ctx, OwnerKeyCtxKey, ownerKey)
}

// GetOwnerKeyFromContext retrieves the owner key stored by the auth
// middleware. ok is false when the value is missing, empty or not a string.
func GetOwnerKeyFromContext(ctx context.Context) (string, bool) {
	ownerKey, ok := ctx.Value(OwnerKeyCtxKey).(string)
	return ownerKey, ok && ownerKey != ""
}

// GetTraceIDFromContext retrieves the trace id of the current request.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
