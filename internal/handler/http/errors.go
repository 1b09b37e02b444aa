// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the secret-key auth middleware. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptySecretKey is returned when the request carries no x-secret-key
	// header.
	ErrEmptySecretKey = errors.New("empty `x-secret-key` header")

	// ErrShortSecretKey is returned when x-secret-key is shorter than the
	// configured minimum.
	ErrShortSecretKey = errors.New("`x-secret-key` header is too short")

	// ErrNoOwnerKey is returned by handlers behind the auth middleware when the
	// request context carries no owner key.
	ErrNoOwnerKey = errors.New("no owner key in request context")
)
