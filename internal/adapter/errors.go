// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrInvalidServerURL    = errors.New("invalid server url")
	ErrServerUnreachable   = errors.New("server unreachable")
	ErrDecodingResponse    = errors.New("cannot decode server response")
	ErrEncodingRequest     = errors.New("cannot encode request")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrRequestTooLarge     = errors.New("request too large")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)
