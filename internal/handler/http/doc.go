// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the sync server.
//
// It exposes route wiring, request handlers, and middleware used by the sync
// API. Cross-cutting concerns such as secret-key authentication, rate
// limiting, request tracing, access logging, response compression, body size
// limits and integrity checks are handled in this package before requests are
// delegated to the service layer.
package http
