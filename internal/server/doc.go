// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the sync server's HTTP API and gRPC health endpoint.
//
// Both transports share one lifecycle: they start together, a termination
// signal or the first failing transport stops all of them, and shutdown
// drains in-flight requests for at most [ShutdownTimeout].
package server
