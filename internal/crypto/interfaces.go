// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the key material helpers of the sync system: the
// derivation that turns a client secret key into the server-side owner key,
// content hashing of stored datasets and secret key generation.
package crypto

// OwnerKeyDeriver maps a client secret key onto the identifier under which
// the server stores that client's dataset. The mapping is deterministic for a
// given salt and one-way: the raw secret is never persisted.
type OwnerKeyDeriver interface {
	// DeriveOwnerKey returns the hex-encoded owner key for secretKey.
	DeriveOwnerKey(secretKey string) string
}
