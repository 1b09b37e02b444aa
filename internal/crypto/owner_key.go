// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/argon2"
)

// DefaultOwnerKeyCacheSize bounds the number of memoized derivations.
const DefaultOwnerKeyCacheSize = 1024

// ownerKeyDeriver is the argon2id implementation of [OwnerKeyDeriver].
// Derivations are memoized in an LRU keyed by a digest of the secret, so
// the raw secret is never retained.
type ownerKeyDeriver struct {
	salt []byte

	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	cache *lru.Cache[string, string]
}

// NewOwnerKeyDeriver constructs an [OwnerKeyDeriver] using Argon2id with the
// OWASP minimum parameters (2 iterations, 19 MiB, 1 thread, 32-byte key).
// Every request is authenticated by derivation, so the cache keeps the
// per-request cost at a hash lookup after the first call.
func NewOwnerKeyDeriver(salt string, cacheSize int) (OwnerKeyDeriver, error) {
	if salt == "" {
		return nil, ErrEmptySalt
	}
	if cacheSize <= 0 {
		cacheSize = DefaultOwnerKeyCacheSize
	}

	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("error creating owner key cache: %w", err)
	}

	return &ownerKeyDeriver{
		salt:         []byte(salt),
		argonTime:    2,
		argonMemory:  19 * 1024,
		argonThreads: 1,
		argonKeyLen:  32,
		cache:        cache,
	}, nil
}

// DeriveOwnerKey implements [OwnerKeyDeriver].
func (d *ownerKeyDeriver) DeriveOwnerKey(secretKey string) string {
	cacheKey := ContentHash([]byte(secretKey))
	if ownerKey, ok := d.cache.Get(cacheKey); ok {
		return ownerKey
	}

	ownerKey := hex.EncodeToString(argon2.IDKey(
		[]byte(secretKey),
		d.salt,
		d.argonTime,
		d.argonMemory,
		d.argonThreads,
		d.argonKeyLen,
	))
	d.cache.Add(cacheKey, ownerKey)

	return ownerKey
}
