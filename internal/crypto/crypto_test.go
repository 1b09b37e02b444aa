// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onda-planner/onda-sync/models"
)

// ── owner key ─────────────────────────────────────────────────────────────────

func TestNewOwnerKeyDeriver_EmptySalt(t *testing.T) {
	_, err := NewOwnerKeyDeriver("", 0)
	assert.ErrorIs(t, err, ErrEmptySalt)
}

func TestDeriveOwnerKey_DeterministicForSameSecret(t *testing.T) {
	d, err := NewOwnerKeyDeriver("test-salt", 8)
	require.NoError(t, err)

	k1 := d.DeriveOwnerKey("my-secret-key")
	k2 := d.DeriveOwnerKey("my-secret-key")

	assert.Len(t, k1, 64)
	assert.Equal(t, k1, k2)
	assert.NotContains(t, k1, "my-secret-key")
}

func TestDeriveOwnerKey_CacheDoesNotChangeResult(t *testing.T) {
	cached, err := NewOwnerKeyDeriver("test-salt", 8)
	require.NoError(t, err)
	fresh, err := NewOwnerKeyDeriver("test-salt", 8)
	require.NoError(t, err)

	first := cached.DeriveOwnerKey("secret-a")
	assert.Equal(t, first, cached.DeriveOwnerKey("secret-a"))
	assert.Equal(t, first, fresh.DeriveOwnerKey("secret-a"))
}

func TestDeriveOwnerKey_SeparatesSecretsAndSalts(t *testing.T) {
	a, err := NewOwnerKeyDeriver("salt-a", 8)
	require.NoError(t, err)
	b, err := NewOwnerKeyDeriver("salt-b", 8)
	require.NoError(t, err)

	assert.NotEqual(t, a.DeriveOwnerKey("secret-1"), a.DeriveOwnerKey("secret-2"))
	assert.NotEqual(t, a.DeriveOwnerKey("secret-1"), b.DeriveOwnerKey("secret-1"))
}

// ── content hash ──────────────────────────────────────────────────────────────

func TestContentHash(t *testing.T) {
	h := ContentHash([]byte(`{"columns":[]}`))
	assert.Len(t, h, 64)
	assert.Equal(t, h, ContentHash([]byte(`{"columns":[]}`)))
	assert.NotEqual(t, h, ContentHash([]byte(`{"columns":[{}]}`)))
}

// ── secret key ────────────────────────────────────────────────────────────────

func TestGenerateSecretKey_LengthAndAlphabet(t *testing.T) {
	key, err := GenerateSecretKey()
	require.NoError(t, err)

	assert.Len(t, key, models.GeneratedSecretKeyLength)
	for _, r := range key {
		assert.True(t, strings.ContainsRune(secretKeyAlphabet, r), "unexpected rune %q", r)
	}
	assert.GreaterOrEqual(t, len(key), models.MinSecretKeyLength)
}

func TestGenerateSecretKey_Randomness(t *testing.T) {
	seen := make(map[string]struct{})
	for range 50 {
		key, err := GenerateSecretKey()
		require.NoError(t, err)
		_, dup := seen[key]
		require.False(t, dup, "duplicate key generated")
		seen[key] = struct{}{}
	}
}
