// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasher_MatchesDirectHMAC(t *testing.T) {
	h := NewHasher("secret-key")
	data := []byte(`{"data":{"columns":[]},"clientVersion":3}`)

	mac := hmac.New(sha256.New, []byte("secret-key"))
	mac.Write(data)

	assert.Equal(t, mac.Sum(nil), h.Sum(data))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), h.HexSum(data))
}

func TestHasher_Deterministic(t *testing.T) {
	h := NewHasher("k")
	assert.Equal(t, h.HexSum([]byte("payload")), h.HexSum([]byte("payload")))
	assert.NotEqual(t, h.HexSum([]byte("payload")), h.HexSum([]byte("payload2")))
}

func TestHasher_DifferentKeys(t *testing.T) {
	data := []byte("payload")
	assert.NotEqual(t, NewHasher("a").HexSum(data), NewHasher("b").HexSum(data))
}

func TestHasher_Verify(t *testing.T) {
	h := NewHasher("k")
	data := []byte("payload")

	assert.True(t, h.Verify(data, h.HexSum(data)))
	assert.False(t, h.Verify(data, h.HexSum([]byte("other"))))
	assert.False(t, h.Verify(data, "not-hex"))
}

func TestHasher_ConcurrentUse(t *testing.T) {
	h := NewHasher("k")
	want := h.HexSum([]byte("payload"))

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if h.HexSum([]byte("payload")) != want {
					t.Error("digest mismatch under concurrency")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestHashString(t *testing.T) {
	got := HashString("payload", "k")
	require.Len(t, got, 64)
	assert.Equal(t, NewHasher("k").HexSum([]byte("payload")), got)
}
