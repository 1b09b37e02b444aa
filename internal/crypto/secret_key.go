// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"

	"github.com/onda-planner/onda-sync/models"
)

const secretKeyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateSecretKey returns a random alphanumeric secret key of
// [models.GeneratedSecretKeyLength] characters.
func GenerateSecretKey() (string, error) {
	return generateSecretKey(models.GeneratedSecretKeyLength)
}

func generateSecretKey(length int) (string, error) {
	// bytes >= limit are rejected so every symbol is equally likely
	const limit = 256 - 256%len(secretKeyAlphabet)

	key := make([]byte, 0, length)
	buf := make([]byte, length*2)
	for len(key) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("error reading random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			key = append(key, secretKeyAlphabet[int(b)%len(secretKeyAlphabet)])
			if len(key) == length {
				break
			}
		}
	}

	return string(key), nil
}
