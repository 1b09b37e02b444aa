// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/onda-planner/onda-sync/internal/app"
	"github.com/onda-planner/onda-sync/internal/logger"
	"github.com/onda-planner/onda-sync/internal/utils"
)

// SecretKeyHeader carries the client's shared secret.
const SecretKeyHeader = "x-secret-key"

// auth is an HTTP middleware that enforces secret-key authentication.
//
// It reads the x-secret-key header, rejects missing keys and keys shorter
// than the configured minimum with 401, and otherwise stores the owner key
// derived from the secret in the request context. Downstream handlers never
// see the raw secret.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		secretKey := r.Header.Get(SecretKeyHeader)
		if secretKey == "" {
			log.Err(ErrEmptySecretKey).Send()
			utils.WriteError(w, app.MsgInvalidSecretKey, http.StatusUnauthorized)
			return
		}
		if len(secretKey) < h.minSecretKeyLength {
			log.Err(ErrShortSecretKey).Int("length", len(secretKey)).Send()
			utils.WriteError(w, app.MsgInvalidSecretKey, http.StatusUnauthorized)
			return
		}

		ctx := utils.WithOwnerKey(r.Context(), h.ownerKeys.DeriveOwnerKey(secretKey))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
