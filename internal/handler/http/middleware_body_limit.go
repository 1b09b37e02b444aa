// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/onda-planner/onda-sync/internal/app"
	"github.com/onda-planner/onda-sync/internal/logger"
	"github.com/onda-planner/onda-sync/internal/utils"
)

// withBodyLimit rejects bodies above maxBodyBytes. Declared lengths are
// checked up front, streamed bodies fail on read with [http.MaxBytesError].
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.maxBodyBytes <= 0 || r.Body == nil {
			next.ServeHTTP(w, r)
			return
		}

		if r.ContentLength > h.maxBodyBytes {
			logger.FromRequest(r).Warn().
				Str("func", "*Handler.withBodyLimit").
				Int64("content_length", r.ContentLength).
				Msg("request body too large")
			utils.WriteError(w, app.MsgRequestTooLarge, http.StatusRequestEntityTooLarge)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}
