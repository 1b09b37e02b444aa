// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"

	"github.com/onda-planner/onda-sync/internal/app"
	"github.com/onda-planner/onda-sync/internal/crypto"
	"github.com/onda-planner/onda-sync/internal/logger"
	"github.com/onda-planner/onda-sync/internal/utils"
	"github.com/onda-planner/onda-sync/models"
)

// withRateLimit limits requests per secret key, or per remote address for
// requests without one. Limited requests get 429 with a retryAfter hint in
// seconds.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return stdlib.NewMiddleware(h.limiter,
		stdlib.WithKeyGetter(h.rateLimitKey),
		stdlib.WithLimitReachedHandler(func(w http.ResponseWriter, r *http.Request) {
			retryAfter := retryAfterSeconds(w.Header().Get("X-RateLimit-Reset"), time.Now())
			logger.FromRequest(r).Warn().
				Str("func", "*Handler.withRateLimit").
				Int("retry_after", retryAfter).
				Msg("rate limit reached")

			utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgTooManyRequests, RetryAfter: retryAfter}, http.StatusTooManyRequests)
		}),
		stdlib.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.withRateLimit").Msg("rate limiter failed")
			utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		}),
	).Handler(next)
}

// rateLimitKey never returns the raw secret: the limiter store only sees a
// digest of it.
func (h *Handler) rateLimitKey(r *http.Request) string {
	if secretKey := r.Header.Get(SecretKeyHeader); secretKey != "" {
		return "key:" + crypto.ContentHash([]byte(secretKey))
	}
	return "ip:" + h.limiter.GetIPKey(r)
}

func retryAfterSeconds(resetHeader string, now time.Time) int {
	reset, err := strconv.ParseInt(resetHeader, 10, 64)
	if err != nil {
		return 1
	}
	seconds := reset - now.Unix()
	if seconds < 1 {
		return 1
	}
	return int(seconds)
}
