// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onda-planner/onda-sync/internal/logger"
	"github.com/onda-planner/onda-sync/internal/utils"
)

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name       string
		incoming   string
		wantEchoed bool
	}{
		{name: "generated when missing", incoming: "", wantEchoed: false},
		{name: "echoed when present", incoming: "trace-123", wantEchoed: true},
		{name: "replaced when oversized", incoming: strings.Repeat("a", maxTraceIDLength+1), wantEchoed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}

			var fromContext string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fromContext, _ = utils.GetTraceIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(TraceIDHeader, tt.incoming)
			}
			rr := serve(h.withTraceID(next), req)

			got := rr.Header().Get(TraceIDHeader)
			require.NotEmpty(t, got)
			assert.Equal(t, got, fromContext)
			if tt.wantEchoed {
				assert.Equal(t, tt.incoming, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	seen := make(map[string]struct{})
	for range 50 {
		rr := serve(h.withTraceID(next), httptest.NewRequest(http.MethodGet, "/", nil))
		seen[rr.Header().Get(TraceIDHeader)] = struct{}{}
	}

	assert.Len(t, seen, 50)
}
