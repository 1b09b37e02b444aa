// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/onda-planner/onda-sync/internal/utils"
)

// health always answers 200. A failing database shows up as "degraded".
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.HealthService.Check(r.Context()), http.StatusOK)
}
