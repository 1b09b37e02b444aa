// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/onda-planner/onda-sync/internal/app"
	"github.com/onda-planner/onda-sync/internal/service"
	"github.com/onda-planner/onda-sync/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrNoDataProvided:      http.StatusBadRequest,
	service.ErrOwnerKeyNotFound:    http.StatusUnauthorized,
	service.ErrDatasetNotFound:     http.StatusNotFound,
	service.ErrStorageBusy:         http.StatusServiceUnavailable,
	service.ErrStorageFailure:      http.StatusInternalServerError,
}

var statusMessages = map[int]string{
	http.StatusBadRequest:            app.MsgInvalidDataProvided,
	http.StatusUnauthorized:          app.MsgInvalidSecretKey,
	http.StatusRequestEntityTooLarge: app.MsgRequestTooLarge,
	http.StatusTooManyRequests:       app.MsgTooManyRequests,
	http.StatusInternalServerError:   app.MsgInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromStatus(status int) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return http.StatusText(status)
}

// writeServiceError answers with the status mapped from err. Client errors
// carry the error text, server errors a generic message.
func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status < http.StatusInternalServerError {
		utils.WriteError(w, err.Error(), status)
		return
	}
	utils.WriteError(w, messageFromStatus(status), status)
}
