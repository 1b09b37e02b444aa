// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/onda-planner/onda-sync/internal/app"
	"github.com/onda-planner/onda-sync/internal/logger"
	"github.com/onda-planner/onda-sync/internal/utils"
	"github.com/onda-planner/onda-sync/models"
)

func (h *Handler) pull(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerKey, found := utils.GetOwnerKeyFromContext(ctx)
	if !found {
		log.Err(ErrNoOwnerKey).Str("func", "*Handler.pull").Send()
		utils.WriteError(w, app.MsgInvalidSecretKey, http.StatusUnauthorized)
		return
	}

	var req models.PullRequest
	if status, err := decodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.pull").Msg("invalid request body")
		utils.WriteError(w, messageFromStatus(status), status)
		return
	}

	resp, err := h.services.DatasetService.Pull(ctx, ownerKey, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.pull").Msg("error pulling dataset")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) push(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerKey, found := utils.GetOwnerKeyFromContext(ctx)
	if !found {
		log.Err(ErrNoOwnerKey).Str("func", "*Handler.push").Send()
		utils.WriteError(w, app.MsgInvalidSecretKey, http.StatusUnauthorized)
		return
	}

	var req models.PushRequest
	if status, err := decodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.push").Msg("invalid request body")
		utils.WriteError(w, messageFromStatus(status), status)
		return
	}

	resp, err := h.services.DatasetService.Push(ctx, ownerKey, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.push").Msg("error pushing dataset")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) getData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerKey, found := utils.GetOwnerKeyFromContext(ctx)
	if !found {
		log.Err(ErrNoOwnerKey).Str("func", "*Handler.getData").Send()
		utils.WriteError(w, app.MsgInvalidSecretKey, http.StatusUnauthorized)
		return
	}

	resp, err := h.services.DatasetService.Get(ctx, ownerKey)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getData").Msg("error getting dataset")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) deleteData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerKey, found := utils.GetOwnerKeyFromContext(ctx)
	if !found {
		log.Err(ErrNoOwnerKey).Str("func", "*Handler.deleteData").Send()
		utils.WriteError(w, app.MsgInvalidSecretKey, http.StatusUnauthorized)
		return
	}

	resp, err := h.services.DatasetService.Delete(ctx, ownerKey)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteData").Msg("error deleting dataset")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// decodeJSON decodes the request body into v. On failure it returns the
// status the handler should answer with.
func decodeJSON(r *http.Request, v any) (int, error) {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return http.StatusOK, nil
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge, err
	}
	return http.StatusBadRequest, err
}
