// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/onda-planner/onda-sync/internal/config"
	"github.com/onda-planner/onda-sync/internal/logger"
	"github.com/onda-planner/onda-sync/internal/utils"
	"github.com/onda-planner/onda-sync/models"
)

const (
	// SecretKeyHeader carries the user's sync secret on every authenticated
	// request.
	SecretKeyHeader = "x-secret-key"
	// HashHeader carries the hex HMAC-SHA256 of a signed request body.
	HashHeader = "HashSHA256"

	healthPath = "/health"
	pullPath   = "/sync/pull"
	pushPath   = "/sync/push"
	dataPath   = "/sync/data"
)

type httpSyncAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	logger *logger.Logger
}

// NewHTTPSyncAdapter constructs the REST implementation of [SyncAdapter].
// Requests time out after adapterCfg.RequestTimeout. Push bodies are signed
// when appCfg.HashKey is set.
func NewHTTPSyncAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) SyncAdapter {
	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	if appCfg.Version != "" {
		client.SetHeader("User-Agent", "onda-sync/"+appCfg.Version)
	}

	var hasher *utils.Hasher
	if appCfg.HashKey != "" {
		hasher = utils.NewHasher(appCfg.HashKey)
	}

	return &httpSyncAdapter{client: client, hasher: hasher, logger: logger}
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidServerURL)
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidServerURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidServerURL)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Health implements [SyncAdapter].
func (h *httpSyncAdapter) Health(ctx context.Context, serverURL string) (models.HealthResponse, error) {
	var health models.HealthResponse

	base, err := normalizeBaseURL(serverURL)
	if err != nil {
		return health, err
	}

	resp, err := h.client.R().SetContext(ctx).Get(base + healthPath)
	if err := h.checkResponse(resp, err, "httpSyncAdapter.Health"); err != nil {
		return health, err
	}

	return health, decode(resp, &health)
}

// Pull implements [SyncAdapter].
func (h *httpSyncAdapter) Pull(ctx context.Context, remote Remote, req models.PullRequest) (models.PullResponse, error) {
	var pulled models.PullResponse

	r, base, err := h.authedRequest(ctx, remote)
	if err != nil {
		return pulled, err
	}

	resp, err := r.SetBody(req).Post(base + pullPath)
	if err := h.checkResponse(resp, err, "httpSyncAdapter.Pull"); err != nil {
		return pulled, err
	}

	return pulled, decode(resp, &pulled)
}

// Push implements [SyncAdapter].
func (h *httpSyncAdapter) Push(ctx context.Context, remote Remote, req models.PushRequest) (models.PushResponse, error) {
	var pushed models.PushResponse

	r, base, err := h.authedRequest(ctx, remote)
	if err != nil {
		return pushed, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return pushed, fmt.Errorf("%w: %w", ErrEncodingRequest, err)
	}
	if h.hasher != nil {
		r.SetHeader(HashHeader, h.hasher.HexSum(body))
	}

	resp, err := r.SetBody(body).Post(base + pushPath)
	if err := h.checkResponse(resp, err, "httpSyncAdapter.Push"); err != nil {
		return pushed, err
	}

	h.logger.Debug().
		Str("func", "httpSyncAdapter.Push").
		Int("bytes", len(body)).
		Msg("dataset pushed")

	return pushed, decode(resp, &pushed)
}

// GetData implements [SyncAdapter].
func (h *httpSyncAdapter) GetData(ctx context.Context, remote Remote) (models.PullResponse, error) {
	var data models.PullResponse

	r, base, err := h.authedRequest(ctx, remote)
	if err != nil {
		return data, err
	}

	resp, err := r.Get(base + dataPath)
	if err := h.checkResponse(resp, err, "httpSyncAdapter.GetData"); err != nil {
		return data, err
	}

	return data, decode(resp, &data)
}

// DeleteData implements [SyncAdapter].
func (h *httpSyncAdapter) DeleteData(ctx context.Context, remote Remote) (models.DeleteResponse, error) {
	var deleted models.DeleteResponse

	r, base, err := h.authedRequest(ctx, remote)
	if err != nil {
		return deleted, err
	}

	resp, err := r.Delete(base + dataPath)
	if err := h.checkResponse(resp, err, "httpSyncAdapter.DeleteData"); err != nil {
		return deleted, err
	}

	return deleted, decode(resp, &deleted)
}

func (h *httpSyncAdapter) authedRequest(ctx context.Context, remote Remote) (*resty.Request, string, error) {
	base, err := normalizeBaseURL(remote.ServerURL)
	if err != nil {
		return nil, "", err
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader(SecretKeyHeader, remote.SecretKey)

	return req, base, nil
}

func (h *httpSyncAdapter) checkResponse(resp *resty.Response, err error, fn string) error {
	if err != nil {
		h.logger.Err(err).Str("func", fn).Msg("request failed")
		return fmt.Errorf("%w: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Err(err).Str("func", fn).Int("status", resp.StatusCode()).Msg("server rejected request")
		return err
	}
	return nil
}

func decode(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return nil
}
