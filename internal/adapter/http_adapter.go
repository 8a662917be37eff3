// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/typedconf/internal/logger"
	"github.com/MKhiriev/typedconf/internal/utils"
	"github.com/MKhiriev/typedconf/models"
)

type httpConfAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPConfAdapter returns an HTTP implementation of [ConfAdapter]. A
// bare "host:port" address is treated as http://host:port.
func NewHTTPConfAdapter(address string, timeout time.Duration, logger *logger.Logger) (ConfAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpConfAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpConfAdapter) Conf(ctx context.Context) (map[string]any, string, error) {
	var tree map[string]any

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&tree).
		Get("/api/conf")
	if err != nil {
		return nil, "", fmt.Errorf("conf request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, "", err
	}

	return tree, strings.Trim(resp.Header().Get("ETag"), `"`), nil
}

func (h *httpConfAdapter) Get(ctx context.Context, path string) (any, error) {
	keys := models.SplitPath(path)
	for i, key := range keys {
		keys[i] = url.PathEscape(key)
	}

	var value models.ValueResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&value).
		Get("/api/conf/" + strings.Join(keys, "/"))
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("path", path).Msg("get failed")
		return nil, err
	}

	return value.Value, nil
}

func (h *httpConfAdapter) Reload(ctx context.Context, token string) (models.ReloadResponse, error) {
	var reloaded models.ReloadResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(strings.TrimSpace(token)).
		SetResult(&reloaded).
		Post("/api/conf/reload")
	if err != nil {
		return models.ReloadResponse{}, fmt.Errorf("reload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ReloadResponse{}, err
	}

	return reloaded, nil
}

func (h *httpConfAdapter) History(ctx context.Context, limit int) (models.HistoryResponse, error) {
	var history models.HistoryResponse

	req := h.client.R().SetContext(ctx).SetResult(&history)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/api/history")
	if err != nil {
		return models.HistoryResponse{}, fmt.Errorf("history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HistoryResponse{}, err
	}

	return history, nil
}

func (h *httpConfAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}
