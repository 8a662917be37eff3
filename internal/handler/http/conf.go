// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/typedconf/internal/logger"
	"github.com/MKhiriev/typedconf/internal/utils"
	"github.com/MKhiriev/typedconf/models"
	"github.com/go-chi/chi/v5"
)

// getConf writes the whole resolved tree. The snapshot fingerprint doubles
// as a strong ETag.
func (h *Handler) getConf(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	snapshot, err := h.services.ConfService.Get()
	if err != nil {
		log.Err(err).Msg("error getting configuration")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	// A tree that could not be fingerprinted is served without an ETag.
	if snapshot.Fingerprint != "" {
		etag := `"` + snapshot.Fingerprint + `"`
		w.Header().Set("ETag", etag)
		if match := r.Header.Get("If-None-Match"); match != "" && etagMatches(match, etag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	if _, err = utils.WriteJSON(w, snapshot.Tree, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing configuration")
	}
}

// getValue writes the value found at the slash path following /api/conf/.
func (h *Handler) getValue(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	path := chi.URLParam(r, "*")
	value, err := h.services.ConfService.Value(path)
	if err != nil {
		log.Err(err).Str("path", path).Msg("error getting configuration value")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, models.ValueResponse{Path: path, Value: value}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing configuration value")
	}
}

// reload runs a new resolution cycle with the current selectors.
func (h *Handler) reload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	operator, _ := utils.GetOperatorFromContext(r.Context())

	snapshot, err := h.services.ConfService.Reload(r.Context())
	if err != nil {
		log.Err(err).Str("operator", operator).Msg("reload failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	log.Info().Str("operator", operator).Str("fingerprint", snapshot.Fingerprint).Msg("configuration reloaded")
	_, _ = utils.WriteJSON(w, models.ReloadResponse{
		ID:          snapshot.ID,
		Fingerprint: snapshot.Fingerprint,
		ResolvedAt:  snapshot.ResolvedAt,
	}, http.StatusOK)
}

func etagMatches(header, etag string) bool {
	for candidate := range strings.SplitSeq(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
