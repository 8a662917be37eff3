// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/typedconf/internal/logger"
	"github.com/MKhiriev/typedconf/internal/utils"
	"github.com/MKhiriev/typedconf/models"
)

const defaultHistoryLimit = 20

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			log.Error().Str("limit", raw).Msg("invalid history limit")
			utils.WriteError(w, ErrInvalidLimit.Error(), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	snapshots, err := h.services.ConfService.History(r.Context(), limit)
	if err != nil {
		log.Err(err).Msg("error listing history")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	response := models.HistoryResponse{
		Snapshots: make([]models.SnapshotSummary, 0, len(snapshots)),
		Length:    len(snapshots),
	}
	for _, s := range snapshots {
		response.Snapshots = append(response.Snapshots, s.Summary())
	}

	_, _ = utils.WriteJSON(w, response, http.StatusOK)
}
