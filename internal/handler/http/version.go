// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/typedconf/internal/utils"
)

func (h *Handler) getVersion(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, h.version, http.StatusOK)
}
