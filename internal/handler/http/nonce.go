// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-key-keeper/internal/utils"
)

func (h *Handler) issueNonce(w http.ResponseWriter, r *http.Request) {
	nonce, err := h.services.AuthService.IssueNonce(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, nonce, http.StatusOK)
}
