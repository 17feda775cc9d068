// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/models"
)

// verify exchanges a Schnorr-authenticated request for a session token.
func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		unauthorized(w)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{Handle: user.Handle, Token: token.SignedString}, http.StatusOK)
}

// session reports the handle bound to a valid bearer token.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	handle, ok := utils.GetHandleFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return
	}

	utils.WriteJSON(w, models.SessionResponse{Handle: handle}, http.StatusOK)
}
