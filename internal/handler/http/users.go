// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-key-keeper/internal/app"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/users/"+user.Handle.String())
	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) userExists(w http.ResponseWriter, r *http.Request) {
	handle, err := models.ParseHandle(chi.URLParam(r, "handle"))
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Send()
		http.Error(w, app.MsgInvalidHandle, http.StatusBadRequest)
		return
	}

	exists, err := h.services.UserService.Exists(r.Context(), handle)
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if !exists {
		status = http.StatusNotFound
	}
	utils.WriteJSON(w, models.ExistsResponse{Exists: exists}, status)
}

func (h *Handler) lookupUser(w http.ResponseWriter, r *http.Request) {
	keyHash, err := models.ParseKeyHash(chi.URLParam(r, "keyHash"))
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Send()
		http.Error(w, app.MsgInvalidKeyHash, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.Lookup(r.Context(), keyHash)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// deleteUser must run behind schnorrAuth: only the key holder may remove
// its own handle.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requester, ok := utils.GetUserFromContext(ctx)
	if !ok {
		unauthorized(w)
		return
	}

	handle, err := models.ParseHandle(chi.URLParam(r, "handle"))
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Send()
		http.Error(w, app.MsgInvalidHandle, http.StatusBadRequest)
		return
	}

	if err = h.services.UserService.Delete(ctx, requester.Handle, handle); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
