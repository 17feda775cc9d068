// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/service"
	"github.com/MKhiriev/go-key-keeper/internal/store"
)

// retryAfter is the Retry-After hint, in seconds, sent with transient backend failures.
const retryAfter = 1

type errorStatus struct {
	target error
	status int
}

// errorStatusTable is matched in order; the first target found in the error
// chain decides the status.
var errorStatusTable = []errorStatus{
	{service.ErrAuthenticationFailed, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrVersionIsNotSpecified, http.StatusInternalServerError},

	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrUserAlreadyExists, http.StatusConflict},
	{store.ErrBackendUnavailable, http.StatusServiceUnavailable},
}

// statusFromError returns the HTTP status for err and the text that is safe
// to show the caller. Internal details never reach the response body.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatusTable {
		if errors.Is(err, e.target) {
			if e.status == http.StatusUnauthorized || e.status >= http.StatusInternalServerError {
				return e.status, http.StatusText(e.status)
			}
			return e.status, e.target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err and answers with the mapped status. Transient backend
// failures carry a Retry-After header.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, text := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if errors.Is(err, store.ErrTransient) {
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	}
	http.Error(w, text, status)
}

// unauthorized answers every authentication failure with one body text.
func unauthorized(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}
