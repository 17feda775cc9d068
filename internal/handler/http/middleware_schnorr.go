// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/service"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/models"
)

// schnorrScheme is the Authorization scheme carrying per-request proofs:
//
//	Authorization: Schnorr <base64(JSON models.AuthRequest)>
const schnorrScheme = "Schnorr"

// schnorrAuth is an HTTP middleware that authenticates a single request by
// proof of key possession.
//
// The decoded [models.AuthRequest] is normalised and handed to
// [service.AuthService.Authenticate]. On success the user is stored in the
// request context with [utils.WithUser]. Every authentication failure,
// including a missing or undecodable header, is a 401 with the same body;
// backend failures are mapped by writeError.
func (h *Handler) schnorrAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w)
			return
		}

		req, err := parseSchnorrHeader(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			unauthorized(w)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, req)
		if err != nil {
			if errors.Is(err, service.ErrAuthenticationFailed) {
				unauthorized(w)
				return
			}
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

// parseSchnorrHeader decodes the credentials of a Schnorr Authorization
// header. Both padded standard and unpadded URL-safe base64 are accepted.
func parseSchnorrHeader(authHeader string) (models.AuthRequest, error) {
	credentials, err := utils.ParseAuthorizationHeader(authHeader, schnorrScheme)
	if err != nil {
		return models.AuthRequest{}, ErrInvalidAuthorizationHeader
	}

	raw, err := base64.StdEncoding.DecodeString(credentials)
	if err != nil {
		raw, err = base64.RawURLEncoding.DecodeString(credentials)
		if err != nil {
			return models.AuthRequest{}, fmt.Errorf("%w: %w", ErrMalformedAuthRequest, err)
		}
	}

	var req models.AuthRequest
	if err = json.Unmarshal(raw, &req); err != nil {
		return models.AuthRequest{}, fmt.Errorf("%w: %w", ErrMalformedAuthRequest, err)
	}

	return req.Normalize(), nil
}
