// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/service"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, config.Server{RequestTimeout: 3 * time.Second}, logger.Nop())

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, 3*time.Second, h.requestTimeout)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_RegistersRoutes(t *testing.T) {
	router := newTestHandler(&service.Services{}).Init()

	registered := map[string]bool{}
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	require.NoError(t, err)

	expected := []string{
		"GET /api/nonce",
		"POST /api/users",
		"GET /api/users/{handle}",
		"GET /api/users/by-key/{keyHash}",
		"DELETE /api/users/{handle}",
		"POST /api/auth/verify",
		"GET /api/session",
		"GET /api/version",
		"GET /api/version/build",
		"GET /api/health",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "route %q is not registered", route)
	}
}

func TestInit_UnknownMethodIsNotFound(t *testing.T) {
	h := newTestHandler(&service.Services{})

	for _, tc := range []struct{ method, path string }{
		{http.MethodDelete, "/api/nonce"},
		{http.MethodPut, "/api/users"},
		{http.MethodPost, "/api/session"},
		{http.MethodGet, "/api/auth/verify"},
	} {
		rr := serve(h, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code, "%s %s", tc.method, tc.path)
	}
}

func TestInit_UnknownPathIsNotFound(t *testing.T) {
	rr := serve(newTestHandler(&service.Services{}), httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_RecoversFromPanics(t *testing.T) {
	h := newTestHandler(&service.Services{AppInfoService: nil})

	// a nil service panics inside the handler
	rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestInit_EveryResponseCarriesTraceID(t *testing.T) {
	rr := serve(newTestHandler(&service.Services{}), httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}
