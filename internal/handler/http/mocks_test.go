// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/service"
	"github.com/MKhiriev/go-key-keeper/models"
)

type mockAuthService struct {
	issueNonceFn   func(ctx context.Context) (models.Nonce, error)
	authenticateFn func(ctx context.Context, req models.AuthRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) IssueNonce(ctx context.Context) (models.Nonce, error) {
	return m.issueNonceFn(ctx)
}

func (m *mockAuthService) Authenticate(ctx context.Context, req models.AuthRequest) (models.User, error) {
	return m.authenticateFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockUserService struct {
	registerFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	existsFn   func(ctx context.Context, handle models.Handle) (bool, error)
	lookupFn   func(ctx context.Context, keyHash models.KeyHash) (models.User, error)
	deleteFn   func(ctx context.Context, requester, handle models.Handle) error
}

func (m *mockUserService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockUserService) Exists(ctx context.Context, handle models.Handle) (bool, error) {
	return m.existsFn(ctx, handle)
}

func (m *mockUserService) Lookup(ctx context.Context, keyHash models.KeyHash) (models.User, error) {
	return m.lookupFn(ctx, keyHash)
}

func (m *mockUserService) Delete(ctx context.Context, requester, handle models.Handle) error {
	return m.deleteFn(ctx, requester, handle)
}

type mockAppInfoService struct {
	version string
	build   models.AppBuildInfo
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string { return m.version }

func (m *mockAppInfoService) GetBuildInfo(context.Context) models.AppBuildInfo { return m.build }

type mockHealthService struct {
	err error
}

func (m *mockHealthService) Check(context.Context) error { return m.err }

// ---- Helpers ----

func newTestHandler(services *service.Services) *Handler {
	return &Handler{services: services, logger: logger.Nop()}
}

// serve runs req through the full router of h.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func schnorrHeader(t *testing.T, req models.AuthRequest) string {
	t.Helper()
	raw, err := json.Marshal(req)
	require.NoError(t, err)
	return schnorrScheme + " " + base64.StdEncoding.EncodeToString(raw)
}

func decodeBody[T any](t *testing.T, body io.Reader) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(body).Decode(&v))
	return v
}
