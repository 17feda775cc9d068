// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-keeper/internal/service"
	"github.com/MKhiriev/go-key-keeper/models"
)

func TestIssueNonce_Handler(t *testing.T) {
	nonce := models.Nonce{Value: []byte{1, 2, 3}, IssuedAt: 7}
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{
			issueNonceFn: func(context.Context) (models.Nonce, error) { return nonce, nil },
		},
	})

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/nonce", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
	assert.Equal(t, nonce, decodeBody[models.Nonce](t, rr.Body))
}

func TestIssueNonce_Failure(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{
			issueNonceFn: func(context.Context) (models.Nonce, error) {
				return models.Nonce{}, errors.New("entropy source failed")
			},
		},
	})

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/nonce", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestVerify_Handler(t *testing.T) {
	user := models.User{Handle: models.Handle("alice")}

	tests := []struct {
		name          string
		createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
		wantStatus    int
	}{
		{
			name: "token issued",
			createTokenFn: func(_ context.Context, u models.User) (models.Token, error) {
				assert.True(t, u.Handle.Equal(user.Handle))
				return models.Token{SignedString: "signed.jwt.token", Handle: u.Handle}, nil
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "token creation failed",
			createTokenFn: func(context.Context, models.User) (models.Token, error) {
				return models.Token{}, service.ErrTokenCreationFailed
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&service.Services{
				AuthService: &mockAuthService{
					authenticateFn: func(context.Context, models.AuthRequest) (models.User, error) { return user, nil },
					createTokenFn:  tt.createTokenFn,
				},
			})

			req := httptest.NewRequest(http.MethodPost, "/api/auth/verify", nil)
			req.Header.Set("Authorization", schnorrHeader(t, sampleAuthRequest()))
			rr := serve(h, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "Bearer signed.jwt.token", rr.Header().Get("Authorization"))
				got := decodeBody[models.AuthResponse](t, rr.Body)
				assert.Equal(t, "signed.jwt.token", got.Token)
				assert.True(t, got.Handle.Equal(user.Handle))
			}
		})
	}
}

func TestSession_Handler(t *testing.T) {
	handle := models.Handle("alice")
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{
			parseTokenFn: func(context.Context, string) (models.Token, error) {
				return models.Token{Handle: handle}, nil
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	req.Header.Set("Authorization", "Bearer anything")
	rr := serve(h, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decodeBody[models.SessionResponse](t, rr.Body).Handle.Equal(handle))

	rr = serve(h, httptest.NewRequest(http.MethodGet, "/api/session", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
