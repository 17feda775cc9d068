// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request whose context carries a logger writing to buf,
// the same way withTraceID does.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handler          http.HandlerFunc
		checkLogContains []string
	}{
		{
			name:   "GET 200",
			method: http.MethodGet,
			path:   "/api/nonce",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("OK"))
			},
			checkLogContains: []string{`"method":"GET"`, `"uri":"/api/nonce"`, `"status":200`, `"size":2`, `"duration":`},
		},
		{
			name:   "DELETE 204",
			method: http.MethodDelete,
			path:   "/api/users/abc",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			checkLogContains: []string{`"method":"DELETE"`, `"status":204`, `"size":0`},
		},
		{
			name:   "no explicit write",
			method: http.MethodGet,
			path:   "/empty",
			handler: func(w http.ResponseWriter, r *http.Request) {
			},
			checkLogContains: []string{`"status":200`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTestHandler(nil)

			h.withLogging(tt.handler).ServeHTTP(httptest.NewRecorder(), makeRequest(tt.method, tt.path, &buf))

			for _, want := range tt.checkLogContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusTeapot)
	n, err := w.Write([]byte("abc"))

	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 3, w.size)
	assert.Same(t, rr, w.Unwrap())
}
