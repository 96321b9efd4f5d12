// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/iso639/internal/platform/ctxutil"
	"github.com/taibuivan/iso639/internal/platform/middleware"
	"github.com/taibuivan/iso639/internal/platform/sec"
)

// stubVerifier accepts exactly one token.
type stubVerifier struct {
	token  string
	claims *sec.AuthClaims
}

func (v stubVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if token != v.token {
		return nil, errors.New("bad token")
	}
	return v.claims, nil
}

type stubConfig struct {
	development bool
	origins     []string
}

func (c stubConfig) IsDevelopment() bool      { return c.development }
func (c stubConfig) AllowedOrigins() []string { return c.origins }

var okHandler = http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
	writer.WriteHeader(http.StatusOK)
})

/*
TestRequestID verifies that a missing ID is generated and a supplied one is kept.
*/
func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetRequestID(request.Context())
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, recorder.Header().Get("X-Request-ID"))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Request-ID", "given")
	handler.ServeHTTP(httptest.NewRecorder(), request)
	assert.Equal(t, "given", seen)
}

/*
TestRequireRole covers anonymous, insufficient and sufficient callers.
*/
func TestRequireRole(t *testing.T) {
	verifier := stubVerifier{token: "ops", claims: &sec.AuthClaims{Role: string(sec.RoleOperator)}}
	readerVerifier := stubVerifier{token: "reader", claims: &sec.AuthClaims{Role: string(sec.RoleReader)}}

	tests := []struct {
		name     string
		verifier stubVerifier
		header   string
		want     int
	}{
		{"anonymous", verifier, "", http.StatusUnauthorized},
		{"malformed header", verifier, "Token ops", http.StatusUnauthorized},
		{"invalid token", verifier, "Bearer nope", http.StatusUnauthorized},
		{"insufficient role", readerVerifier, "Bearer reader", http.StatusForbidden},
		{"operator", verifier, "Bearer ops", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.Authenticate(tt.verifier)(middleware.RequireRole(sec.RoleOperator)(okHandler))

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.want, recorder.Code)
		})
	}
}

/*
TestCORS verifies origin matching outside development.
*/
func TestCORS(t *testing.T) {
	cfg := stubConfig{origins: []string{"https://app.example.com", ".example.org"}}

	tests := []struct {
		origin  string
		allowed bool
	}{
		{"https://app.example.com", true},
		{"https://docs.example.org", true},
		{"https://evil.example.net", false},
		{"https://app.example.com.evil.net", false},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request.Header.Set("Origin", tt.origin)
			recorder := httptest.NewRecorder()

			middleware.CORS(cfg)(okHandler).ServeHTTP(recorder, request)

			require.Equal(t, http.StatusOK, recorder.Code)
			if tt.allowed {
				assert.Equal(t, tt.origin, recorder.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}

	t.Run("preflight", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodOptions, "/", nil)
		request.Header.Set("Origin", "https://app.example.com")
		recorder := httptest.NewRecorder()

		middleware.CORS(cfg)(okHandler).ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

/*
TestPanicRecovery verifies that a panicking handler yields a 500.
*/
func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
