// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/iso639/data/iso639"
	"github.com/taibuivan/iso639/internal/api"
	"github.com/taibuivan/iso639/internal/core/language"
	"github.com/taibuivan/iso639/internal/platform/config"
)

// newTestServer builds the full router over the embedded dataset.
func newTestServer(t *testing.T, deps api.HealthDependencies) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	registry, err := language.Load(ctx, language.NewFileSource(iso639.FS))
	require.NoError(t, err)

	liveness, readiness := api.NewHealthHandlers(deps, logger)
	cfg := &config.Config{ServerPort: "0", Environment: "test", DatasetSource: config.SourceEmbedded}

	server := api.NewServer(ctx, cfg, logger, nil, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Language:  language.NewHandler(language.NewService(registry, nil, logger)),
	})
	return server.Handler()
}

func get(t *testing.T, handler http.Handler, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder, body
}

/*
TestServer_Health verifies the liveness probe and the request ID header.
*/
func TestServer_Health(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{})

	recorder, body := get(t, handler, "/health")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
	assert.Equal(t, "ok", body["data"].(map[string]any)["status"])
}

/*
TestServer_Ready covers healthy and degraded readiness reports.
*/
func TestServer_Ready(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	t.Run("ready", func(t *testing.T) {
		handler := newTestServer(t, api.HealthDependencies{CheckDataset: ok})

		recorder, body := get(t, handler, "/ready")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "ready", body["data"].(map[string]any)["status"])
	})

	t.Run("degraded", func(t *testing.T) {
		handler := newTestServer(t, api.HealthDependencies{CheckDataset: ok, CheckCache: down})

		recorder, body := get(t, handler, "/ready")

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		data := body["data"].(map[string]any)
		assert.Equal(t, "degraded", data["status"])
		assert.Len(t, data["checks"], 2)
	})
}

/*
TestServer_LanguageRoutes verifies that the language API is mounted under /api/v1.
*/
func TestServer_LanguageRoutes(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{})

	recorder, body := get(t, handler, "/api/v1/languages/match?q=English")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "eng", body["data"].(map[string]any)["part3"])

	recorder, body = get(t, handler, "/api/v1/languages/match?q=xx-nope")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Contains(t, body["error"], "xx-nope")
}

/*
TestServer_OperatorRoutesWithoutVerifier verifies that the statistics route
stays closed when no public key is configured.
*/
func TestServer_OperatorRoutesWithoutVerifier(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{})

	recorder, body := get(t, handler, "/api/v1/languages/stats/popular")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "UNAUTHORIZED", body["code"])
}
