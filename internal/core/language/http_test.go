// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/iso639/internal/core/language"
	"github.com/taibuivan/iso639/internal/platform/ctxutil"
	"github.com/taibuivan/iso639/internal/platform/sec"
)

// serve sends a GET to the language routes, optionally as role.
func serve(t *testing.T, handler http.Handler, target string, role sec.UserRole) (int, map[string]any) {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, target, nil)
	if role != "" {
		claims := &sec.AuthClaims{Role: string(role)}
		request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body), recorder.Body.String())
	return recorder.Code, body
}

// data extracts the "data" object of a success envelope.
func data(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	object, ok := body["data"].(map[string]any)
	require.True(t, ok, "data is %T", body["data"])
	return object
}

/*
TestHandler_Lookups verifies the resolution endpoints end to end.
*/
func TestHandler_Lookups(t *testing.T) {
	handler := language.NewHandler(newService(t, nil)).Routes()

	tests := []struct {
		name   string
		target string
		status int
		part3  string
	}{
		{name: "match", target: "/match?q=nl", status: http.StatusOK, part3: "nld"},
		{name: "match ignore case", target: "/match?q=DUTCH&ignore_case=true", status: http.StatusOK, part3: "nld"},
		{name: "match case sensitive", target: "/match?q=DUTCH", status: http.StatusNotFound},
		{name: "match bad flag", target: "/match?q=nl&ignore_case=maybe", status: http.StatusBadRequest},
		{name: "match missing q", target: "/match", status: http.StatusBadRequest},
		{name: "by field", target: "/by/part2b/rum", status: http.StatusOK, part3: "ron"},
		{name: "by unknown field", target: "/by/iso/rum", status: http.StatusBadRequest},
		{name: "record", target: "/hbo", status: http.StatusOK, part3: "hbo"},
		{name: "retired record", target: "/mwj", status: http.StatusOK, part3: "mwj"},
		{name: "unknown record", target: "/qqq", status: http.StatusNotFound},
		{name: "successor", target: "/aue/successor", status: http.StatusOK, part3: "ktz"},
		{name: "no successor", target: "/mwj/successor", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := serve(t, handler, tt.target, "")
			require.Equal(t, tt.status, code)
			if tt.part3 != "" {
				assert.Equal(t, tt.part3, data(t, body)["part3"])
			} else {
				assert.NotEmpty(t, body["code"])
			}
		})
	}
}

/*
TestHandler_Batch verifies comma-separated inputs and deduplication.
*/
func TestHandler_Batch(t *testing.T) {
	handler := language.NewHandler(newService(t, nil)).Routes()

	code, body := serve(t, handler, "/batch?q=en,Elvish,en,Cantonese", "")
	require.Equal(t, http.StatusOK, code)

	result := data(t, body)
	assert.Len(t, result["resolved"], 2)
	assert.Equal(t, []any{"Elvish"}, result["unresolved"])

	code, _ = serve(t, handler, "/batch", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

/*
TestHandler_List verifies the paginated envelope.
*/
func TestHandler_List(t *testing.T) {
	handler := language.NewHandler(newService(t, nil)).Routes()

	code, body := serve(t, handler, "/?type=H&limit=2", "")
	require.Equal(t, http.StatusOK, code)

	items, ok := body["data"].([]any)
	require.True(t, ok)
	assert.Len(t, items, 2)

	meta, ok := body["meta"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(3), meta["total"])
	assert.Equal(t, float64(2), meta["total_pages"])

	code, body = serve(t, handler, "/zho/members", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["data"], 2)

	code, _ = serve(t, handler, "/?scope=Z", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

/*
TestHandler_Popular verifies the operator guard on usage statistics.
*/
func TestHandler_Popular(t *testing.T) {
	stats := newFakeStats()
	handler := language.NewHandler(newService(t, stats)).Routes()

	serve(t, handler, "/match?q=ja", "")
	serve(t, handler, "/match?q=jpn", "")

	tests := []struct {
		name   string
		target string
		role   sec.UserRole
		status int
	}{
		{name: "anonymous", target: "/stats/popular", status: http.StatusUnauthorized},
		{name: "reader", target: "/stats/popular", role: sec.RoleReader, status: http.StatusForbidden},
		{name: "operator", target: "/stats/popular", role: sec.RoleOperator, status: http.StatusOK},
		{name: "admin", target: "/stats/popular?limit=1", role: sec.RoleAdmin, status: http.StatusOK},
		{name: "bad limit", target: "/stats/popular?limit=ten", role: sec.RoleOperator, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := serve(t, handler, tt.target, tt.role)
			require.Equal(t, tt.status, code)
			if code == http.StatusOK {
				assert.Equal(t, []any{map[string]any{"part3": "jpn", "count": float64(2)}}, body["data"])
			}
		})
	}
}
