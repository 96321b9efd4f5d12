// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/iso639/internal/platform/apperr"
	requestutil "github.com/taibuivan/iso639/internal/platform/request"
)

/*
TestBool covers absent, valid and malformed flags.
*/
func TestBool(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		want    bool
		wantErr bool
	}{
		{name: "absent", target: "/"},
		{name: "empty", target: "/?ignore_case="},
		{name: "true", target: "/?ignore_case=true", want: true},
		{name: "numeric", target: "/?ignore_case=1", want: true},
		{name: "false", target: "/?ignore_case=false"},
		{name: "malformed", target: "/?ignore_case=yes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := requestutil.Bool(httptest.NewRequest(http.MethodGet, tt.target, nil), "ignore_case")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestInt covers the default and malformed values.
*/
func TestInt(t *testing.T) {
	got, err := requestutil.Int(httptest.NewRequest(http.MethodGet, "/", nil), "limit", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, got)

	got, err = requestutil.Int(httptest.NewRequest(http.MethodGet, "/?limit=25", nil), "limit", 10)
	require.NoError(t, err)
	assert.Equal(t, 25, got)

	_, err = requestutil.Int(httptest.NewRequest(http.MethodGet, "/?limit=ten", nil), "limit", 10)
	assert.Error(t, err)
}

/*
TestListAndParam verifies list splitting and URL parameters through a router.
*/
func TestListAndParam(t *testing.T) {
	var (
		list  []string
		param string
	)

	router := chi.NewRouter()
	router.Get("/{part3}", func(writer http.ResponseWriter, request *http.Request) {
		list = requestutil.List(request, "q")
		param = requestutil.Param(request, "part3")
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/eng?q=en,+fr,,en", nil))

	assert.Equal(t, []string{"en", "fr"}, list)
	assert.Equal(t, "eng", param)
}
