// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/iso639/internal/platform/apperr"
	"github.com/taibuivan/iso639/internal/platform/respond"
	"github.com/taibuivan/iso639/pkg/pagination"
)

func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

/*
TestEnvelopes verifies the success and paginated shapes.
*/
func TestEnvelopes(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.OK(recorder, map[string]string{"part3": "eng"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.Equal(t, map[string]any{"data": map[string]any{"part3": "eng"}}, decode(t, recorder))

	recorder = httptest.NewRecorder()
	respond.Paginated(recorder, []string{"ara", "est"}, pagination.NewMeta(1, 2, 7))

	body := decode(t, recorder)
	assert.Equal(t, []any{"ara", "est"}, body["data"])
	assert.Equal(t, float64(4), body["meta"].(map[string]any)["total_pages"])
}

/*
TestError verifies the mapping of application and unexpected errors.
*/
func TestError(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "app error",
			err:     apperr.NotFound(`Language "xx"`),
			status:  http.StatusNotFound,
			code:    "NOT_FOUND",
			message: `Language "xx" not found`,
		},
		{
			name:    "validation",
			err:     apperr.ValidationError("Validation failed", apperr.FieldError{Field: "q", Message: "This field is required"}),
			status:  http.StatusBadRequest,
			code:    "VALIDATION_ERROR",
			message: "Validation failed",
		},
		{
			name:    "unexpected error is hidden",
			err:     errors.New("pq: relation does not exist"),
			status:  http.StatusInternalServerError,
			code:    "INTERNAL_ERROR",
			message: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			respond.Error(recorder, request, tt.err)

			body := decode(t, recorder)
			assert.Equal(t, tt.status, recorder.Code)
			assert.Equal(t, tt.code, body["code"])
			assert.Equal(t, tt.message, body["error"])
		})
	}
}
