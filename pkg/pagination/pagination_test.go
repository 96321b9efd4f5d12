// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/iso639/pkg/pagination"
)

/*
TestFromRequest verifies the clamping rules for page and limit.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  pagination.Params
	}{
		{"defaults", "", pagination.Params{Page: 1, Limit: 20}},
		{"explicit", "?page=3&limit=5", pagination.Params{Page: 3, Limit: 5}},
		{"negative_page", "?page=-2&limit=5", pagination.Params{Page: 1, Limit: 5}},
		{"limit_too_large", "?limit=1000", pagination.Params{Page: 1, Limit: 100}},
		{"garbage", "?page=abc&limit=xyz", pagination.Params{Page: 1, Limit: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/languages"+tt.query, nil)
			assert.Equal(t, tt.want, pagination.FromRequest(request))
		})
	}
}

/*
TestWindow slices an in-memory collection into pages.
*/
func TestWindow(t *testing.T) {
	items := []string{"ara", "deu", "eng", "fra", "spa"}

	page, meta := pagination.Window(items, pagination.Params{Page: 2, Limit: 2})
	assert.Equal(t, []string{"eng", "fra"}, page)
	assert.Equal(t, pagination.Meta{Page: 2, Limit: 2, Total: 5, TotalPages: 3}, meta)

	last, _ := pagination.Window(items, pagination.Params{Page: 3, Limit: 2})
	assert.Equal(t, []string{"spa"}, last)

	beyond, meta := pagination.Window(items, pagination.Params{Page: 9, Limit: 2})
	assert.NotNil(t, beyond)
	assert.Empty(t, beyond)
	assert.Equal(t, 5, meta.Total)

	huge := httptest.NewRequest("GET", "/?page=92233720368547760&limit=100", nil)
	overflow, _ := pagination.Window(items, pagination.FromRequest(huge))
	assert.NotNil(t, overflow)
	assert.Empty(t, overflow)
}
