// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and query
string parsing, so malformed parameters surface as validation errors with a
consistent shape.
*/
package requestutil

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/iso639/internal/platform/validate"
	"github.com/taibuivan/iso639/pkg/query"
)

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Bool reads an optional boolean query parameter. An absent or empty value is false.

Returns:
  - bool: The parsed value
  - error: 400 Validation error if the value is not a boolean
*/
func Bool(request *http.Request, name string) (bool, error) {
	raw := request.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, validate.RequiredError(name, "Must be true or false")
	}
	return value, nil
}

/*
Int reads an optional integer query parameter, falling back to def when absent.

Returns:
  - int: The parsed value or def
  - error: 400 Validation error if the value is not an integer
*/
func Int(request *http.Request, name string, def int) (int, error) {
	raw := request.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validate.RequiredError(name, "Must be an integer")
	}
	return value, nil
}

/*
List reads a comma-separated query parameter without blanks or repeats.
*/
func List(request *http.Request, name string) []string {
	return query.UniqueStrings(request.URL.Query().Get(name))
}
