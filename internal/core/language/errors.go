// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"errors"
	"fmt"
)

// ErrNotFound matches every [*NotFoundError] via [errors.Is].
var ErrNotFound = errors.New("language: not found")

// NotFoundError is returned when no lookup strategy matches the input.
//
// Input is the string exactly as the caller supplied it, before trimming or
// case transforms.
type NotFoundError struct {
	Input string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%q isn't an ISO language code or name", e.Input)
}

// Is makes errors.Is(err, ErrNotFound) succeed.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DataFormatError reports a malformed dataset. It is fatal: a registry is
// never built from tables that produced one.
type DataFormatError struct {
	// Table is the source table file name (e.g. "iso-639-3.tab").
	Table string
	// Line is the 1-based line number, or 0 when the rows did not come from a file.
	Line int
	Err  error
}

func (e *DataFormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("language: malformed %s line %d: %v", e.Table, e.Line, e.Err)
	}
	return fmt.Sprintf("language: malformed %s: %v", e.Table, e.Err)
}

func (e *DataFormatError) Unwrap() error { return e.Err }
