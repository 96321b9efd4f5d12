// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import "context"

// Source supplies the raw ISO 639-3 tables.
//
// Sources are read once at startup; lookups never touch them.
type Source interface {
	ReadRows(ctx context.Context) (*Rows, error)
}

// Usage is the number of successful resolutions of one code.
type Usage struct {
	Part3 string `json:"part3"`
	Count int64  `json:"count"`
}

// StatsRepository counts which languages callers resolve.
type StatsRepository interface {
	Increment(ctx context.Context, part3 string) error
	Top(ctx context.Context, limit int) ([]Usage, error)
}
