// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/iso639/data/iso639"
	"github.com/taibuivan/iso639/internal/core/language"
)

// loadSample builds a registry from the embedded dataset.
func loadSample(t *testing.T) *language.Registry {
	t.Helper()
	registry, err := language.Load(context.Background(), language.NewFileSource(iso639.FS))
	require.NoError(t, err)
	return registry
}

// buildRegistry indexes hand-written rows.
func buildRegistry(t *testing.T, rows language.Rows) *language.Registry {
	t.Helper()
	tables, err := language.NewTables(rows)
	require.NoError(t, err)
	registry, err := language.NewRegistry(tables)
	require.NoError(t, err)
	return registry
}

// mustGet resolves an ISO 639-3 code that the test expects to exist.
func mustGet(t *testing.T, registry *language.Registry, part3 string) *language.Language {
	t.Helper()
	lang, err := registry.FromPart3(part3)
	require.NoError(t, err)
	return lang
}
