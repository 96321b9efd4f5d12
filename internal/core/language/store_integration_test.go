// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/iso639/data/iso639"
	"github.com/taibuivan/iso639/data/migrations"
	"github.com/taibuivan/iso639/internal/core/language"
	"github.com/taibuivan/iso639/internal/platform/migration"
	pgstore "github.com/taibuivan/iso639/internal/platform/postgres"
	redisstore "github.com/taibuivan/iso639/internal/platform/redis"
)

// These tests need live services and are skipped unless
// ISO639_TEST_DATABASE_URL or ISO639_TEST_REDIS_URL is set.

/*
TestPostgresSource_RoundTrip verifies that imported tables load back into an
identical registry.
*/
func TestPostgresSource_RoundTrip(t *testing.T) {
	dsn := os.Getenv("ISO639_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("ISO639_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, migration.RunUp(dsn, migrations.FS, logger))

	pool, err := pgstore.NewPool(ctx, dsn, logger)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	rows, err := language.NewFileSource(iso639.FS).ReadRows(ctx)
	require.NoError(t, err)

	source := language.NewPostgresSource(pool)
	copied, err := source.Replace(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, int64(len(rows.Codes)+len(rows.Names)+len(rows.Macrolanguages)+len(rows.Retirements)), copied)

	stored, err := source.ReadRows(ctx)
	require.NoError(t, err)
	assert.Equal(t, rows, stored)

	registry, err := language.Load(ctx, source)
	require.NoError(t, err)
	assert.Equal(t, loadSample(t).All(), registry.All())
}

/*
TestRedisStatsRepository verifies counting and ranking on a scratch key.
*/
func TestRedisStatsRepository(t *testing.T) {
	url := os.Getenv("ISO639_TEST_REDIS_URL")
	if url == "" {
		t.Skip("ISO639_TEST_REDIS_URL not set")
	}

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client, err := redisstore.NewClient(ctx, url, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	key := "iso639:test:" + uuid.NewString()
	t.Cleanup(func() { client.Del(context.Background(), key) })

	repository := language.NewRedisStatsRepositoryWithKey(client, key)

	usages, err := repository.Top(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, usages)

	for _, part3 := range []string{"eng", "fra", "eng", "deu", "eng", "fra"} {
		require.NoError(t, repository.Increment(ctx, part3))
	}

	usages, err = repository.Top(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []language.Usage{{Part3: "eng", Count: 3}, {Part3: "fra", Count: 2}}, usages)
}
