// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/iso639/data/iso639"
	"github.com/taibuivan/iso639/data/migrations"
	"github.com/taibuivan/iso639/internal/core/language"
	"github.com/taibuivan/iso639/internal/platform/migration"
	pgstore "github.com/taibuivan/iso639/internal/platform/postgres"
)

func newImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load the ISO 639-3 tables into PostgreSQL",
		Long: `Load the ISO 639-3 tables into PostgreSQL.

Applies pending migrations, validates the tables read from --dir (or the
embedded sample), then replaces the stored dataset in one transaction.
The API serves the result when started with DATASET_SOURCE=postgres.`,
		Args: cobra.NoArgs,
		RunE: runImport,
	}
	cmd.Flags().String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection URL (default $DATABASE_URL)")
	cmd.Flags().String("migrations", "", "Directory of migration files (default: embedded)")
	return cmd
}

func runImport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := newOutputFormatter(cmd)

	databaseURL, _ := cmd.Flags().GetString("database-url")
	if databaseURL == "" {
		return fmt.Errorf("--database-url or DATABASE_URL is required")
	}

	dir, _ := cmd.Flags().GetString("dir")
	migrationDir, _ := cmd.Flags().GetString("migrations")

	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelInfo}))

	// 1. Read and validate before touching the database
	var dataset fs.FS = iso639.FS
	if dir != "" {
		dataset = os.DirFS(dir)
	}

	rows, err := language.NewFileSource(dataset).ReadRows(ctx)
	if err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}

	tables, err := language.NewTables(*rows)
	if err != nil {
		return fmt.Errorf("validate dataset: %w", err)
	}
	registry, err := language.NewRegistry(tables)
	if err != nil {
		return fmt.Errorf("validate dataset: %w", err)
	}
	for _, collision := range registry.Collisions() {
		log.Warn("language_index_collision",
			slog.String("field", collision.Field.String()),
			slog.String("key", collision.Key),
			slog.String("previous", collision.Previous),
			slog.String("winner", collision.Current),
		)
	}

	// 2. Schema
	var migrationFS fs.FS = migrations.FS
	if migrationDir != "" {
		migrationFS = os.DirFS(migrationDir)
	}
	if err := migration.RunUp(databaseURL, migrationFS, log); err != nil {
		return err
	}

	// 3. Swap the stored tables
	pool, err := pgstore.NewPool(ctx, databaseURL, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	copied, err := language.NewPostgresSource(pool).Replace(ctx, rows)
	if err != nil {
		return err
	}

	summary := struct {
		Records int   `json:"records"`
		Rows    int64 `json:"rows"`
	}{Records: registry.Len(), Rows: copied}

	if out.jsonMode {
		return out.Print(summary)
	}
	return out.Line("message", fmt.Sprintf("Imported %d records (%d rows)", summary.Records, summary.Rows))
}
