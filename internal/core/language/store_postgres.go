// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taibuivan/iso639/internal/platform/database/schema"
	"github.com/taibuivan/iso639/internal/platform/dberr"
)

// PostgresSource reads and replaces the ISO 639-3 tables stored in the
// iso639 schema. Rows keep their file order through the position column.
type PostgresSource struct {
	db *pgxpool.Pool
}

// NewPostgresSource creates a [PostgresSource] on an open pool.
func NewPostgresSource(db *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: db}
}

// selectOrdered builds "SELECT cols FROM table ORDER BY position".
func selectOrdered(table string, columns []string, position string) string {
	return fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s ASC;
	`, strings.Join(columns, ", "), table, position)
}

// ReadRows loads the four tables in position order. Storage failures are
// classified by [dberr.Wrap]; a missing schema reports ErrSchemaMissing.
func (source *PostgresSource) ReadRows(ctx context.Context) (*Rows, error) {
	codes, err := queryRows(ctx, source.db,
		selectOrdered(schema.ISO639Code.Table(), schema.ISO639Code.Columns(), schema.ISO639Code.Position),
		func(row pgx.CollectableRow) (CodeRow, error) {
			var c CodeRow
			err := row.Scan(&c.Part3, &c.Part2B, &c.Part2T, &c.Part1, &c.Scope, &c.Type, &c.RefName, &c.Comment)
			return c, err
		})
	if err != nil {
		return nil, dberr.Wrap(err, "language_read_codes")
	}

	names, err := queryRows(ctx, source.db,
		selectOrdered(schema.ISO639NameIndex.Table(), schema.ISO639NameIndex.Columns(), schema.ISO639NameIndex.Position),
		func(row pgx.CollectableRow) (NameRow, error) {
			var n NameRow
			err := row.Scan(&n.Part3, &n.Print, &n.Inverted)
			return n, err
		})
	if err != nil {
		return nil, dberr.Wrap(err, "language_read_name_index")
	}

	macros, err := queryRows(ctx, source.db,
		selectOrdered(schema.ISO639Macrolanguage.Table(), schema.ISO639Macrolanguage.Columns(), schema.ISO639Macrolanguage.Position),
		func(row pgx.CollectableRow) (MacrolanguageRow, error) {
			var m MacrolanguageRow
			err := row.Scan(&m.Macrolanguage, &m.Part3, &m.Status)
			return m, err
		})
	if err != nil {
		return nil, dberr.Wrap(err, "language_read_macrolanguages")
	}

	retirements, err := queryRows(ctx, source.db,
		selectOrdered(schema.ISO639Retirement.Table(), schema.ISO639Retirement.Columns(), schema.ISO639Retirement.Position),
		func(row pgx.CollectableRow) (RetirementRow, error) {
			var r RetirementRow
			err := row.Scan(&r.Part3, &r.RefName, &r.Reason, &r.ChangeTo, &r.Remedy, &r.Effective)
			return r, err
		})
	if err != nil {
		return nil, dberr.Wrap(err, "language_read_retirements")
	}

	return &Rows{
		Codes:          codes,
		Names:          names,
		Macrolanguages: macros,
		Retirements:    retirements,
	}, nil
}

func queryRows[T any](ctx context.Context, db *pgxpool.Pool, query string, scan pgx.RowToFunc[T]) ([]T, error) {
	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scan)
}

/*
Replace swaps the stored tables for rows in a single transaction.

Description: Truncates the four tables and bulk-loads rows with COPY. Readers
see either the previous dataset or the new one, never a mix.

Returns:
  - int64: Number of rows copied across all tables
  - error: Storage failures (the transaction is rolled back)
*/
func (source *PostgresSource) Replace(ctx context.Context, rows *Rows) (int64, error) {
	tx, err := source.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("language_replace_begin_failed: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	truncate := fmt.Sprintf("TRUNCATE %s, %s, %s, %s;",
		schema.ISO639Code.Table(),
		schema.ISO639NameIndex.Table(),
		schema.ISO639Macrolanguage.Table(),
		schema.ISO639Retirement.Table(),
	)
	if _, err := tx.Exec(ctx, truncate); err != nil {
		return 0, fmt.Errorf("language_replace_truncate_failed: %w", err)
	}

	copies := []struct {
		ident   pgx.Identifier
		columns []string
		rows    int
		values  func(i int) []any
	}{
		{
			pgx.Identifier{schema.ISO639Code.Schema, schema.ISO639Code.Name},
			append([]string{schema.ISO639Code.Position}, schema.ISO639Code.Columns()...),
			len(rows.Codes),
			func(i int) []any {
				c := rows.Codes[i]
				return []any{i + 1, c.Part3, c.Part2B, c.Part2T, c.Part1, c.Scope, c.Type, c.RefName, c.Comment}
			},
		},
		{
			pgx.Identifier{schema.ISO639NameIndex.Schema, schema.ISO639NameIndex.Name},
			append([]string{schema.ISO639NameIndex.Position}, schema.ISO639NameIndex.Columns()...),
			len(rows.Names),
			func(i int) []any {
				n := rows.Names[i]
				return []any{i + 1, n.Part3, n.Print, n.Inverted}
			},
		},
		{
			pgx.Identifier{schema.ISO639Macrolanguage.Schema, schema.ISO639Macrolanguage.Name},
			append([]string{schema.ISO639Macrolanguage.Position}, schema.ISO639Macrolanguage.Columns()...),
			len(rows.Macrolanguages),
			func(i int) []any {
				m := rows.Macrolanguages[i]
				return []any{i + 1, m.Macrolanguage, m.Part3, m.Status}
			},
		},
		{
			pgx.Identifier{schema.ISO639Retirement.Schema, schema.ISO639Retirement.Name},
			append([]string{schema.ISO639Retirement.Position}, schema.ISO639Retirement.Columns()...),
			len(rows.Retirements),
			func(i int) []any {
				r := rows.Retirements[i]
				return []any{i + 1, r.Part3, r.RefName, r.Reason, r.ChangeTo, r.Remedy, r.Effective}
			},
		},
	}

	var total int64
	for _, c := range copies {
		values := c.values
		copied, err := tx.CopyFrom(ctx,
			c.ident,
			c.columns,
			pgx.CopyFromSlice(c.rows, func(i int) ([]any, error) { return values(i), nil }),
		)
		if err != nil {
			return 0, fmt.Errorf("language_replace_copy_failed: %s: %w", c.ident.Sanitize(), err)
		}
		total += copied
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("language_replace_commit_failed: %w", err)
	}

	return total, nil
}
