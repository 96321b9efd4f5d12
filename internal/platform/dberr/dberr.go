// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level storage errors (PostgreSQL
// and Redis) and higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/iso639/internal/platform/apperr"
)

// SQLSTATE codes reported when the iso639 schema has not been migrated.
const (
	sqlStateUndefinedTable  = "42P01"
	sqlStateInvalidSchema   = "3F000"
	sqlStateUndefinedColumn = "42703"
)

var (
	// ErrNotFound is a standard error returned when a queried row or key doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")

	// ErrSchemaMissing is returned when the tables have not been created yet.
	ErrSchemaMissing = apperr.ServiceUnavailable("Dataset tables are missing, run the migrations first")
)

// Wrap inspects a storage error and wraps it into a meaningful [apperr.AppError].
// It hides internal details from the client while classifying the error type.
// The action names the failed operation in the server-side cause.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, redis.Nil) {
		return ErrNotFound.WithCause(err)
	}

	// 2. Unmigrated database
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlStateUndefinedTable, sqlStateInvalidSchema, sqlStateUndefinedColumn:
			return ErrSchemaMissing.WithCause(fmt.Errorf("%s: %w", action, err))
		}
	}

	// 3. Unknown errors become Internal Server Errors
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}
