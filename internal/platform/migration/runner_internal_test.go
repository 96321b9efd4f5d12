// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestConvertToPgx5DSN verifies the scheme rewrite expected by the pgx5 driver.
*/
func TestConvertToPgx5DSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"postgres://u:p@db:5432/iso639", "pgx5://u:p@db:5432/iso639"},
		{"postgresql://db/iso639?sslmode=disable", "pgx5://db/iso639?sslmode=disable"},
		{"pgx5://db/iso639", "pgx5://db/iso639"},
		{"host=db dbname=iso639", "host=db dbname=iso639"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, convertToPgx5DSN(tt.dsn))
		})
	}
}
