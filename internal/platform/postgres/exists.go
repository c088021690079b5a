// Copyright (c) 2026 Newsroom. All rights reserved.

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/newsroomhq/newsroom/internal/platform/dberr"
	"github.com/newsroomhq/newsroom/internal/platform/database/schema"
)

// RowQuerier is the subset of pgxpool.Pool needed by [Exists], kept minimal
// so tests can substitute a stub.
type RowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Exists reports whether at least one row of key.Table has key.Column equal
// to value.
//
// The table and column identifiers come from the closed [schema.Key]
// enumeration, never from client input; only the value travels as a bind
// parameter. Stores run this alongside their main query to turn would-be
// foreign-key failures into clean Not Found signals.
func Exists(ctx context.Context, db RowQuerier, key schema.Key, value any) (bool, error) {
	query := fmt.Sprintf(
		`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		key.Table, key.Column,
	)

	var found bool
	if err := db.QueryRow(ctx, query, value).Scan(&found); err != nil {
		return false, dberr.Wrap(err, "exists_"+key.Table)
	}

	return found, nil
}
