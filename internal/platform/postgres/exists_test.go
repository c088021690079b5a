// Copyright (c) 2026 Newsroom. All rights reserved.

package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsroomhq/newsroom/internal/platform/apperr"
	"github.com/newsroomhq/newsroom/internal/platform/database/schema"
	"github.com/newsroomhq/newsroom/internal/platform/postgres"
)

// stubRow feeds a fixed boolean (or error) into Scan.
type stubRow struct {
	found bool
	err   error
}

func (row stubRow) Scan(dest ...any) error {
	if row.err != nil {
		return row.err
	}
	*(dest[0].(*bool)) = row.found
	return nil
}

// stubQuerier records the query and args it was handed.
type stubQuerier struct {
	row       stubRow
	lastQuery string
	lastArgs  []any
}

func (stub *stubQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	stub.lastQuery = sql
	stub.lastArgs = args
	return stub.row
}

func TestExists(t *testing.T) {
	t.Run("builds_query_from_key_and_binds_value", func(t *testing.T) {
		stub := &stubQuerier{row: stubRow{found: true}}

		found, err := postgres.Exists(context.Background(), stub, schema.ArticleByID, 7)
		require.NoError(t, err)
		assert.True(t, found)

		assert.Equal(t, `SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1)`, stub.lastQuery)
		assert.Equal(t, []any{7}, stub.lastArgs)
	})

	t.Run("absent_row_is_false_not_an_error", func(t *testing.T) {
		stub := &stubQuerier{row: stubRow{found: false}}

		found, err := postgres.Exists(context.Background(), stub, schema.UserByUsername, "nobody")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("driver_failure_is_wrapped", func(t *testing.T) {
		stub := &stubQuerier{row: stubRow{err: errors.New("connection reset")}}

		_, err := postgres.Exists(context.Background(), stub, schema.TopicBySlug, "cooking")
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, 500, ae.HTTPStatus)
	})
}
