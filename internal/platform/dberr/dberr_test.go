// Copyright (c) 2026 Newsroom. All rights reserved.

package dberr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsroomhq/newsroom/internal/platform/apperr"
	"github.com/newsroomhq/newsroom/internal/platform/dberr"
)

/*
TestWrap_SQLStateClassification pins the vendor-code mapping table: every
constraint and syntax failure a malformed request can provoke becomes a 400,
nothing else does.
*/
func TestWrap_SQLStateClassification(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
		wantMsg    string
	}{
		{"invalid_text_representation", pgerrcode.InvalidTextRepresentation, http.StatusBadRequest, "Bad Request"},
		{"not_null_violation", pgerrcode.NotNullViolation, http.StatusBadRequest, "Bad Request"},
		{"foreign_key_violation", pgerrcode.ForeignKeyViolation, http.StatusBadRequest, "Bad Request"},
		{"syntax_error", pgerrcode.SyntaxError, http.StatusBadRequest, "Bad Request"},
		{"unique_violation", pgerrcode.UniqueViolation, http.StatusBadRequest, "Bad Request"},
		{"unrelated_sqlstate", pgerrcode.DivisionByZero, http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cause := &pgconn.PgError{Code: tt.code, Message: "driver detail"}

			wrapped := dberr.Wrap(cause, "test_action")

			ae := apperr.As(wrapped)
			require.NotNil(t, ae)
			assert.Equal(t, tt.wantStatus, ae.HTTPStatus)
			assert.Equal(t, tt.wantMsg, ae.Message)
			// Driver detail must never reach the client-facing message.
			assert.NotContains(t, ae.Message, "driver detail")
		})
	}
}

/*
TestWrap_NoRows maps an empty result to the contract's 404.
*/
func TestWrap_NoRows(t *testing.T) {
	wrapped := dberr.Wrap(pgx.ErrNoRows, "get_article")

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
	assert.Equal(t, "Not Found", ae.Message)
}

/*
TestWrap_Passthrough leaves nil and already-classified errors untouched.
*/
func TestWrap_Passthrough(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))

	original := apperr.InvalidSortQuery()
	wrapped := dberr.Wrap(original, "list_articles")
	assert.Same(t, original, apperr.As(wrapped))
}

/*
TestWrap_UnknownError degrades to a 500 and keeps the action in the cause chain.
*/
func TestWrap_UnknownError(t *testing.T) {
	cause := errors.New("connection refused")

	wrapped := dberr.Wrap(cause, "list_articles")

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusInternalServerError, ae.HTTPStatus)
	assert.ErrorIs(t, wrapped, cause)
	assert.Contains(t, ae.Cause.Error(), "list_articles")
}
