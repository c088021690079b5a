// Copyright (c) 2026 Newsroom. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// It is the second stage of the error translation pipeline: recognized
// application errors pass through untouched, PostgreSQL constraint and syntax
// violations are classified by SQLSTATE into a 400 Bad Request, and anything
// unrecognized degrades to a 500 Internal Server Error.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/newsroomhq/newsroom/internal/platform/apperr"
)

// badRequestCodes is the fixed set of SQLSTATE codes that indicate the client
// sent something the schema rejects. All of them map to 400 "Bad Request":
// malformed ids, missing required columns, references to absent rows,
// generated syntax failures, and duplicate unique keys.
var badRequestCodes = map[string]struct{}{
	pgerrcode.InvalidTextRepresentation: {}, // 22P02: e.g. "bananas" as an integer id
	pgerrcode.NotNullViolation:          {}, // 23502: required column missing
	pgerrcode.ForeignKeyViolation:       {}, // 23503: unknown author/article/topic
	pgerrcode.SyntaxError:               {}, // 42601
	pgerrcode.UniqueViolation:           {}, // 23505: duplicate topic slug
}

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// The action string names the failed operation for the server-side cause chain.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// Already classified upstream: pass through verbatim.
	if apperr.IsAppError(err) {
		return err
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound()
	}

	// 2. SQLSTATE classification
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if _, ok := badRequestCodes[pgErr.Code]; ok {
			bad := apperr.BadRequest()
			bad.Cause = err
			return bad
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(&actionError{action: action, cause: err})
}

// actionError annotates a database failure with the operation that produced it.
type actionError struct {
	action string
	cause  error
}

func (e *actionError) Error() string { return e.action + ": " + e.cause.Error() }

func (e *actionError) Unwrap() error { return e.cause }
