// Copyright (c) 2026 Newsroom. All rights reserved.

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via the "limit" and
// "p" query parameters and how the values are validated.
//
// # Contract
//
// A value that does not parse as an integer is a 400 error (Invalid Limit /
// Invalid Page). A value that parses but is zero or negative silently falls
// back to the default. There is no upper bound: a limit larger than the
// result set simply yields fewer rows, and a page past the end yields an
// empty page.
package pagination

import (
	"net/http"
	"strconv"

	"github.com/newsroomhq/newsroom/internal/platform/apperr"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 10
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the SQL OFFSET value derived from [Page] and [Limit].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// FromRequest parses the "limit" and "p" query parameters from an HTTP request.
func FromRequest(r *http.Request) (Params, error) {
	limit, err := parseIntParam(r, "limit", DefaultLimit, apperr.InvalidLimit)
	if err != nil {
		return Params{}, err
	}

	page, err := parseIntParam(r, "p", DefaultPage, apperr.InvalidPage)
	if err != nil {
		return Params{}, err
	}

	return Params{Page: page, Limit: limit}, nil
}

// parseIntParam parses a single integer query parameter.
//
// Missing → default; malformed → the provided 400 error; <= 0 → default.
func parseIntParam(r *http.Request, key string, defaultVal int, invalid func() *apperr.AppError) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalid()
	}

	if n <= 0 {
		return defaultVal, nil
	}

	return n, nil
}
