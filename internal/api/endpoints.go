// Copyright (c) 2026 Newsroom. All rights reserved.

package api

import (
	_ "embed"
	"net/http"
)

// endpointsJSON is the API discovery document served at GET /api. It is
// embedded at build time so the binary stays self-contained.
//
//go:embed endpoints.json
var endpointsJSON []byte

// endpointsIndex handles GET /api, describing every available endpoint.
func endpointsIndex(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write(endpointsJSON)
}
