// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all
// endpoints. The error envelope is a single human-readable "error" field;
// internal failures are logged with the
// request-scoped logger while the client only ever sees a generic message.
//
// Example error response:
//
//	HTTP/1.1 404 Not Found
//	{ "error": "No quotes found" }
//
// Example success response:
//
//	HTTP/1.1 200 OK
//	{ "id": 3, "text": "…", "author": "…", "category": "cloud", "created_at": "…" }
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cloudquotes/go-quotes-backend/internal/http/middleware"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
// The message is safe to display to users; underlying store errors are never
// exposed here.
type ErrorResponse struct {
	Error string `json:"error" example:"No quotes found"`
}

// fail aborts the request with the standard error envelope.
//
// Server errors (>=500) are logged with the request-scoped logger, including
// the underlying cause when provided, so failures stay diagnosable without
// leaking detail to the caller.
func fail(c *gin.Context, status int, msg string, cause error) {
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		ev := lg.Error().Int("status", status).Str("message", msg)
		if cause != nil {
			ev = ev.Err(cause)
		}
		ev.Msg("api error")
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg})
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup) call Fail to return consistent
// error envelopes without depending on unexported helpers.
func Fail(c *gin.Context, status int, msg string) { fail(c, status, msg, nil) }

// ok writes a success JSON response with the given status code.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}
