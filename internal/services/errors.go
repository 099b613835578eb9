// Package services defines the business logic for quotes, favorites, and
// statistics. This file centralizes common service-level error values so that
// they can be consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the handler
// layer.
package services

import "errors"

var (
	// ErrNoQuotes indicates that no quote matched the selection (empty table
	// for random picks, or no row in the requested category).
	ErrNoQuotes = errors.New("no quotes found")

	// ErrQuoteFieldsRequired is returned when a quote submission is missing
	// its text or author. The check is presence-only: an empty string fails,
	// whitespace passes.
	ErrQuoteFieldsRequired = errors.New("quote text and author are required")

	// ErrFavoriteFieldsRequired is returned when a favorite submission is
	// missing its quote id or user name.
	ErrFavoriteFieldsRequired = errors.New("quote id and user name are required")
)
