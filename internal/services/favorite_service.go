// Package services – FavoriteService
//
// This file implements the FavoriteService, which records per-quote
// favorites and answers favorite counts. The referenced quote's existence is
// enforced by the store's foreign-key constraint, not checked here: a
// violation surfaces as a raw DB error which handlers report as an internal
// error, exactly like any other store failure.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/cloudquotes/go-quotes-backend/internal/domain"
	"github.com/cloudquotes/go-quotes-backend/internal/repo"
)

// FavoriteService implements the use-cases around quote favorites.
type FavoriteService struct {
	// DB is the database handle used for all favorite operations.
	DB *gorm.DB
}

// Add records a favorite for quoteID on behalf of userName and returns the
// persisted row.
//
// Semantics and validation:
//   - quoteID must be non-zero and userName non-empty; otherwise
//     ErrFavoriteFieldsRequired. The check mirrors the presence-only
//     validation of the submission contract.
//   - quoteID must reference an existing quote at insert time; a missing
//     quote is rejected by the store and the raw error is propagated
//     (not distinguished from other store failures).
//   - There is no uniqueness rule: the same user may favorite the same
//     quote any number of times.
func (s *FavoriteService) Add(ctx context.Context, quoteID int, userName string) (*domain.Favorite, error) {
	if quoteID == 0 || userName == "" {
		return nil, ErrFavoriteFieldsRequired
	}
	return repo.CreateFavorite(ctx, s.DB, quoteID, userName)
}

// Count returns the number of favorites recorded for quoteID. A quote with
// no favorites (or an id that does not exist) yields 0 without an error.
func (s *FavoriteService) Count(ctx context.Context, quoteID int) (int64, error) {
	return repo.CountFavorites(ctx, s.DB, quoteID)
}
