// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Favorite
// model.
//
// The repository follows a "thin" approach: it performs persistence and
// simple query composition, leaving business rules to the services package.
//
// Error semantics:
//   - A foreign-key violation (favoriting a quote that does not exist) is a
//     raw DB error; the service layer does not distinguish it from other
//     store failures.
//   - On other DB errors (connectivity, constraints, etc.), the raw gorm
//     error is propagated.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/cloudquotes/go-quotes-backend/internal/domain"
)

// CreateFavorite inserts a favorite row for the given quote and user and
// returns the persisted record including the store-assigned ID and
// CreatedAt. The quote must exist at insert time; a missing quote surfaces
// as the store's foreign-key error.
func CreateFavorite(ctx context.Context, db *gorm.DB, quoteID int, userName string) (*domain.Favorite, error) {
	f := &domain.Favorite{
		QuoteID:  quoteID,
		UserName: userName,
	}
	if err := db.WithContext(ctx).Create(f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

// CountFavorites returns the number of favorite rows referencing quoteID.
// A quote nobody has favorited (or that does not exist) yields 0 without an
// error: absence of matches is not an error condition here.
func CountFavorites(ctx context.Context, db *gorm.DB, quoteID int) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("quote_id = ?", quoteID).
		Count(&total).Error
	return total, err
}
