// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the aggregate queries behind the
// statistics endpoint. Each function is context-aware and safe to call from
// services or handlers.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/cloudquotes/go-quotes-backend/internal/domain"
)

// CountQuotes returns the total number of quote rows.
func CountQuotes(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Quote{}).Count(&total).Error
	return total, err
}

// CountAllFavorites returns the total number of favorite rows across all
// quotes.
func CountAllFavorites(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Favorite{}).Count(&total).Error
	return total, err
}

// DistinctCategories returns the set of distinct category values currently
// present among quotes. Order is unspecified. An empty table yields an
// empty slice.
func DistinctCategories(ctx context.Context, db *gorm.DB) ([]string, error) {
	var cats []string
	err := db.WithContext(ctx).
		Model(&domain.Quote{}).
		Distinct().
		Pluck("category", &cats).Error
	return cats, err
}
