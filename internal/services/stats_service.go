// Package services – StatsService
//
// This file implements the StatsService, which aggregates store-wide
// statistics: total quotes, total favorites, and the distinct category set.
// The three reads are independent queries but form one logical operation:
// if any of them fails the whole operation fails, with no partial result.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/cloudquotes/go-quotes-backend/internal/repo"
)

// StatsService computes aggregate statistics over quotes and favorites.
type StatsService struct {
	// DB is the database handle used for the aggregate queries.
	DB *gorm.DB
}

// Overview returns the total quote count, total favorite count, and the set
// of distinct categories currently present among quotes (order unspecified).
// Any of the three reads failing fails the whole call.
func (s *StatsService) Overview(ctx context.Context) (totalQuotes, totalFavorites int64, categories []string, err error) {
	if totalQuotes, err = repo.CountQuotes(ctx, s.DB); err != nil {
		return 0, 0, nil, err
	}
	if totalFavorites, err = repo.CountAllFavorites(ctx, s.DB); err != nil {
		return 0, 0, nil, err
	}
	if categories, err = repo.DistinctCategories(ctx, s.DB); err != nil {
		return 0, 0, nil, err
	}
	return totalQuotes, totalFavorites, categories, nil
}
