// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Quote model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When no quote matches, the random selectors return
//     gorm.ErrRecordNotFound (also exported here as ErrNotFound).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
//
// Random selection uses the store's ORDER BY RANDOM() LIMIT 1 facility,
// which both PostgreSQL and SQLite support, so the full matching set is
// never loaded into the process.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/cloudquotes/go-quotes-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateQuote inserts a new quote row and returns the persisted record,
// including the store-assigned ID and CreatedAt. The caller is responsible
// for validation and for applying the category default.
func CreateQuote(ctx context.Context, db *gorm.DB, text, author, category string) (*domain.Quote, error) {
	q := &domain.Quote{
		Text:     text,
		Author:   author,
		Category: category,
	}
	if err := db.WithContext(ctx).Create(q).Error; err != nil {
		return nil, err
	}
	return q, nil
}

// ListQuotes returns every quote ordered by ascending id. It returns an
// empty slice when the table is empty. On DB error, it returns the error.
func ListQuotes(ctx context.Context, db *gorm.DB) ([]domain.Quote, error) {
	var out []domain.Quote
	err := db.WithContext(ctx).
		Order("id").
		Find(&out).Error
	return out, err
}

// RandomQuote selects one quote uniformly at random from all rows.
// It returns ErrNotFound when the table is empty.
func RandomQuote(ctx context.Context, db *gorm.DB) (*domain.Quote, error) {
	var q domain.Quote
	err := db.WithContext(ctx).
		Order("RANDOM()").
		First(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// RandomQuoteByCategory selects one quote uniformly at random among rows
// whose category exactly equals the given value (case-sensitive, no
// normalization). It returns ErrNotFound when no row matches.
func RandomQuoteByCategory(ctx context.Context, db *gorm.DB, category string) (*domain.Quote, error) {
	var q domain.Quote
	err := db.WithContext(ctx).
		Where("category = ?", category).
		Order("RANDOM()").
		First(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}
