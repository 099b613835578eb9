// Package services – QuoteService
//
// This file implements the QuoteService, which manages quote retrieval and
// submission. It applies the category default on submission, enforces the
// presence checks for user-submitted quotes, and maps repository not-found
// results to service-level sentinels so handlers can translate them to HTTP
// statuses consistently.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/cloudquotes/go-quotes-backend/internal/domain"
)

// DefaultCategory is applied when a quote submission omits the category.
const DefaultCategory = "general"

// QuoteRepo defines the repository contract required by QuoteService.
// Implementations are responsible for persistence of quote rows.
type QuoteRepo interface {
	// CreateQuote inserts a new quote row and returns the persisted record.
	CreateQuote(ctx context.Context, db *gorm.DB, text, author, category string) (*domain.Quote, error)

	// ListQuotes returns every quote ordered by ascending id.
	ListQuotes(ctx context.Context, db *gorm.DB) ([]domain.Quote, error)

	// RandomQuote selects one quote uniformly at random from all rows.
	RandomQuote(ctx context.Context, db *gorm.DB) (*domain.Quote, error)

	// RandomQuoteByCategory selects one quote uniformly at random among rows
	// with exactly the given category.
	RandomQuoteByCategory(ctx context.Context, db *gorm.DB, category string) (*domain.Quote, error)
}

// QuoteService provides quote-level operations: random selection, listing,
// and submission. It is stateless per request; the only shared state is the
// database handle.
type QuoteService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the quote repository used by this service.
	Repo QuoteRepo
}

// NewQuoteService constructs a QuoteService bound to the given handle and
// repository.
func NewQuoteService(db *gorm.DB, r QuoteRepo) *QuoteService {
	return &QuoteService{DB: db, Repo: r}
}

// Random returns one quote selected uniformly at random from all stored
// quotes. It returns ErrNoQuotes when the table is empty.
func (s *QuoteService) Random(ctx context.Context) (*domain.Quote, error) {
	q, err := s.Repo.RandomQuote(ctx, s.DB)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoQuotes
		}
		return nil, err
	}
	return q, nil
}

// RandomByCategory returns one quote selected uniformly at random among
// quotes whose category exactly equals category. Matching is case-sensitive
// with no normalization. It returns ErrNoQuotes when nothing matches.
func (s *QuoteService) RandomByCategory(ctx context.Context, category string) (*domain.Quote, error) {
	q, err := s.Repo.RandomQuoteByCategory(ctx, s.DB, category)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoQuotes
		}
		return nil, err
	}
	return q, nil
}

// List returns every stored quote ordered by ascending id.
func (s *QuoteService) List(ctx context.Context) ([]domain.Quote, error) {
	return s.Repo.ListQuotes(ctx, s.DB)
}

// Submit validates and persists a user-submitted quote.
//
// Text and author must both be non-empty; otherwise ErrQuoteFieldsRequired
// is returned and nothing is stored. The check is deliberately presence-only
// (no trimming, no type tightening) to preserve the accepted/rejected input
// boundary of the original contract. An empty category falls back to
// DefaultCategory.
func (s *QuoteService) Submit(ctx context.Context, text, author, category string) (*domain.Quote, error) {
	if text == "" || author == "" {
		return nil, ErrQuoteFieldsRequired
	}
	if category == "" {
		category = DefaultCategory
	}
	return s.Repo.CreateQuote(ctx, s.DB, text, author, category)
}
