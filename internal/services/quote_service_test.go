package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/cloudquotes/go-quotes-backend/internal/domain"
)

// stubQuoteRepo lets each test control repository behavior without a DB.
type stubQuoteRepo struct {
	create   func(ctx context.Context, db *gorm.DB, text, author, category string) (*domain.Quote, error)
	list     func(ctx context.Context, db *gorm.DB) ([]domain.Quote, error)
	random   func(ctx context.Context, db *gorm.DB) (*domain.Quote, error)
	randomBy func(ctx context.Context, db *gorm.DB, category string) (*domain.Quote, error)
}

func (s stubQuoteRepo) CreateQuote(ctx context.Context, db *gorm.DB, text, author, category string) (*domain.Quote, error) {
	return s.create(ctx, db, text, author, category)
}
func (s stubQuoteRepo) ListQuotes(ctx context.Context, db *gorm.DB) ([]domain.Quote, error) {
	return s.list(ctx, db)
}
func (s stubQuoteRepo) RandomQuote(ctx context.Context, db *gorm.DB) (*domain.Quote, error) {
	return s.random(ctx, db)
}
func (s stubQuoteRepo) RandomQuoteByCategory(ctx context.Context, db *gorm.DB, category string) (*domain.Quote, error) {
	return s.randomBy(ctx, db, category)
}

func TestSubmit_MissingText_RejectedWithoutInsert(t *testing.T) {
	called := false
	svc := NewQuoteService(nil, stubQuoteRepo{
		create: func(context.Context, *gorm.DB, string, string, string) (*domain.Quote, error) {
			called = true
			return nil, nil
		},
	})

	if _, err := svc.Submit(context.Background(), "", "Bob", ""); !errors.Is(err, ErrQuoteFieldsRequired) {
		t.Fatalf("expected ErrQuoteFieldsRequired, got %v", err)
	}
	if _, err := svc.Submit(context.Background(), "Test", "", ""); !errors.Is(err, ErrQuoteFieldsRequired) {
		t.Fatalf("expected ErrQuoteFieldsRequired, got %v", err)
	}
	if called {
		t.Fatalf("repo must not be called when validation fails")
	}
}

func TestSubmit_WhitespacePassesPresenceCheck(t *testing.T) {
	// Presence check only: " " is a value, matching the original contract.
	var gotText, gotAuthor string
	svc := NewQuoteService(nil, stubQuoteRepo{
		create: func(_ context.Context, _ *gorm.DB, text, author, category string) (*domain.Quote, error) {
			gotText, gotAuthor = text, author
			return &domain.Quote{ID: 1, Text: text, Author: author, Category: category}, nil
		},
	})

	if _, err := svc.Submit(context.Background(), " ", " ", "cloud"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if gotText != " " || gotAuthor != " " {
		t.Fatalf("values must be stored untrimmed: %q %q", gotText, gotAuthor)
	}
}

func TestSubmit_EmptyCategoryDefaultsToGeneral(t *testing.T) {
	var gotCategory string
	svc := NewQuoteService(nil, stubQuoteRepo{
		create: func(_ context.Context, _ *gorm.DB, text, author, category string) (*domain.Quote, error) {
			gotCategory = category
			return &domain.Quote{ID: 1, Text: text, Author: author, Category: category}, nil
		},
	})

	q, err := svc.Submit(context.Background(), "Test", "Bob", "")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if gotCategory != DefaultCategory || q.Category != "general" {
		t.Fatalf("expected default category %q, got %q", DefaultCategory, gotCategory)
	}

	// Explicit category is kept as-is.
	if _, err := svc.Submit(context.Background(), "Test", "Bob", "devops"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if gotCategory != "devops" {
		t.Fatalf("explicit category overridden: %q", gotCategory)
	}
}

func TestRandom_MapsRecordNotFoundToErrNoQuotes(t *testing.T) {
	svc := NewQuoteService(nil, stubQuoteRepo{
		random: func(context.Context, *gorm.DB) (*domain.Quote, error) {
			return nil, gorm.ErrRecordNotFound
		},
	})
	if _, err := svc.Random(context.Background()); !errors.Is(err, ErrNoQuotes) {
		t.Fatalf("expected ErrNoQuotes, got %v", err)
	}
}

func TestRandom_PropagatesStoreErrors(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewQuoteService(nil, stubQuoteRepo{
		random: func(context.Context, *gorm.DB) (*domain.Quote, error) {
			return nil, boom
		},
	})
	if _, err := svc.Random(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected raw store error, got %v", err)
	}
}

func TestRandomByCategory_MapsRecordNotFoundToErrNoQuotes(t *testing.T) {
	svc := NewQuoteService(nil, stubQuoteRepo{
		randomBy: func(_ context.Context, _ *gorm.DB, category string) (*domain.Quote, error) {
			if category == "cloud" {
				return &domain.Quote{ID: 1, Category: "cloud"}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	})

	q, err := svc.RandomByCategory(context.Background(), "cloud")
	if err != nil || q.Category != "cloud" {
		t.Fatalf("RandomByCategory(cloud) = %v, %v", q, err)
	}
	if _, err := svc.RandomByCategory(context.Background(), "Cloud"); !errors.Is(err, ErrNoQuotes) {
		t.Fatalf("expected ErrNoQuotes for unmatched category, got %v", err)
	}
}

func TestList_PassesThrough(t *testing.T) {
	want := []domain.Quote{{ID: 1}, {ID: 2}}
	svc := NewQuoteService(nil, stubQuoteRepo{
		list: func(context.Context, *gorm.DB) ([]domain.Quote, error) {
			return want, nil
		},
	})
	got, err := svc.List(context.Background())
	if err != nil || len(got) != 2 {
		t.Fatalf("List = %v, %v", got, err)
	}
}
