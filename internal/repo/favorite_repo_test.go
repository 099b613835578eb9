package repo

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"
)

// newFavoriteRepoDB opens the store through OpenSQLite so the tests run with
// the same DSN-encoded PRAGMAs (foreign keys in particular) as production.
func newFavoriteRepoDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "favorite_repo_test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestCreateFavorite_Success(t *testing.T) {
	db := newFavoriteRepoDB(t)

	q, err := CreateQuote(context.Background(), db, "t", "a", "general")
	if err != nil {
		t.Fatalf("seed quote: %v", err)
	}

	start := time.Now().UTC().Add(-time.Minute)
	f, err := CreateFavorite(context.Background(), db, q.ID, "alice")
	if err != nil {
		t.Fatalf("CreateFavorite: %v", err)
	}
	if f.ID == 0 || f.QuoteID != q.ID || f.UserName != "alice" {
		t.Fatalf("unexpected Favorite fields: %+v", f)
	}
	if f.CreatedAt.Before(start) {
		t.Fatalf("CreatedAt seems unset: %v", f.CreatedAt)
	}
}

func TestCreateFavorite_MissingQuote_FKViolation(t *testing.T) {
	db := newFavoriteRepoDB(t)

	f, err := CreateFavorite(context.Background(), db, 424242, "alice")
	if err == nil || f != nil {
		t.Fatalf("expected FK violation for missing quote, got fav=%v err=%v", f, err)
	}
}

func TestCreateFavorite_MissingQuote_FKViolationOnSecondPooledConnection(t *testing.T) {
	db := newFavoriteRepoDB(t)

	// Pin the first pooled connection inside an open transaction so the
	// insert below is served by a different connection, which must enforce
	// the foreign key just the same.
	tx := db.Begin()
	if tx.Error != nil {
		t.Fatalf("begin: %v", tx.Error)
	}
	defer tx.Rollback()

	f, err := CreateFavorite(context.Background(), db, 424242, "alice")
	if err == nil || f != nil {
		t.Fatalf("expected FK violation on pooled connection, got fav=%+v err=%v", f, err)
	}
}

func TestCountFavorites_AccumulatesWithoutUniqueness(t *testing.T) {
	db := newFavoriteRepoDB(t)

	q, err := CreateQuote(context.Background(), db, "t", "a", "general")
	if err != nil {
		t.Fatalf("seed quote: %v", err)
	}

	// Same user favoriting the same quote three times is allowed.
	for i := 0; i < 3; i++ {
		if _, err := CreateFavorite(context.Background(), db, q.ID, "bob"); err != nil {
			t.Fatalf("favorite %d: %v", i, err)
		}
	}

	n, err := CountFavorites(context.Background(), db, q.ID)
	if err != nil {
		t.Fatalf("CountFavorites: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected count 3, got %d", n)
	}
}

func TestCountFavorites_UnknownQuote_ZeroNoError(t *testing.T) {
	db := newFavoriteRepoDB(t)

	n, err := CountFavorites(context.Background(), db, 999)
	if err != nil {
		t.Fatalf("CountFavorites: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected count 0 for unknown quote, got %d", n)
	}
}
