package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cloudquotes/go-quotes-backend/internal/domain"
)

func newServiceDB(t *testing.T) *gorm.DB {
	t.Helper()

	// The pragma rides on the DSN so every pooled connection enforces FKs.
	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("svc_test_%d.db", time.Now().UnixNano())) +
		"?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := db.AutoMigrate(&domain.Quote{}, &domain.Favorite{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func seedQuote(t *testing.T, db *gorm.DB) domain.Quote {
	t.Helper()
	q := domain.Quote{Text: "t", Author: "a", Category: "general"}
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("seed quote: %v", err)
	}
	return q
}

func TestFavoriteAdd_MissingFields(t *testing.T) {
	svc := &FavoriteService{DB: newServiceDB(t)}

	if _, err := svc.Add(context.Background(), 0, "alice"); !errors.Is(err, ErrFavoriteFieldsRequired) {
		t.Fatalf("expected ErrFavoriteFieldsRequired for zero quote id, got %v", err)
	}
	if _, err := svc.Add(context.Background(), 1, ""); !errors.Is(err, ErrFavoriteFieldsRequired) {
		t.Fatalf("expected ErrFavoriteFieldsRequired for empty user name, got %v", err)
	}
}

func TestFavoriteAdd_Success(t *testing.T) {
	db := newServiceDB(t)
	svc := &FavoriteService{DB: db}
	q := seedQuote(t, db)

	f, err := svc.Add(context.Background(), q.ID, "alice")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if f.ID == 0 || f.QuoteID != q.ID || f.UserName != "alice" {
		t.Fatalf("unexpected favorite: %+v", f)
	}
}

func TestFavoriteAdd_MissingQuote_RawStoreError(t *testing.T) {
	svc := &FavoriteService{DB: newServiceDB(t)}

	_, err := svc.Add(context.Background(), 99999, "alice")
	if err == nil {
		t.Fatalf("expected store error for missing quote")
	}
	// The FK violation must not be mistaken for a validation failure.
	if errors.Is(err, ErrFavoriteFieldsRequired) {
		t.Fatalf("FK violation mapped to validation error: %v", err)
	}
}

func TestFavoriteCount_ThreeFavorites(t *testing.T) {
	db := newServiceDB(t)
	svc := &FavoriteService{DB: db}
	q := seedQuote(t, db)

	for i := 0; i < 3; i++ {
		if _, err := svc.Add(context.Background(), q.ID, "bob"); err != nil {
			t.Fatalf("Add %d: %v", i, err)
		}
	}
	n, err := svc.Count(context.Background(), q.ID)
	if err != nil || n != 3 {
		t.Fatalf("Count = %d, %v; want 3, nil", n, err)
	}
}

func TestFavoriteCount_UnknownQuoteIsZero(t *testing.T) {
	svc := &FavoriteService{DB: newServiceDB(t)}
	n, err := svc.Count(context.Background(), 12345)
	if err != nil || n != 0 {
		t.Fatalf("Count = %d, %v; want 0, nil", n, err)
	}
}
