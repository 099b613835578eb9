package repo

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cloudquotes/go-quotes-backend/internal/domain"
)

func newStatsDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("stats_test_%d.db", time.Now().UnixNano()))
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

func TestCounts_EmptyStore(t *testing.T) {
	db := newStatsDB(t)

	nq, err := CountQuotes(context.Background(), db)
	if err != nil || nq != 0 {
		t.Fatalf("CountQuotes = %d, %v; want 0, nil", nq, err)
	}
	nf, err := CountAllFavorites(context.Background(), db)
	if err != nil || nf != 0 {
		t.Fatalf("CountAllFavorites = %d, %v; want 0, nil", nf, err)
	}
	cats, err := DistinctCategories(context.Background(), db)
	if err != nil {
		t.Fatalf("DistinctCategories: %v", err)
	}
	if len(cats) != 0 {
		t.Fatalf("expected no categories, got %v", cats)
	}
}

func TestDistinctCategories_SetSemantics(t *testing.T) {
	db := newStatsDB(t)

	seed := []struct{ text, cat string }{
		{"a", "cloud"}, {"b", "cloud"},
		{"c", "programming"},
		{"d", "devops"}, {"e", "devops"}, {"f", "devops"},
	}
	for _, s := range seed {
		if _, err := CreateQuote(context.Background(), db, s.text, "x", s.cat); err != nil {
			t.Fatalf("seed %q: %v", s.text, err)
		}
	}

	cats, err := DistinctCategories(context.Background(), db)
	if err != nil {
		t.Fatalf("DistinctCategories: %v", err)
	}
	sort.Strings(cats)
	want := []string{"cloud", "devops", "programming"}
	if len(cats) != len(want) {
		t.Fatalf("got %v, want %v", cats, want)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Fatalf("got %v, want %v", cats, want)
		}
	}

	nq, err := CountQuotes(context.Background(), db)
	if err != nil || nq != 6 {
		t.Fatalf("CountQuotes = %d, %v; want 6, nil", nq, err)
	}
}

func TestStatsQueries_Error_NoTables(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "bare.db")
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

	if _, err := CountQuotes(context.Background(), db); err == nil {
		t.Fatalf("expected error counting quotes without table")
	}
	if _, err := CountAllFavorites(context.Background(), db); err == nil {
		t.Fatalf("expected error counting favorites without table")
	}
	if _, err := DistinctCategories(context.Background(), db); err == nil {
		t.Fatalf("expected error listing categories without table")
	}
}
