package services

import (
	"context"
	"path/filepath"
	"sort"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cloudquotes/go-quotes-backend/internal/domain"
)

func TestStatsOverview_CountsAndCategorySet(t *testing.T) {
	db := newServiceDB(t)
	svc := &StatsService{DB: db}

	seed := []domain.Quote{
		{Text: "a", Author: "x", Category: "cloud"},
		{Text: "b", Author: "x", Category: "cloud"},
		{Text: "c", Author: "x", Category: "programming"},
		{Text: "d", Author: "x", Category: "devops"},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed quote %d: %v", i, err)
		}
	}
	for _, qid := range []int{seed[0].ID, seed[0].ID, seed[2].ID} {
		if err := db.Create(&domain.Favorite{QuoteID: qid, UserName: "u"}).Error; err != nil {
			t.Fatalf("seed favorite: %v", err)
		}
	}

	quotes, favorites, cats, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if quotes != 4 || favorites != 3 {
		t.Fatalf("Overview counts = %d quotes, %d favorites; want 4, 3", quotes, favorites)
	}
	sort.Strings(cats)
	want := []string{"cloud", "devops", "programming"}
	if len(cats) != len(want) {
		t.Fatalf("categories = %v; want %v", cats, want)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Fatalf("categories = %v; want %v", cats, want)
		}
	}
}

func TestStatsOverview_EmptyStore(t *testing.T) {
	svc := &StatsService{DB: newServiceDB(t)}

	quotes, favorites, cats, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if quotes != 0 || favorites != 0 || len(cats) != 0 {
		t.Fatalf("expected zeros on empty store, got %d/%d/%v", quotes, favorites, cats)
	}
}

func TestStatsOverview_AnyReadFailingFailsAll(t *testing.T) {
	// No migrations: every read hits a missing table.
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "bare.db")), &gorm.Config{
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

	svc := &StatsService{DB: db}
	if _, _, _, err := svc.Overview(context.Background()); err == nil {
		t.Fatalf("expected error when the store is unavailable")
	}
}
