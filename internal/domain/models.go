// Package domain defines the persistence models for quotes and favorites.
// These types are mapped with GORM and form the core data layer of the
// CloudQuotes application.
package domain

import "time"

// Quote represents a stored quotation with author and category metadata.
// Quotes are created either by the startup seed step or by user submission,
// and are never updated or deleted through the public API.
//
// Fields:
//   - ID: store-assigned autoincrement primary key; monotonically increasing,
//     never reused.
//   - Text: full quote text (required).
//   - Author: person the quote is attributed to (required).
//   - Category: free-form grouping label; defaults to "general" when a
//     submission omits it (applied in the service layer).
//   - CreatedAt: set once on insert, never mutated.
type Quote struct {
	ID        int       `json:"id"         gorm:"primaryKey;autoIncrement"`
	Text      string    `json:"text"       gorm:"type:text;not null"`
	Author    string    `json:"author"     gorm:"type:varchar(100);not null"`
	Category  string    `json:"category"   gorm:"type:varchar(50);index"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Quote.
func (Quote) TableName() string { return "quotes" }

// Favorite represents a named user's endorsement of one quote. There is no
// uniqueness constraint: the same user may favorite the same quote more than
// once, and the favorite count for a quote is simply the number of rows
// referencing it.
//
// Fields:
//   - ID: store-assigned autoincrement primary key.
//   - QuoteID: foreign key to the favorited quote; must reference an existing
//     quote at insert time (enforced by the store, not the service).
//   - UserName: name supplied by the favoriting user.
//   - CreatedAt: set once on insert.
type Favorite struct {
	ID        int       `json:"id"         gorm:"primaryKey;autoIncrement"`
	QuoteID   int       `json:"quote_id"   gorm:"index"`
	UserName  string    `json:"user_name"  gorm:"type:varchar(100)"`
	CreatedAt time.Time `json:"created_at"`

	// Quote is the referenced quote. The association exists only to emit the
	// foreign-key constraint on migration; no cascade behavior is attached.
	Quote Quote `json:"-" gorm:"foreignKey:QuoteID;references:ID"`
}

// TableName returns the database table name for Favorite.
func (Favorite) TableName() string { return "favorites" }
