// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file contains the first-run seeding step: when the
// quotes table is empty it is populated with a fixed set of starter rows so
// a fresh deployment has content to serve immediately.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/cloudquotes/go-quotes-backend/internal/domain"
)

// seedQuotes are the starter rows inserted into an empty quotes table.
// Categories are limited to cloud, programming, and devops.
var seedQuotes = []domain.Quote{
	{Text: "The cloud is about how you do computing, not where you do computing.", Author: "Paul Maritz", Category: "cloud"},
	{Text: "There is no cloud, it's just someone else's computer.", Author: "Anonymous", Category: "cloud"},
	{Text: "Code is like humor. When you have to explain it, it's bad.", Author: "Cory House", Category: "programming"},
	{Text: "First, solve the problem. Then, write the code.", Author: "John Johnson", Category: "programming"},
	{Text: "Any fool can write code that a computer can understand. Good programmers write code that humans can understand.", Author: "Martin Fowler", Category: "programming"},
	{Text: "The best thing about a boolean is even if you are wrong, you are only off by a bit.", Author: "Anonymous", Category: "programming"},
	{Text: "Infrastructure as Code is not about automation, it's about documentation.", Author: "Yevgeniy Brikman", Category: "devops"},
	{Text: "In the cloud, you don't buy servers, you buy compute time.", Author: "Werner Vogels", Category: "cloud"},
	{Text: "Simplicity is the soul of efficiency.", Author: "Austin Freeman", Category: "programming"},
	{Text: "Make it work, make it right, make it fast.", Author: "Kent Beck", Category: "programming"},
	{Text: "Cloud computing is a great equalizer.", Author: "Vivek Kundra", Category: "cloud"},
	{Text: "The only way to go fast is to go well.", Author: "Robert C. Martin", Category: "programming"},
	{Text: "Docker is not about containers, it's about packaging and shipping.", Author: "Solomon Hykes", Category: "devops"},
	{Text: "Automation is good, so long as you know exactly where to put the machine off switch.", Author: "Terry Pratchett", Category: "devops"},
	{Text: "The cloud is for everyone. The cloud is a democracy.", Author: "Marc Benioff", Category: "cloud"},
}

// SeedCount is the number of starter quotes inserted on first run.
const SeedCount = 15

// Seed inserts the starter quotes when the quotes table is empty. The check
// and the insert are not guarded against a concurrent cold start in another
// process; within one process Seed runs before the listener starts, so no
// request can observe a partially seeded table. Repeated sequential calls
// are no-ops.
func Seed(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.Quote{}).Count(&count).Error; err != nil {
		return err
	}
	if count != 0 {
		return nil
	}
	rows := make([]domain.Quote, len(seedQuotes))
	copy(rows, seedQuotes)
	return db.WithContext(ctx).Create(&rows).Error
}
