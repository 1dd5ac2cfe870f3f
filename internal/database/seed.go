package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with a couple of sample posts so a fresh
// development instance has something to show. No-op if any posts exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM posts").Scan(&count); err != nil {
		return fmt.Errorf("seed check posts: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	samples := []struct {
		title, body string
	}{
		{
			"Welcome to Inkwell",
			"This is your first post. Bodies are written in **Markdown** and rendered on the detail page.\n\nEdit or delete this post from the list view.",
		},
		{
			"A second post",
			"Lists show the newest post first, with a short summary of the body. Click through to read the whole thing.",
		},
	}

	for _, s := range samples {
		if _, err := db.Exec(
			`INSERT INTO posts (title, body) VALUES ($1, $2)`, s.title, s.body,
		); err != nil {
			return fmt.Errorf("seed insert post: %w", err)
		}
	}

	slog.Info("database seeded with sample posts", "count", len(samples))
	return nil
}
