// Copyright (c) 2026 The Inkwell Authors
// All rights reserved. See LICENSE for details.

// Package store is the sole boundary to the database. A nil result with a
// nil error means the requested row does not exist — callers distinguish
// that from a transport failure, which is always a non-nil error.
package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"inkwell/internal/models"
)

// PostStore handles all post-related database operations.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

// List returns all posts, newest first.
func (s *PostStore) List() ([]models.Post, error) {
	rows, err := s.db.Query(`
		SELECT id, title, body, created_at, updated_at
		FROM posts
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Body, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// FindByID retrieves a post by its UUID. Returns nil if not found.
func (s *PostStore) FindByID(id uuid.UUID) (*models.Post, error) {
	p := &models.Post{}
	err := s.db.QueryRow(`
		SELECT id, title, body, created_at, updated_at
		FROM posts WHERE id = $1
	`, id).Scan(&p.ID, &p.Title, &p.Body, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return p, nil
}

// Create inserts a new post and returns it with the generated ID and
// timestamps.
func (s *PostStore) Create(title, body string) (*models.Post, error) {
	p := &models.Post{}
	err := s.db.QueryRow(`
		INSERT INTO posts (title, body)
		VALUES ($1, $2)
		RETURNING id, title, body, created_at, updated_at
	`, title, body).Scan(&p.ID, &p.Title, &p.Body, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return p, nil
}

// UpdateByID replaces a post's title and body entirely and returns the
// state after the update. Returns nil if no post with the id exists.
func (s *PostStore) UpdateByID(id uuid.UUID, title, body string) (*models.Post, error) {
	p := &models.Post{}
	err := s.db.QueryRow(`
		UPDATE posts SET title = $1, body = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, title, body, created_at, updated_at
	`, title, body, id).Scan(&p.ID, &p.Title, &p.Body, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return p, nil
}

// DeleteByID removes a post. The returned bool reports whether a row was
// actually deleted; false with a nil error means the id did not exist.
func (s *PostStore) DeleteByID(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete post rows affected: %w", err)
	}
	return n > 0, nil
}
