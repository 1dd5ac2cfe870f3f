// Copyright (c) 2026 The Inkwell Authors
// All rights reserved. See LICENSE for details.

// Package models defines the persisted data shapes and the presentation
// values derived from them. Derived values are free functions over the
// plain records, never methods — what is stored stays separate from what
// is shown.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultSummaryLen is the summary length used by the post list view.
const DefaultSummaryLen = 50

// summaryMarker is appended to a summary when the body was truncated.
const summaryMarker = "..."

// Post represents a single blog entry. ID is assigned by the database on
// insert and never changes afterwards.
type Post struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostURL returns the canonical path for a post's detail page.
func PostURL(id uuid.UUID) string {
	return "/posts/" + id.String()
}

// Summarize returns the first maxLen runes of body, with a trailing
// ellipsis marker when truncation occurred. A body that already fits is
// returned unchanged, without the marker. Lengths are measured in runes so
// multi-byte text is never cut mid-character.
func Summarize(body string, maxLen int) string {
	runes := []rune(body)
	if len(runes) <= maxLen {
		return body
	}
	return string(runes[:maxLen]) + summaryMarker
}
