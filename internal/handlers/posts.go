// Copyright (c) 2026 The Inkwell Authors
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the blog. Each handler
// composes validation and store calls for one action and ends in exactly
// one response: a rendered view, a redirect, or an error status.
package handlers

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"inkwell/internal/markdown"
	"inkwell/internal/models"
	"inkwell/internal/render"
	"inkwell/internal/store"
)

// Posts groups the post CRUD handlers and their dependencies.
type Posts struct {
	renderer *render.Renderer
	posts    *store.PostStore
}

// NewPosts creates a new Posts handler group with the given dependencies.
func NewPosts(renderer *render.Renderer, posts *store.PostStore) *Posts {
	return &Posts{renderer: renderer, posts: posts}
}

// postListItem pairs a post with its derived presentation values for the
// list view.
type postListItem struct {
	models.Post
	URL     string
	Summary string
}

// List renders the post index, newest first.
func (h *Posts) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.List()
	if err != nil {
		slog.Error("list posts failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	items := make([]postListItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, postListItem{
			Post:    p,
			URL:     models.PostURL(p.ID),
			Summary: models.Summarize(p.Body, models.DefaultSummaryLen),
		})
	}

	h.renderer.Page(w, "posts_list", &render.PageData{
		Title: "Posts",
		Data:  map[string]any{"Posts": items},
	})
}

// Show renders a single post's detail page with its body converted from
// Markdown.
func (h *Posts) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	post, err := h.posts.FindByID(id)
	if err != nil {
		slog.Error("find post failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if post == nil {
		http.NotFound(w, r)
		return
	}

	bodyHTML, err := markdown.ToHTML(post.Body)
	if err != nil {
		slog.Error("render post body failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.renderer.Page(w, "post_detail", &render.PageData{
		Title: post.Title,
		Data: map[string]any{
			"Post":     post,
			"URL":      models.PostURL(post.ID),
			"BodyHTML": template.HTML(bodyHTML),
		},
	})
}

// New renders the empty create form.
func (h *Posts) New(w http.ResponseWriter, r *http.Request) {
	h.renderer.Page(w, "post_form", &render.PageData{
		Title: "New post",
		Data: map[string]any{
			"IsNew":  true,
			"Action": "/posts/new",
		},
	})
}

// Create handles the create-form submission. On validation failure the
// form is re-rendered with the submitted values and the full error list;
// nothing is persisted.
func (h *Posts) Create(w http.ResponseWriter, r *http.Request) {
	title := r.FormValue("title")
	body := r.FormValue("body")

	in := validateNewPost(title, body)
	if !in.Valid() {
		h.renderer.Page(w, "post_form", &render.PageData{
			Title:  "New post",
			Status: http.StatusBadRequest,
			Data: map[string]any{
				"IsNew":  true,
				"Action": "/posts/new",
				"Title":  title,
				"Body":   body,
				"Errors": in.Errors,
			},
		})
		return
	}

	created, err := h.posts.Create(in.Title, in.Body)
	if err != nil {
		slog.Error("create post failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, models.PostURL(created.ID), http.StatusSeeOther)
}

// Edit renders the edit form prefilled with the post's current values.
func (h *Posts) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	post, err := h.posts.FindByID(id)
	if err != nil {
		slog.Error("find post failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if post == nil {
		http.NotFound(w, r)
		return
	}

	h.renderer.Page(w, "post_form", &render.PageData{
		Title: "Edit post",
		Data: map[string]any{
			"IsNew":  false,
			"Action": models.PostURL(post.ID) + "/update",
			"Title":  post.Title,
			"Body":   post.Body,
		},
	})
}

// Update handles the edit-form submission. Validation runs before the
// existence check, so bad input on a missing id still comes back as 400.
func (h *Posts) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	title := r.FormValue("title")
	body := r.FormValue("body")

	in := validateUpdatePost(title, body)
	if !in.Valid() {
		h.renderer.Page(w, "post_form", &render.PageData{
			Title:  "Edit post",
			Status: http.StatusBadRequest,
			Data: map[string]any{
				"IsNew":  false,
				"Action": models.PostURL(id) + "/update",
				"Title":  title,
				"Body":   body,
				"Errors": in.Errors,
			},
		})
		return
	}

	updated, err := h.posts.UpdateByID(id, in.Title, in.Body)
	if err != nil {
		slog.Error("update post failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if updated == nil {
		http.NotFound(w, r)
		return
	}

	http.Redirect(w, r, models.PostURL(updated.ID), http.StatusSeeOther)
}

// Delete removes a post and redirects to the list. Deleting an unknown id
// is a 404, never a 500.
func (h *Posts) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	deleted, err := h.posts.DeleteByID(id)
	if err != nil {
		slog.Error("delete post failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.NotFound(w, r)
		return
	}

	http.Redirect(w, r, "/posts/", http.StatusSeeOther)
}

// parseID reads the {id} URL param. On a malformed id it writes a 400 and
// reports false; the caller must return immediately.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}
