// Package router sets up all HTTP routes and middleware for the Inkwell
// server.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/handlers"
	"inkwell/internal/middleware"
	"inkwell/web"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(posts *handlers.Posts) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check.
	r.Get("/health", healthHandler)

	// Static assets (embedded).
	staticFS, _ := fs.Sub(web.StaticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	// The blog lives under /posts/.
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/posts/", http.StatusSeeOther)
	})

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", posts.List)
		r.Get("/new", posts.New)
		r.Post("/new", posts.Create)
		r.Get("/{id}", posts.Show)
		r.Get("/{id}/edit", posts.Edit)

		// Browsers only submit GET/POST forms, so update and delete are
		// reachable both by method routing and by POST action paths.
		r.Put("/{id}", posts.Update)
		r.Post("/{id}/update", posts.Update)
		r.Delete("/{id}", posts.Delete)
		r.Post("/{id}/delete", posts.Delete)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
