// Copyright (c) 2026 The Inkwell Authors
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the blog views.
// All page templates are paired with the base layout and parsed once at
// startup from the embedded filesystem.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData holds all data passed to page templates.
type PageData struct {
	Title  string         // Page title for <title> tag
	Status int            // HTTP status to write; 0 means 200 OK
	Data   map[string]any // Page-specific data
}

// Renderer handles template parsing and execution.
type Renderer struct {
	templates map[string]*template.Template
}

// New creates a Renderer by parsing all page templates from the embedded
// filesystem. Each page template is paired with the base layout.
func New() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template)}

	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}

		tmpl, err := template.New("base.html").ParseFS(
			templateFS, "templates/base.html", "templates/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}

		// Strip .html extension for the template name.
		r.templates[name[:len(name)-len(filepath.Ext(name))]] = tmpl
	}

	return r, nil
}

// Page renders a full page with the base layout. The status from PageData
// is written before the body; validation failures re-render forms with a
// 400 status this way.
func (rn *Renderer) Page(w http.ResponseWriter, name string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	status := data.Status
	if status == 0 {
		status = http.StatusOK
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		// Headers are already sent, so the status cannot change; log and
		// let the truncated response surface the problem.
		slog.Error("template execution failed", "template", name, "error", err)
	}
}
