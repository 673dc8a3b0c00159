package handler

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
)

// Renderer executes per-page template sets. Each entry pairs the shared
// layout with one page template, keyed by the page file name.
type Renderer struct {
	templates map[string]*template.Template
	logger    *slog.Logger
}

func NewRenderer(templates map[string]*template.Template, logger *slog.Logger) *Renderer {
	return &Renderer{templates: templates, logger: logger}
}

// LoadTemplates builds the per-page template sets from dir. Per-page sets
// keep {{define "content"}} blocks from colliding across pages.
func LoadTemplates(dir string) (map[string]*template.Template, error) {
	layout := dir + "/layout.html"
	pages := []string{"home.html", "auth.html", "listings.html", "listing_detail.html", "not_found.html", "error.html"}
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.ParseFiles(layout, dir+"/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		templates[page] = tmpl
	}
	return templates, nil
}

func (re *Renderer) Render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := re.templates[name]
	if !ok {
		re.logger.Error("template not found", "name", name)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		re.logger.Error("template render", "name", name, "error", err)
	}
}

// NotFound renders the generic not-found page for unmatched routes.
func (re *Renderer) NotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	re.Render(w, "not_found.html", map[string]any{"Title": "Not Found"})
}

// Error renders the generic failure page. Internal detail never reaches
// the client; callers log it first.
func (re *Renderer) Error(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	re.Render(w, "error.html", map[string]any{"Title": "Error"})
}

// ErrorBody writes only the error page body, for callers that have already
// set a status code.
func (re *Renderer) ErrorBody(w http.ResponseWriter) {
	re.Render(w, "error.html", map[string]any{"Title": "Error"})
}
