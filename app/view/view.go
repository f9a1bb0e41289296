package view

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"path/filepath"

	"storemerch/utils"
)

// pageNames lists the page templates parsed at startup. Each page file
// defines a "content" block rendered inside layout.html.
var pageNames = []string{
	"home",
	"categories",
	"category",
	"products",
	"product",
	"cart",
	"notfound",
	"error",
}

// Renderer renders the server-side pages. Templates are parsed once at
// startup; a failed render degrades to a plain error response instead of a
// half-written page.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses all page templates from dir
func NewRenderer(dir string) (*Renderer, error) {
	funcs := template.FuncMap{
		"formatPrice": utils.FormatPrice,
		"parsePrice":  utils.ParsePrice,
	}

	templates := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFiles(
			filepath.Join(dir, "layout.html"),
			filepath.Join(dir, name+".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		templates[name] = tmpl
	}

	log.Printf("✓ Parsed %d page templates", len(templates))
	return &Renderer{templates: templates}, nil
}

// Render writes the named page. The template is executed into a buffer
// first so an execution error never reaches the client as a broken page.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data interface{}) {
	tmpl, ok := r.templates[name]
	if !ok {
		log.Printf("❌ Render: unknown template %q", name)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		log.Printf("❌ Render: failed to execute template %q: %v", name, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// RenderError writes the generic "something went wrong" view with a retry
// affordance
func (r *Renderer) RenderError(w http.ResponseWriter, message string) {
	r.Render(w, http.StatusInternalServerError, "error", struct {
		Title     string
		CartCount int
		Message   string
	}{
		Title:   "Something went wrong",
		Message: message,
	})
}

// RenderNotFound writes the dedicated not-found view, distinct from the
// error view
func (r *Renderer) RenderNotFound(w http.ResponseWriter, message string) {
	r.Render(w, http.StatusNotFound, "notfound", struct {
		Title     string
		CartCount int
		Message   string
	}{
		Title:   "Not found",
		Message: message,
	})
}
