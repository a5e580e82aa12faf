// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/glasanje/models"
)

//go:embed templates/*.html
var files embed.FS

const (
	PageIndex   = "index.html"
	PageVote    = "vote.html"
	PageResults = "results.html"
	PageError   = "error.html"
)

var pages = []string{PageIndex, PageVote, PageResults, PageError}

type IndexPage struct {
	Polls []models.Poll
}

type VotePage struct {
	Poll    models.Poll
	Options []models.Option
}

type ResultsPage struct {
	Poll    models.Poll
	Options []models.Option
	Winners []models.Option
	Total   int64
}

type ErrorPage struct {
	Message string
}

// Views holds one parsed template set per page, each sharing the layout.
type Views struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"comma":   humanize.Comma,
	"percent": percent,
}

func New() (*Views, error) {
	v := &Views{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		t, err := template.New(page).Funcs(funcs).ParseFS(files, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", page, err)
		}
		v.pages[page] = t
	}
	return v, nil
}

// Render executes page into a buffer and only then writes the response, so a
// template failure never leaves a half-written page.
func (v *Views) Render(w http.ResponseWriter, status int, page string, data any) error {
	t, ok := v.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func percent(votes, total int64) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(votes)*100/float64(total))
}
