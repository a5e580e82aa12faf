// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/glasanje/models"
)

func TestNew(t *testing.T) {
	v, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, page := range pages {
		if _, ok := v.pages[page]; !ok {
			t.Errorf("page %s not parsed", page)
		}
	}
}

func TestRender(t *testing.T) {
	v, err := New()
	if err != nil {
		t.Fatal(err)
	}

	band := models.Option{ID: 3, PollID: 1, Name: "The Beatles", Link: "https://example.com/song", Votes: 1500, Kind: models.KindBand}
	poll := models.Poll{ID: 1, Title: "Bands <3", Message: "Pick one", Kind: models.KindBand}

	testCases := []struct {
		name     string
		page     string
		data     any
		contains []string
	}{
		{
			name:     "index",
			page:     PageIndex,
			data:     IndexPage{Polls: []models.Poll{poll}},
			contains: []string{`href="/glasanje?pollID=1"`, "Bands &lt;3"},
		},
		{
			name:     "vote",
			page:     PageVote,
			data:     VotePage{Poll: poll, Options: []models.Option{band}},
			contains: []string{"/glasanje-glasaj?pollID=1&id=3", "poslušaj", "Pick one"},
		},
		{
			name: "results",
			page: PageResults,
			data: ResultsPage{Poll: poll, Options: []models.Option{band}, Winners: []models.Option{band}, Total: 1500},
			contains: []string{
				"1,500", "100.0%", "Pobjednik:",
				"/glasanje-grafika?pollID=1", "/glasanje-xls?pollID=1",
			},
		},
		{
			name:     "error",
			page:     PageError,
			data:     ErrorPage{Message: "Poll ID must be a valid integer!"},
			contains: []string{"Poll ID must be a valid integer!"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			if err := v.Render(w, http.StatusOK, tc.page, tc.data); err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("unexpected content type %s", ct)
			}
			body := w.Body.String()
			for _, s := range tc.contains {
				if !strings.Contains(body, s) {
					t.Errorf("expected body to contain %q", s)
				}
			}
		})
	}
}

func TestRender_UnknownPage(t *testing.T) {
	v, err := New()
	if err != nil {
		t.Fatal(err)
	}
	w := httptest.NewRecorder()
	if err := v.Render(w, http.StatusOK, "missing.html", nil); err == nil {
		t.Error("expected error for unknown page")
	}
}

func TestRender_TemplateErrorWritesNothing(t *testing.T) {
	v, err := New()
	if err != nil {
		t.Fatal(err)
	}
	w := httptest.NewRecorder()
	// Wrong data type for the vote page
	if err := v.Render(w, http.StatusOK, PageVote, 42); err == nil {
		t.Fatal("expected render error")
	}
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", w.Body.String())
	}
}

func TestPercent(t *testing.T) {
	if got := percent(1, 3); got != "33.3%" {
		t.Errorf("expected 33.3%%, got %s", got)
	}
	if got := percent(0, 0); got != "0%" {
		t.Errorf("expected 0%%, got %s", got)
	}
}
