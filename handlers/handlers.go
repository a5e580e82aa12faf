// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/glasanje/models"
	"github.com/danielhkuo/glasanje/sse"
	"github.com/danielhkuo/glasanje/store"
	"github.com/danielhkuo/glasanje/views"
)

const (
	msgBadPollID   = "Poll ID must be a valid integer!"
	msgBadOptionID = "ID must be a valid integer!"
	msgNotFound    = "Tražena anketa ne postoji."
	msgNoOption    = "Tražena opcija ne postoji u ovoj anketi."
	msgServerError = "Došlo je do pogreške. Pokušajte ponovno kasnije."
	msgTooMany     = "Previše zahtjeva. Pričekajte trenutak pa pokušajte ponovno."
	msgStreamDown  = "Praćenje rezultata uživo trenutno nije dostupno."
)

// PollStore is the data access the handlers need. *store.Store satisfies it.
type PollStore interface {
	Poll(ctx context.Context, id int64) (models.Poll, error)
	Polls(ctx context.Context) ([]models.Poll, error)
	Options(ctx context.Context, pollID int64) ([]models.Option, error)
	OptionPoll(ctx context.Context, optionID int64) (int64, error)
	Vote(ctx context.Context, optionID int64) error
}

// Publisher receives an event for every stored vote.
type Publisher interface {
	Publish(e sse.VoteEvent)
}

// Subscriber hands out per-poll vote event streams.
type Subscriber interface {
	Subscribe(ctx context.Context, pollID int64) (<-chan sse.VoteEvent, func())
}

// pages renders HTML views and the shared error page.
type pages struct {
	views *views.Views
}

func (p pages) render(w http.ResponseWriter, status int, page string, data any) {
	if err := p.views.Render(w, status, page, data); err != nil {
		slog.Error("failed to render page", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (p pages) renderError(w http.ResponseWriter, status int, message string) {
	p.render(w, status, views.PageError, views.ErrorPage{Message: message})
}

// storeError maps a data access failure to an error page.
func (p pages) storeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrPollNotFound):
		p.renderError(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, store.ErrUnknownOption):
		p.renderError(w, http.StatusNotFound, msgNoOption)
	default:
		slog.Error("store operation failed", "path", r.URL.Path, "error", err)
		p.renderError(w, http.StatusInternalServerError, msgServerError)
	}
}

// queryID reads an integer query parameter. On failure the error page has
// already been written with status 200.
func (p pages) queryID(w http.ResponseWriter, r *http.Request, key, message string) (int64, bool) {
	id, err := strconv.ParseInt(r.URL.Query().Get(key), 10, 64)
	if err != nil {
		slog.Debug("malformed id", "param", key, "value", r.URL.Query().Get(key))
		p.renderError(w, http.StatusOK, message)
		return 0, false
	}
	return id, true
}
