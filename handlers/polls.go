// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/glasanje/views"
)

type PollHandler struct {
	pages
	store PollStore
}

func NewPollHandler(s PollStore, v *views.Views) *PollHandler {
	return &PollHandler{pages: pages{views: v}, store: s}
}

// Index handles GET / and GET /index.html
// Lists every poll with a link to its voting page
func (h *PollHandler) Index(w http.ResponseWriter, r *http.Request) {
	polls, err := h.store.Polls(r.Context())
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	h.render(w, http.StatusOK, views.PageIndex, views.IndexPage{Polls: polls})
}

// Poll handles GET /glasanje?pollID=<id>
// Shows the poll message and its options in id order
func (h *PollHandler) Poll(w http.ResponseWriter, r *http.Request) {
	pollID, ok := h.queryID(w, r, "pollID", msgBadPollID)
	if !ok {
		return
	}

	poll, err := h.store.Poll(r.Context(), pollID)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	options, err := h.store.Options(r.Context(), pollID)
	if err != nil {
		h.storeError(w, r, err)
		return
	}

	h.render(w, http.StatusOK, views.PageVote, views.VotePage{Poll: poll, Options: options})
}
