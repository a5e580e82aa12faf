// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/glasanje/sse"
	"github.com/danielhkuo/glasanje/store"
	"github.com/danielhkuo/glasanje/views"
)

type VotingHandler struct {
	pages
	store  PollStore
	events Publisher
}

func NewVotingHandler(s PollStore, v *views.Views, events Publisher) *VotingHandler {
	return &VotingHandler{pages: pages{views: v}, store: s, events: events}
}

// Vote handles GET /glasanje-glasaj?pollID=<id>&id=<optionID>
// Adds one vote and redirects to the poll's results
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	pollID, ok := h.queryID(w, r, "pollID", msgBadPollID)
	if !ok {
		return
	}
	optionID, ok := h.queryID(w, r, "id", msgBadOptionID)
	if !ok {
		return
	}

	// The option must belong to the poll named in the URL
	owner, err := h.store.OptionPoll(r.Context(), optionID)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	if owner != pollID {
		slog.Warn("cross-poll vote rejected", "poll_id", pollID, "option_id", optionID, "owner", owner)
		h.storeError(w, r, store.ErrUnknownOption)
		return
	}

	if err := h.store.Vote(r.Context(), optionID); err != nil {
		h.storeError(w, r, err)
		return
	}
	slog.Info("vote recorded", "poll_id", pollID, "option_id", optionID)

	if h.events != nil {
		h.events.Publish(sse.VoteEvent{PollID: pollID, OptionID: optionID})
	}

	http.Redirect(w, r, fmt.Sprintf("/glasanje-rezultati?pollID=%d", pollID), http.StatusFound)
}

// TooManyRequests renders the page shown when the vote rate limit trips.
func (h *VotingHandler) TooManyRequests(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, http.StatusTooManyRequests, msgTooMany)
}
