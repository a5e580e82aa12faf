// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/glasanje/views"
)

const keepAlive = 30 * time.Second

type StreamHandler struct {
	pages
	store  PollStore
	events Subscriber
}

func NewStreamHandler(s PollStore, v *views.Views, events Subscriber) *StreamHandler {
	return &StreamHandler{pages: pages{views: v}, store: s, events: events}
}

// Stream handles GET /glasanje-stream?pollID=<id>
// Sends a "vote" server-sent event for every vote on the poll
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	pollID, ok := h.queryID(w, r, "pollID", msgBadPollID)
	if !ok {
		return
	}
	if _, err := h.store.Poll(r.Context(), pollID); err != nil {
		h.storeError(w, r, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.renderError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	events, cancel := h.events.Subscribe(r.Context(), pollID)
	defer cancel()
	if events == nil {
		if r.Context().Err() != nil {
			return
		}
		slog.Warn("vote stream unavailable", "poll_id", pollID)
		h.renderError(w, http.StatusServiceUnavailable, msgStreamDown)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	ticker := time.NewTicker(keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case e, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(e)
			if err != nil {
				slog.Error("failed to encode vote event", "error", err)
				continue
			}
			fmt.Fprintf(w, "event: vote\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}
