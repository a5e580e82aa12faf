// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/danielhkuo/glasanje/middleware"
	"github.com/danielhkuo/glasanje/models"
	"github.com/danielhkuo/glasanje/results"
	"github.com/danielhkuo/glasanje/store"
	"github.com/danielhkuo/glasanje/views"
)

type ResultsHandler struct {
	pages
	store PollStore
}

func NewResultsHandler(s PollStore, v *views.Views) *ResultsHandler {
	return &ResultsHandler{pages: pages{views: v}, store: s}
}

// summary loads a poll and its options sorted for display.
func (h *ResultsHandler) summary(r *http.Request, pollID int64) (models.ResultsResponse, error) {
	poll, err := h.store.Poll(r.Context(), pollID)
	if err != nil {
		return models.ResultsResponse{}, err
	}
	options, err := h.store.Options(r.Context(), pollID)
	if err != nil {
		return models.ResultsResponse{}, err
	}
	return results.Summarize(poll, options), nil
}

// Results handles GET /glasanje-rezultati?pollID=<id>
// Shows vote counts sorted by votes and every option tied for first
func (h *ResultsHandler) Results(w http.ResponseWriter, r *http.Request) {
	pollID, ok := h.queryID(w, r, "pollID", msgBadPollID)
	if !ok {
		return
	}

	sum, err := h.summary(r, pollID)
	if err != nil {
		h.storeError(w, r, err)
		return
	}

	h.render(w, http.StatusOK, views.PageResults, views.ResultsPage{
		Poll:    sum.Poll,
		Options: sum.Options,
		Winners: sum.Winners,
		Total:   sum.Total,
	})
}

// Chart handles GET /glasanje-grafika?pollID=<id>
// Returns a PNG pie chart of vote shares
func (h *ResultsHandler) Chart(w http.ResponseWriter, r *http.Request) {
	pollID, ok := h.queryID(w, r, "pollID", msgBadPollID)
	if !ok {
		return
	}

	options, err := h.store.Options(r.Context(), pollID)
	if err != nil {
		h.storeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := results.RenderPieChart(&buf, results.SortByVotes(options)); err != nil {
		slog.Error("failed to render chart", "poll_id", pollID, "error", err)
		h.renderError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Debug("failed to write chart", "poll_id", pollID, "error", err)
	}
}

// Spreadsheet handles GET /glasanje-xls?pollID=<id>
// Returns the results as a downloadable xlsx workbook
func (h *ResultsHandler) Spreadsheet(w http.ResponseWriter, r *http.Request) {
	pollID, ok := h.queryID(w, r, "pollID", msgBadPollID)
	if !ok {
		return
	}

	options, err := h.store.Options(r.Context(), pollID)
	if err != nil {
		h.storeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := results.WriteSpreadsheet(&buf, results.SortByVotes(options)); err != nil {
		slog.Error("failed to build spreadsheet", "poll_id", pollID, "error", err)
		h.renderError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	w.Header().Set("Content-Type", results.SpreadsheetContentType)
	w.Header().Set("Content-Disposition",
		mime.FormatMediaType("attachment", map[string]string{"filename": results.SpreadsheetName}))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Debug("failed to write spreadsheet", "poll_id", pollID, "error", err)
	}
}

// API handles GET /api/polls/{id}/results
// Returns the same summary as the results page as JSON
func (h *ResultsHandler) API(w http.ResponseWriter, r *http.Request) {
	pollID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgBadPollID)
		return
	}

	sum, err := h.summary(r, pollID)
	if errors.Is(err, store.ErrPollNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to load results", "poll_id", pollID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, sum)
}
