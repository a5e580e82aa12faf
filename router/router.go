// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/danielhkuo/glasanje/cliparse"
	"github.com/danielhkuo/glasanje/handlers"
	"github.com/danielhkuo/glasanje/middleware"
	"github.com/danielhkuo/glasanje/sse"
	"github.com/danielhkuo/glasanje/views"
)

// Votes allowed per client IP.
const (
	VoteRate  rate.Limit = 10
	VoteBurst            = 20
)

func NewRouter(store handlers.PollStore, v *views.Views, broker *sse.Broker, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(store, v)
	votingHandler := handlers.NewVotingHandler(store, v, broker)
	resultsHandler := handlers.NewResultsHandler(store, v)
	streamHandler := handlers.NewStreamHandler(store, v, broker)

	voteLimiter := middleware.NewRateLimiter(VoteRate, VoteBurst)
	voteLimiter.TrustProxy = cfg.TrustProxy

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Poll list
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pollHandler.Index))
	mux.HandleFunc("GET /index.html", middleware.WithLogging(pollHandler.Index))

	// Voting
	mux.HandleFunc("GET /glasanje", middleware.WithLogging(pollHandler.Poll))
	mux.HandleFunc("GET /glasanje-glasaj", middleware.WithLogging(
		voteLimiter.Limit(votingHandler.Vote, votingHandler.TooManyRequests)))

	// Results
	mux.HandleFunc("GET /glasanje-rezultati", middleware.WithLogging(resultsHandler.Results))
	mux.HandleFunc("GET /glasanje-grafika", middleware.WithLogging(resultsHandler.Chart))
	mux.HandleFunc("GET /glasanje-xls", middleware.WithLogging(resultsHandler.Spreadsheet))
	mux.HandleFunc("GET /glasanje-stream", middleware.WithLogging(streamHandler.Stream))

	// JSON API
	mux.HandleFunc("GET /api/polls/{id}/results", middleware.WithLogging(middleware.CORS(resultsHandler.API)))
	mux.HandleFunc("OPTIONS /api/polls/{id}/results", middleware.CORS(resultsHandler.API))

	return mux
}
