// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes of the voting site.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, views, broker, cfg)

# Endpoints

Health:

	GET /health

Pages:

	GET /, /index.html          - Poll list
	GET /glasanje               - Options of a poll
	GET /glasanje-glasaj        - Cast a vote (rate limited per IP)
	GET /glasanje-rezultati     - Results and winners
	GET /glasanje-grafika       - Pie chart PNG
	GET /glasanje-xls           - Spreadsheet download
	GET /glasanje-stream        - Live vote events

JSON (CORS enabled):

	GET /api/polls/{id}/results

Every route except /health is wrapped with middleware.WithLogging. The
broker passed in receives accepted votes and feeds the vote stream; its
Listen loop must be running.
*/
package router
