// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers of the voting site.

# Handler Types

Each handler is a struct built by a constructor around a PollStore and the
parsed views:

  - PollHandler: poll list and voting page
  - VotingHandler: vote casting and the rate limit page
  - ResultsHandler: results page, pie chart, spreadsheet and JSON API
  - StreamHandler: server-sent vote events for open results pages

	pollHandler := handlers.NewPollHandler(store, views)

# Routes

	GET /, /index.html                          → PollHandler.Index
	GET /glasanje?pollID=<id>                   → PollHandler.Poll
	GET /glasanje-glasaj?pollID=<id>&id=<opt>   → VotingHandler.Vote (302 to results)
	GET /glasanje-rezultati?pollID=<id>         → ResultsHandler.Results
	GET /glasanje-grafika?pollID=<id>           → ResultsHandler.Chart (image/png)
	GET /glasanje-xls?pollID=<id>               → ResultsHandler.Spreadsheet (xlsx)
	GET /glasanje-stream?pollID=<id>            → StreamHandler.Stream
	GET /api/polls/{id}/results                 → ResultsHandler.API (JSON)

# Errors

A non-numeric id renders the error page with status 200. Unknown polls and
options render it with 404, any other store failure with 500. The JSON API
answers with models.ErrorResponse instead.

Votes are only counted when the option belongs to the poll in the URL.
Accepted votes are published to the vote stream.
*/
package handlers
