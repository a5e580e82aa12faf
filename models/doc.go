// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain and response types shared by the store,
handlers and views.

# Domain Types

  - Poll: id, title, message and the option Kind it collects
  - Option: one choice of a poll with its vote count

Option is a tagged variant: Kind selects between a band (Link is a sample
song) and a website (Link is the site). Both share the same fields.

# Kinds

	KindBand    = "band"
	KindWebsite = "website"

# Response Types

  - ResultsResponse: poll, options sorted by votes, winners, total votes
  - ErrorResponse: error, message
*/
package models
