// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views renders the HTML pages from embedded templates.

Each page file defines "title" and "content" blocks and is parsed together
with layout.html:

	v, err := views.New()
	err = v.Render(w, http.StatusOK, views.PageResults, views.ResultsPage{...})

Template functions:

  - comma: thousands separators for vote counts (go-humanize)
  - percent: share of the total, one decimal
*/
package views
