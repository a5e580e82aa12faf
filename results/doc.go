// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package results turns a poll's options into what the results pages show:
// vote ordering, winners, a PNG pie chart and an xlsx export.
package results
