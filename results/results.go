// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package results

import (
	"slices"

	"github.com/danielhkuo/glasanje/models"
)

// SortByVotes returns a copy of options ordered by votes descending, ties
// broken by ascending id.
func SortByVotes(options []models.Option) []models.Option {
	sorted := slices.Clone(options)
	slices.SortStableFunc(sorted, func(a, b models.Option) int {
		if a.Votes != b.Votes {
			if a.Votes > b.Votes {
				return -1
			}
			return 1
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	return sorted
}

// Winners returns every option whose count equals the maximum, in input
// order. A poll without options has no winners.
func Winners(options []models.Option) []models.Option {
	if len(options) == 0 {
		return nil
	}

	max := options[0].Votes
	for _, o := range options[1:] {
		if o.Votes > max {
			max = o.Votes
		}
	}

	var winners []models.Option
	for _, o := range options {
		if o.Votes == max {
			winners = append(winners, o)
		}
	}
	return winners
}

// Total sums the votes of all options.
func Total(options []models.Option) int64 {
	var total int64
	for _, o := range options {
		total += o.Votes
	}
	return total
}

// Summarize builds the results view of a poll.
func Summarize(poll models.Poll, options []models.Option) models.ResultsResponse {
	sorted := SortByVotes(options)
	winners := Winners(sorted)
	if winners == nil {
		winners = []models.Option{}
	}
	return models.ResultsResponse{
		Poll:    poll,
		Options: sorted,
		Winners: winners,
		Total:   Total(sorted),
	}
}
