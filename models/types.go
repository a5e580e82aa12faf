// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "fmt"

// Kind is the option category a poll collects votes for.
type Kind string

const (
	KindBand    Kind = "band"
	KindWebsite Kind = "website"
)

// ParseKind accepts the category names used in definition files and the
// database discriminator column.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindBand, KindWebsite:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown poll category %q", s)
}

// Domain types

type Poll struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Kind    Kind   `json:"kind"`
}

// Option is a single choice of a poll. Kind tells which variant it is; bands
// carry a song link, websites carry the site address.
type Option struct {
	ID     int64  `json:"id"`
	PollID int64  `json:"poll_id"`
	Name   string `json:"name"`
	Link   string `json:"link"`
	Votes  int64  `json:"votes"`
	Kind   Kind   `json:"kind"`
}

func (o Option) IsBand() bool    { return o.Kind == KindBand }
func (o Option) IsWebsite() bool { return o.Kind == KindWebsite }

// SongLink is the band's sample song; empty for other kinds.
func (o Option) SongLink() string {
	if o.IsBand() {
		return o.Link
	}
	return ""
}

// Response types

type ResultsResponse struct {
	Poll    Poll     `json:"poll"`
	Options []Option `json:"options"`
	Winners []Option `json:"winners"`
	Total   int64    `json:"total_votes"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
