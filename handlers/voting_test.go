// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/danielhkuo/glasanje/testutil"
)

func TestVote(t *testing.T) {
	env := setupTest(t)
	events := &recordingPublisher{}
	handler := NewVotingHandler(env.store, env.views, events)

	beatles := testutil.OptionID(t, env.conn, env.bandID, "The Beatles")
	platters := testutil.OptionID(t, env.conn, env.bandID, "The Platters")
	beachBoys := testutil.OptionID(t, env.conn, env.bandID, "The Beach Boys")

	req := httptest.NewRequest("GET", fmt.Sprintf("/glasanje-glasaj?pollID=%d&id=%d", env.bandID, beachBoys), nil)
	w := httptest.NewRecorder()
	handler.Vote(w, req)

	testutil.AssertStatus(t, w, http.StatusFound)
	wantLocation := fmt.Sprintf("/glasanje-rezultati?pollID=%d", env.bandID)
	if loc := w.Header().Get("Location"); loc != wantLocation {
		t.Errorf("Expected redirect to %s, got %s", wantLocation, loc)
	}

	// Exactly one more vote for the chosen option, none for the others
	if got := testutil.Votes(t, env.conn, beachBoys); got != 8 {
		t.Errorf("Expected 8 votes for The Beach Boys, got %d", got)
	}
	if got := testutil.Votes(t, env.conn, beatles); got != 10 {
		t.Errorf("Expected The Beatles unchanged at 10, got %d", got)
	}
	if got := testutil.Votes(t, env.conn, platters); got != 10 {
		t.Errorf("Expected The Platters unchanged at 10, got %d", got)
	}

	if len(events.events) != 1 {
		t.Fatalf("Expected 1 published event, got %d", len(events.events))
	}
	if e := events.events[0]; e.PollID != env.bandID || e.OptionID != beachBoys {
		t.Errorf("Unexpected event %+v", e)
	}
}

func TestVote_Rejected(t *testing.T) {
	env := setupTest(t)
	events := &recordingPublisher{}
	handler := NewVotingHandler(env.store, env.views, events)

	beatles := testutil.OptionID(t, env.conn, env.bandID, "The Beatles")

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedText   string
	}{
		{
			name:           "malformed poll id",
			query:          fmt.Sprintf("pollID=x&id=%d", beatles),
			expectedStatus: http.StatusOK,
			expectedText:   msgBadPollID,
		},
		{
			name:           "malformed option id",
			query:          fmt.Sprintf("pollID=%d&id=abc", env.bandID),
			expectedStatus: http.StatusOK,
			expectedText:   msgBadOptionID,
		},
		{
			name:           "unknown option",
			query:          fmt.Sprintf("pollID=%d&id=9999", env.bandID),
			expectedStatus: http.StatusNotFound,
			expectedText:   msgNoOption,
		},
		{
			name:           "option of another poll",
			query:          fmt.Sprintf("pollID=%d&id=%d", env.webID, beatles),
			expectedStatus: http.StatusNotFound,
			expectedText:   msgNoOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/glasanje-glasaj?"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.Vote(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if !strings.Contains(w.Body.String(), tt.expectedText) {
				t.Errorf("Expected body to contain %q", tt.expectedText)
			}
		})
	}

	if got := testutil.Votes(t, env.conn, beatles); got != 10 {
		t.Errorf("Expected rejected votes to leave The Beatles at 10, got %d", got)
	}
	if len(events.events) != 0 {
		t.Errorf("Expected no published events, got %d", len(events.events))
	}
}

func TestVote_WithoutPublisher(t *testing.T) {
	env := setupTest(t)
	handler := NewVotingHandler(env.store, env.views, nil)
	github := testutil.OptionID(t, env.conn, env.webID, "GitHub")

	w := httptest.NewRecorder()
	handler.Vote(w, httptest.NewRequest("GET", fmt.Sprintf("/glasanje-glasaj?pollID=%d&id=%d", env.webID, github), nil))

	testutil.AssertStatus(t, w, http.StatusFound)
	if got := testutil.Votes(t, env.conn, github); got != 1 {
		t.Errorf("Expected 1 vote for GitHub, got %d", got)
	}
}

func TestVote_StoreFailure(t *testing.T) {
	env := setupTest(t)
	handler := NewVotingHandler(brokenStore{}, env.views, nil)

	w := httptest.NewRecorder()
	handler.Vote(w, httptest.NewRequest("GET", "/glasanje-glasaj?pollID=1&id=1", nil))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
	if !strings.Contains(w.Body.String(), msgServerError) {
		t.Errorf("Expected generic failure page, got %s", w.Body.String())
	}
}

func TestVote_Concurrent(t *testing.T) {
	env := setupTest(t)
	handler := NewVotingHandler(env.store, env.views, nil)
	goID := testutil.OptionID(t, env.conn, env.webID, "Go")
	url := fmt.Sprintf("/glasanje-glasaj?pollID=%d&id=%d", env.webID, goID)

	const voters = 25
	var wg sync.WaitGroup
	codes := make([]int, voters)
	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := httptest.NewRecorder()
			handler.Vote(w, httptest.NewRequest("GET", url, nil))
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		if code != http.StatusFound {
			t.Errorf("Voter %d: expected status 302, got %d", i, code)
		}
	}
	if got := testutil.Votes(t, env.conn, goID); got != voters {
		t.Errorf("Expected %d votes, got %d", voters, got)
	}
}

func TestTooManyRequests(t *testing.T) {
	env := setupTest(t)
	handler := NewVotingHandler(env.store, env.views, nil)

	w := httptest.NewRecorder()
	handler.TooManyRequests(w, httptest.NewRequest("GET", "/glasanje-glasaj", nil))

	testutil.AssertStatus(t, w, http.StatusTooManyRequests)
	if !strings.Contains(w.Body.String(), msgTooMany) {
		t.Errorf("Expected rate limit message, got %s", w.Body.String())
	}
}
