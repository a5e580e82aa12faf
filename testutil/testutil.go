// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/glasanje/cliparse"
	"github.com/danielhkuo/glasanje/db"
	"github.com/danielhkuo/glasanje/definitions"
	"github.com/danielhkuo/glasanje/models"
)

const (
	BandPollTitle    = "Glasanje za omiljeni bend"
	WebsitePollTitle = "Glasanje za omiljenu web stranicu"
)

// Band fixtures. Votes are 10, 10 and 7 so the first two tie for the win.
var Bands = []definitions.OptionRecord{
	{ID: 1, Name: "The Beatles", Link: "https://www.youtube.com/watch?v=z9ypq6_5bsg", Votes: 10},
	{ID: 2, Name: "The Platters", Link: "https://www.youtube.com/watch?v=H2di83WAOhU", Votes: 10},
	{ID: 3, Name: "The Beach Boys", Link: "https://www.youtube.com/watch?v=2s4slliAtQU", Votes: 7},
}

// Website fixtures ship without a results file, so they start at zero.
var Websites = []definitions.OptionRecord{
	{ID: 1, Name: "Go", Link: "https://go.dev"},
	{ID: 2, Name: "GitHub", Link: "https://github.com"},
}

// OpenTestDB opens an empty sqlite database in a temp directory.
func OpenTestDB(t *testing.T) *sql.DB {
	t.Helper()

	settings := cliparse.DBSettings{Name: filepath.Join(t.TempDir(), "test.db")}
	conn, err := sql.Open("sqlite", settings.DSN(cliparse.DatabaseSQLite))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// One connection keeps sqlite writers from contending.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// WriteDefinitions writes the band and website fixtures to a temp directory
// and returns its path.
func WriteDefinitions(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		definitions.PollsFile: "1\t" + BandPollTitle + "\tOd sljedećih bendova, koji Vam je bend najdraži?\tband\n" +
			"2\t" + WebsitePollTitle + "\tKoja Vam je web stranica najdraža?\twebsite\n",
		definitions.DefinitionFile(models.KindBand):    records(Bands, false),
		definitions.ResultsFile(models.KindBand):       records(Bands, true),
		definitions.DefinitionFile(models.KindWebsite): records(Websites, false),
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	return dir
}

// SetupTestDB returns a seeded sqlite database and its poll index.
func SetupTestDB(t *testing.T) (*sql.DB, *db.PollIndex) {
	t.Helper()

	conn := OpenTestDB(t)
	set, err := definitions.Load(WriteDefinitions(t))
	if err != nil {
		t.Fatalf("Failed to load definitions: %v", err)
	}

	index, err := db.Initialize(context.Background(), conn, db.SQLite, set)
	if err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}
	return conn, index
}

// PollID returns the stored id of the poll with the given title.
func PollID(t *testing.T, index *db.PollIndex, title string) int64 {
	t.Helper()
	e, ok := index.Lookup(title)
	if !ok {
		t.Fatalf("poll %q not seeded", title)
	}
	return e.ID
}

// OptionID returns the stored id of an option by poll and name.
func OptionID(t *testing.T, conn *sql.DB, pollID int64, name string) int64 {
	t.Helper()
	var id int64
	err := conn.QueryRow(`SELECT id FROM poll_option WHERE poll_id = $1 AND title = $2`, pollID, name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to find option %q: %v", name, err)
	}
	return id
}

// Votes returns the stored vote count of an option.
func Votes(t *testing.T, conn *sql.DB, optionID int64) int64 {
	t.Helper()
	var votes int64
	if err := conn.QueryRow(`SELECT votes FROM poll_option WHERE id = $1`, optionID).Scan(&votes); err != nil {
		t.Fatalf("Failed to read votes of option %d: %v", optionID, err)
	}
	return votes
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

func records(options []definitions.OptionRecord, results bool) string {
	var out string
	for _, o := range options {
		if results {
			out += strconv.FormatInt(o.ID, 10) + "\t" + strconv.FormatInt(o.Votes, 10) + "\n"
		} else {
			out += strconv.FormatInt(o.ID, 10) + "\t" + o.Name + "\t" + o.Link + "\n"
		}
	}
	return out
}
