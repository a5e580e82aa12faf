// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package definitions

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/danielhkuo/glasanje/models"
)

const PollsFile = "polls.txt"

var ErrMalformedLine = errors.New("malformed definition line")

// Titles of the two polls shipped before polls.txt carried a category column.
var legacyKinds = map[string]models.Kind{
	"Glasanje za omiljeni bend":         models.KindBand,
	"Glasanje za omiljenu web stranicu": models.KindWebsite,
}

type PollRecord struct {
	ID      int64
	Title   string
	Message string
	Kind    models.Kind
}

type OptionRecord struct {
	ID    int64
	Name  string
	Link  string
	Votes int64
}

// Set is everything read from a definitions directory.
type Set struct {
	Polls   []PollRecord
	Options map[models.Kind][]OptionRecord
}

// DefinitionFile is the option definitions file for a poll kind.
func DefinitionFile(kind models.Kind) string {
	return string(kind) + "s-definition.txt"
}

// ResultsFile is the initial vote counts file for a poll kind.
func ResultsFile(kind models.Kind) string {
	return string(kind) + "s-results.txt"
}

// Load reads polls.txt from dir and, for every poll, the definition and
// results files of its kind.
func Load(dir string) (*Set, error) {
	polls, err := LoadPolls(filepath.Join(dir, PollsFile))
	if err != nil {
		return nil, err
	}

	set := &Set{
		Polls:   polls,
		Options: make(map[models.Kind][]OptionRecord, len(polls)),
	}
	for _, p := range polls {
		if _, dup := set.Options[p.Kind]; dup {
			return nil, fmt.Errorf("more than one poll of kind %q in %s", p.Kind, PollsFile)
		}
		options, err := LoadOptions(
			filepath.Join(dir, DefinitionFile(p.Kind)),
			filepath.Join(dir, ResultsFile(p.Kind)),
		)
		if err != nil {
			return nil, err
		}
		set.Options[p.Kind] = options
	}

	return set, nil
}

// LoadPolls reads id, title, message and an optional kind per line.
func LoadPolls(path string) ([]PollRecord, error) {
	var polls []PollRecord
	err := readLines(path, func(lineNo int, fields []string) error {
		if len(fields) != 3 && len(fields) != 4 {
			return malformed(path, lineNo, "expected 3 or 4 fields, got %d", len(fields))
		}
		id, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return malformed(path, lineNo, "invalid id %q", fields[0])
		}

		var kind models.Kind
		if len(fields) == 4 {
			kind, err = models.ParseKind(fields[3])
			if err != nil {
				return malformed(path, lineNo, "%v", err)
			}
		} else {
			var ok bool
			kind, ok = legacyKinds[fields[1]]
			if !ok {
				return malformed(path, lineNo, "no category for poll %q", fields[1])
			}
		}

		polls = append(polls, PollRecord{ID: id, Title: fields[1], Message: fields[2], Kind: kind})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return polls, nil
}

// LoadOptions reads an option definitions file and pairs every entry with
// its count from resultsPath. A missing results file is created with zero
// counts; entries absent from it start at zero.
func LoadOptions(defPath, resultsPath string) ([]OptionRecord, error) {
	var options []OptionRecord
	err := readLines(defPath, func(lineNo int, fields []string) error {
		if len(fields) != 3 {
			return malformed(defPath, lineNo, "expected 3 fields, got %d", len(fields))
		}
		id, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return malformed(defPath, lineNo, "invalid id %q", fields[0])
		}
		options = append(options, OptionRecord{ID: id, Name: fields[1], Link: fields[2]})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(resultsPath); errors.Is(err, os.ErrNotExist) {
		if err := createResults(resultsPath, options); err != nil {
			return nil, err
		}
		slog.Info("created results file", "path", resultsPath, "entries", len(options))
	}

	votes, err := loadResults(resultsPath)
	if err != nil {
		return nil, err
	}
	for i := range options {
		options[i].Votes = votes[options[i].ID]
	}

	return options, nil
}

func loadResults(path string) (map[int64]int64, error) {
	votes := make(map[int64]int64)
	err := readLines(path, func(lineNo int, fields []string) error {
		if len(fields) != 2 {
			return malformed(path, lineNo, "expected 2 fields, got %d", len(fields))
		}
		id, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return malformed(path, lineNo, "invalid id %q", fields[0])
		}
		count, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil || count < 0 {
			return malformed(path, lineNo, "invalid vote count %q", fields[1])
		}
		votes[id] = count
		return nil
	})
	if err != nil {
		return nil, err
	}
	return votes, nil
}

func createResults(path string, options []OptionRecord) error {
	var b strings.Builder
	for _, o := range options {
		fmt.Fprintf(&b, "%d\t0\n", o.ID)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to create results file: %w", err)
	}
	return nil
}

// readLines calls fn with the tab-separated fields of every non-blank line.
func readLines(path string, fn func(lineNo int, fields []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(lineNo, strings.Split(line, "\t")); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return nil
}

func malformed(path string, lineNo int, format string, args ...any) error {
	return fmt.Errorf("%w: %s:%d: %s", ErrMalformedLine, filepath.Base(path), lineNo, fmt.Sprintf(format, args...))
}
