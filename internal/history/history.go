// Package history records solved problems in a line-oriented log.
//
// Entries are appended to ~/.scribe/history.jsonl, one JSON object per
// line. A sidecar flock guards the file so concurrent scribe processes
// do not interleave writes. Corrupt lines are skipped on read so a
// damaged log never blocks the CLI.
package history

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/deeklead/scribe/internal/constants"
)

// Outcomes recorded for an entry.
const (
	OutcomeSolved   = "solved"   // A closed form was produced
	OutcomeUnsolved = "unsolved" // Derivation finished without a closed form
	OutcomeError    = "error"    // Parsing or evaluation failed
)

// Entry is one recorded integration attempt.
type Entry struct {
	ID         string `json:"id"`
	SolvedAt   string `json:"solved_at"`
	Expression string `json:"expression"`
	Variable   string `json:"variable"`
	Technique  string `json:"technique"`
	Answer     string `json:"answer,omitempty"`
	Outcome    string `json:"outcome"`
	DurationMS int64  `json:"duration_ms"`
}

// Append writes an entry to the history log at path.
// Empty ID, SolvedAt, and Outcome fields are filled in.
func Append(path string, e Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.SolvedAt == "" {
		e.SolvedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if e.Outcome == "" {
		e.Outcome = OutcomeSolved
	}

	if err := os.MkdirAll(filepath.Dir(path), constants.DirMode); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encoding history entry: %w", err)
	}
	data = append(data, '\n')

	fileLock := flock.New(lockPath(path))
	if err := fileLock.Lock(); err != nil {
		return fmt.Errorf("locking history: %w", err)
	}
	defer func() { _ = fileLock.Unlock() }()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, constants.FileMode) //nolint:gosec // G304: path is from trusted config location
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing history entry: %w", err)
	}
	return nil
}

// List reads all entries from the log at path, oldest first.
// A missing file yields an empty list. Lines that do not parse are
// skipped with a warning on stderr.
func List(path string) ([]Entry, error) {
	fileLock := flock.New(lockPath(path))
	if err := fileLock.RLock(); err != nil {
		return nil, fmt.Errorf("locking history: %w", err)
	}
	defer func() { _ = fileLock.Unlock() }()

	f, err := os.Open(path) //nolint:gosec // G304: path is from trusted config location
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening history: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(raw, &e); err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping corrupt history line %d: %v\n", line, err)
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}
	return entries, nil
}

// Tail returns the last n entries, oldest first. It returns all
// entries when n is zero or negative.
func Tail(path string, n int) ([]Entry, error) {
	entries, err := List(path)
	if err != nil {
		return nil, err
	}
	if n <= 0 || len(entries) <= n {
		return entries, nil
	}
	return entries[len(entries)-n:], nil
}

// lockPath returns the sidecar lock file for a history log.
func lockPath(path string) string {
	return path + ".lock"
}

// Stats summarizes a history log.
type Stats struct {
	Total       int
	Solved      int
	ByTechnique map[string]int
}

// Summarize computes counts over a list of entries.
func Summarize(entries []Entry) Stats {
	s := Stats{ByTechnique: make(map[string]int)}
	for _, e := range entries {
		s.Total++
		if e.Outcome == OutcomeSolved {
			s.Solved++
		}
		tag := e.Technique
		if tag == "" {
			tag = "unknown"
		}
		s.ByTechnique[tag]++
	}
	return s
}

// Techniques returns the technique tags of a Stats in descending count
// order, ties broken alphabetically.
func (s Stats) Techniques() []string {
	tags := make([]string, 0, len(s.ByTechnique))
	for tag := range s.ByTechnique {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if s.ByTechnique[tags[i]] != s.ByTechnique[tags[j]] {
			return s.ByTechnique[tags[i]] > s.ByTechnique[tags[j]]
		}
		return tags[i] < tags[j]
	})
	return tags
}

// DisplayTechnique renders a technique tag for human output, so
// "constant times" becomes "Constant Times".
func DisplayTechnique(tag string) string {
	if tag == "" {
		tag = "unknown"
	}
	return cases.Title(language.English).String(tag)
}
