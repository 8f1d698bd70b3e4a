// Package convert orchestrates the batch operations: reformatting
// multi-entry BibTeX text and converting DOI identifier lists into
// canonical entries.
package convert

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/lehigh-university-libraries/bibtidy/bib"
	"github.com/lehigh-university-libraries/bibtidy/normalize"
)

// Errors reported before any parsing or network work is attempted.
var (
	// ErrEmptyInput indicates there was no text or no identifiers.
	ErrEmptyInput = errors.New("empty input")

	// ErrNoEntries indicates no entry in the input survived parsing.
	ErrNoEntries = errors.New("no entries detected")
)

// TextResult reports the outcome of reformatting a batch of entries.
type TextResult struct {
	// Output is the canonical text, one entry per block separated by a
	// blank line.
	Output string

	// Entries counts successfully formatted entries.
	Entries int

	// Dropped counts fragments that failed to parse and were omitted.
	Dropped int
}

// FormatText splits raw text into entries, normalizes each one, and
// rejoins them as canonical BibTeX. Fragments that fail to parse are
// dropped from the result and counted; if every fragment fails the whole
// call fails with ErrNoEntries.
func FormatText(text string, opts normalize.Options) (*TextResult, error) {
	start := time.Now()

	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	entries, dropped := bib.ParseAll(text)
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	blocks := make([]string, 0, len(entries))
	for _, entry := range entries {
		blocks = append(blocks, normalize.Format(entry, opts))
	}

	slog.Debug("formatted entries",
		"entries", len(entries),
		"dropped", dropped,
		"duration", time.Since(start))

	return &TextResult{
		Output:  strings.Join(blocks, "\n"),
		Entries: len(entries),
		Dropped: dropped,
	}, nil
}
