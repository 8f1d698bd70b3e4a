package convert

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lehigh-university-libraries/bibtidy/bib"
	"github.com/lehigh-university-libraries/bibtidy/crossref"
	"github.com/lehigh-university-libraries/bibtidy/normalize"
)

// Resolver fetches bibliographic metadata for one DOI. It is implemented
// by crossref.Client; tests substitute their own.
type Resolver interface {
	// Work returns the structured metadata record for a DOI.
	Work(ctx context.Context, doi string) (*crossref.Work, error)

	// BibTeX returns raw BibTeX text for a DOI.
	BibTeX(ctx context.Context, doi string) (string, error)
}

// DOIResult reports the outcome of a batch identifier conversion.
type DOIResult struct {
	// Output holds formatted entries and inline failure comments, in
	// input order.
	Output string

	// OK counts identifiers that resolved and formatted successfully.
	OK int

	// Failed counts identifiers whose lookup or parse failed.
	Failed int
}

// DOIBatch converts a newline-separated list of DOI identifiers into
// canonical entries. Identifiers are processed strictly in order, one
// remote call at a time, so output order matches input order and every
// failure is attributable to its identifier. A failed lookup produces an
// inline comment line and processing continues with the next identifier.
func DOIBatch(ctx context.Context, r Resolver, ids string, opts normalize.Options) (*DOIResult, error) {
	dois := splitIdentifiers(ids)
	if len(dois) == 0 {
		return nil, ErrEmptyInput
	}

	result := &DOIResult{}
	blocks := make([]string, 0, len(dois))

	for _, doi := range dois {
		entry, err := resolveEntry(ctx, r, doi)
		if err != nil {
			slog.Debug("lookup failed", "doi", doi, "error", err)
			blocks = append(blocks, fmt.Sprintf("%% %s: %v\n", doi, err))
			result.Failed++
			continue
		}

		blocks = append(blocks, normalize.Format(entry, opts))
		result.OK++
	}

	result.Output = strings.Join(blocks, "\n")
	return result, nil
}

// resolveEntry fetches one DOI's metadata and adapts it to an entry. When
// the structured record is unparseable it falls back to BibTeX content
// negotiation and the ordinary entry parser.
func resolveEntry(ctx context.Context, r Resolver, doi string) (*bib.Entry, error) {
	work, err := r.Work(ctx, doi)
	if err == nil {
		return crossref.ToEntry(work), nil
	}
	if !crossref.IsInvalidResponse(err) {
		return nil, err
	}

	text, berr := r.BibTeX(ctx, doi)
	if berr != nil {
		return nil, berr
	}

	entry, perr := bib.ParseEntry(strings.TrimSpace(text))
	if perr != nil {
		return nil, fmt.Errorf("parsing negotiated BibTeX: %w", perr)
	}
	return entry, nil
}

// splitIdentifiers parses the newline-separated identifier list: one free
// text DOI per line, trimmed, blank lines ignored, resolver prefixes
// stripped.
func splitIdentifiers(ids string) []string {
	var dois []string
	for _, line := range strings.Split(ids, "\n") {
		doi := normalize.CleanDOI(line)
		if doi == "" {
			continue
		}
		dois = append(dois, doi)
	}
	return dois
}
