package normalize

import (
	"regexp"
	"strings"
)

// ResolverBase is the fixed URL prefix that turns a DOI into a
// dereferenceable link.
const ResolverBase = "https://doi.org/"

// doiPattern matches the DOI shape 10.<registrant>/<suffix>.
var doiPattern = regexp.MustCompile(`(?i)10\.\d{4,9}/[-._;()/:a-z0-9]+`)

// ExtractDOI returns the first DOI-shaped substring found in text, or ""
// when there is none.
func ExtractDOI(text string) string {
	return doiPattern.FindString(text)
}

// ResolverURL returns the canonical resolver address for a DOI.
func ResolverURL(doi string) string {
	return ResolverBase + doi
}

// CleanDOI strips resolver and scheme prefixes from a DOI identifier so
// that free-text input like "https://doi.org/10.1/x" or "doi:10.1/x"
// resolves to the bare DOI.
func CleanDOI(doi string) string {
	doi = strings.TrimSpace(doi)
	doi = strings.TrimPrefix(doi, "https://doi.org/")
	doi = strings.TrimPrefix(doi, "http://doi.org/")
	doi = strings.TrimPrefix(doi, "doi.org/")
	doi = strings.TrimPrefix(doi, "DOI:")
	doi = strings.TrimPrefix(doi, "doi:")
	return strings.TrimSpace(doi)
}
