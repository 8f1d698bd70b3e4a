// Package normalize applies the canonical formatting convention to parsed
// bibliography entries: author initialing, chemical-formula markup in
// titles, DOI/URL reconciliation, and fixed-order re-serialization.
package normalize

// Options is the option set recognized by the normalization passes. It is
// supplied by the surrounding application and read as a snapshot at the
// start of each pass; the passes themselves keep no state.
type Options struct {
	// StripPeriods removes periods from normalized author names.
	StripPeriods bool

	// ExtractDOIFromURL fills a missing doi field from a DOI-shaped
	// substring found in the url field.
	ExtractDOIFromURL bool

	// EnforceDOIURL overwrites the url field with the canonical resolver
	// address whenever a doi field is present.
	EnforceDOIURL bool
}
