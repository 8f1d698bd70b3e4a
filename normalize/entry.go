package normalize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lehigh-university-libraries/bibtidy/bib"
)

// preferredOrder is the fixed serialization order for common fields.
// Fields not listed here are emitted afterward, sorted by name.
var preferredOrder = []string{
	"author",
	"title",
	"journal",
	"booktitle",
	"year",
	"volume",
	"number",
	"pages",
	"doi",
	"url",
}

// Apply runs the normalization passes on an entry in place, in fixed
// order: author normalization, title materials formatting, DOI extraction,
// DOI/URL enforcement.
func Apply(e *bib.Entry, opts Options) {
	if e.Has("author") {
		e.Set("author", Authors(e.Get("author"), opts))
	}
	if e.Has("title") {
		e.Set("title", Materials(e.Get("title")))
	}
	if opts.ExtractDOIFromURL && e.Get("doi") == "" && e.Get("url") != "" {
		if doi := ExtractDOI(e.Get("url")); doi != "" {
			e.Set("doi", doi)
		}
	}
	if opts.EnforceDOIURL && e.Get("doi") != "" {
		e.Set("url", ResolverURL(e.Get("doi")))
	}
}

// Serialize renders an entry as canonical BibTeX: the @type{key, header,
// one two-space-indented field per line in preferred order, remaining
// fields alphabetically, and a closing brace. Empty-valued fields are
// skipped. Output is a pure function of the entry.
func Serialize(e *bib.Entry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "@%s{%s,\n", e.Type, e.Key)

	emitted := make(map[string]bool, len(e.Fields))
	emit := func(name string) {
		value := e.Fields[name]
		if value == "" {
			return
		}
		fmt.Fprintf(&sb, "  %s = {%s},\n", name, value)
		emitted[name] = true
	}

	for _, name := range preferredOrder {
		if e.Has(name) {
			emit(name)
		}
	}

	var rest []string
	for name := range e.Fields {
		if !emitted[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		emit(name)
	}

	sb.WriteString("}\n")
	return sb.String()
}

// Format normalizes an entry and serializes it in one step.
func Format(e *bib.Entry, opts Options) string {
	Apply(e, opts)
	return Serialize(e)
}
