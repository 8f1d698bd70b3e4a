package crossref

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/bibtidy/bib"
	"github.com/lehigh-university-libraries/bibtidy/normalize"
)

var alnumWord = regexp.MustCompile(`[A-Za-z0-9]+`)

// ToEntry converts a Crossref work record into a bibliography entry with a
// fixed "article" entry type and a synthesized citation key. Missing
// attributes become empty fields so downstream formatting never has to
// null-check; the serializer skips empty values.
//
// The author list is rebuilt as "given family" pairs joined with " and ",
// left for the author normalizer to re-canonicalize downstream.
func ToEntry(w *Work) *bib.Entry {
	entry := bib.NewEntry("article", citationKey(w))

	entry.Set("author", joinAuthors(w.Author))
	entry.Set("title", w.PrimaryTitle())
	entry.Set("journal", w.Container())
	entry.Set("volume", w.Volume)
	entry.Set("number", w.Issue)
	entry.Set("pages", w.Page)
	entry.Set("doi", w.DOI)

	if year := w.Year(); year > 0 {
		entry.Set("year", strconv.Itoa(year))
	} else {
		entry.Set("year", "")
	}

	if w.DOI != "" {
		entry.Set("url", normalize.ResolverURL(w.DOI))
	} else {
		entry.Set("url", w.URL)
	}

	return entry
}

// citationKey synthesizes a key from the first author's family name, the
// publication year, and the first alphanumeric word of the title,
// concatenated with no separators and preserving case.
func citationKey(w *Work) string {
	family := "unknown"
	if len(w.Author) > 0 {
		switch {
		case w.Author[0].Family != "":
			family = strings.Join(strings.Fields(w.Author[0].Family), "")
		case w.Author[0].Name != "":
			family = strings.Join(strings.Fields(w.Author[0].Name), "")
		}
	}

	var year string
	if y := w.Year(); y > 0 {
		year = strconv.Itoa(y)
	}

	word := alnumWord.FindString(w.PrimaryTitle())

	return family + year + word
}

// joinAuthors rebuilds the work's author list as "given family" pairs.
// Corporate authors carry only a literal name and are double-braced so the
// normalizer passes them through verbatim.
func joinAuthors(authors []Author) string {
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		switch {
		case a.Given != "" && a.Family != "":
			names = append(names, a.Given+" "+a.Family)
		case a.Family != "":
			names = append(names, a.Family)
		case a.Name != "":
			names = append(names, "{{"+a.Name+"}}")
		}
	}
	return strings.Join(names, " and ")
}
