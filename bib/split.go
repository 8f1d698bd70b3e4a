package bib

import (
	"regexp"
	"strings"
)

// entryStart matches the beginning of an entry: @ followed immediately by
// the entry-type keyword.
var entryStart = regexp.MustCompile(`@\w+`)

// Split divides raw text into per-entry fragments, cutting at every
// position that begins a new entry. Fragments are trimmed and empty
// fragments are dropped. Text before the first entry start survives as its
// own fragment so the parser can report it instead of silently eating it.
//
// Known limitation: a @word token inside an unbalanced field value sits at
// a fragment boundary like any other and causes a false split. No escaping
// rules exist in this format, so the splitter does not try to invent any.
func Split(text string) []string {
	locs := entryStart.FindAllStringIndex(text, -1)

	var fragments []string
	appendFragment := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" {
			fragments = append(fragments, s)
		}
	}

	if len(locs) == 0 {
		appendFragment(text)
		return fragments
	}

	appendFragment(text[:locs[0][0]])
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		appendFragment(text[loc[0]:end])
	}

	return fragments
}
