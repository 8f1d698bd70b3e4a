package normalize

import (
	"regexp"
	"strings"
)

var (
	// formulaToken matches a maximal run of two or more element groups,
	// each an upper-case letter with an optional lower-case letter and
	// optional digits.
	formulaToken = regexp.MustCompile(`(?:[A-Z][a-z]?\d*){2,}`)

	// elementDigits captures each element/digits pair inside a matched
	// token for subscript rewriting.
	elementDigits = regexp.MustCompile(`([A-Z][a-z]?)(\d+)`)

	anyDigit = regexp.MustCompile(`\d`)
)

// Materials rewrites chemical-formula-like tokens in a title to subscript
// markup: every Element+Digits sub-group becomes Element$_Digits$ and the
// whole token is wrapped in a brace pair. Tokens without a digit are left
// alone, so ordinary capitalized words that happen to match the shape
// survive untouched. A title that already contains a $ marker is returned
// unmodified, which keeps the pass idempotent.
//
// This is a heuristic, not a chemistry-aware parser. Two-letter acronyms
// with trailing digits can be marked up, and single-element formulas
// without digits never are.
func Materials(title string) string {
	if strings.Contains(title, "$") {
		return title
	}

	return formulaToken.ReplaceAllStringFunc(title, func(token string) string {
		if !anyDigit.MatchString(token) {
			return token
		}
		return "{" + elementDigits.ReplaceAllString(token, `${1}$$_${2}$$`) + "}"
	})
}
