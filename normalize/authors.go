package normalize

import (
	"regexp"
	"strings"
)

// andSeparator matches the literal name separator, case-insensitive on
// "and" as a whole word.
var andSeparator = regexp.MustCompile(`(?i)\s+and\s+`)

// Authors rewrites every name in an author-list field to
// "Initial [Initial ...] Family" and rejoins the list with " and ",
// preserving the original order. It never fails: malformed names degrade
// to partial output, and empty input yields an empty string.
func Authors(list string, opts Options) string {
	list = strings.TrimSpace(list)
	if list == "" {
		return ""
	}

	names := andSeparator.Split(list, -1)
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out = append(out, normalizeName(name, opts))
	}

	return strings.Join(out, " and ")
}

// normalizeName canonicalizes a single name. Rules in priority order:
// corporate names wrapped in braces pass through verbatim, comma-form
// names split at the first comma, and space-form names treat the last
// token as the family name.
func normalizeName(name string, opts Options) string {
	if strings.HasPrefix(name, "{") && strings.HasSuffix(name, "}") {
		return name
	}

	var normalized string
	if family, given, ok := strings.Cut(name, ","); ok {
		// Comma form: "Family, Given [Middle...]". Middle parts may be
		// comma-separated themselves; rejoin them with spaces.
		family = strings.NewReplacer(".", "", ",", "").Replace(family)
		family = strings.TrimSpace(family)
		given = strings.ReplaceAll(given, ",", " ")
		normalized = joinInitials(initials(given), family)
	} else {
		tokens := strings.Fields(strings.ReplaceAll(name, ".", " "))
		if len(tokens) < 2 {
			// A mononym or a collaboration name without braces.
			normalized = name
		} else {
			family := tokens[len(tokens)-1]
			normalized = joinInitials(initialsOf(tokens[:len(tokens)-1]), family)
		}
	}

	if opts.StripPeriods {
		normalized = strings.ReplaceAll(normalized, ".", "")
	}
	return normalized
}

// initials derives one upper-cased initial from every whitespace or
// period separated token of a given-name portion.
func initials(given string) []string {
	return initialsOf(strings.Fields(strings.ReplaceAll(given, ".", " ")))
}

func initialsOf(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		out = append(out, strings.ToUpper(tok[:1]))
	}
	return out
}

func joinInitials(initials []string, family string) string {
	if family == "" {
		return strings.Join(initials, " ")
	}
	if len(initials) == 0 {
		return family
	}
	return strings.Join(initials, " ") + " " + family
}
