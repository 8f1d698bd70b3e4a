package bib

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// headerRegex matches the entry header @type{key, capturing the
	// word-keyword type and everything up to the first comma as the key.
	headerRegex = regexp.MustCompile(`^@(\w+)\s*\{([^,]+),`)

	// fieldRegex matches one field = value triple. The value is a
	// brace-balanced group with one level of nesting permitted, a
	// double-quoted string, or a bare run of non-comma characters.
	fieldRegex = regexp.MustCompile(`(?s)([\w-]+)\s*=\s*(\{(?:[^{}]|\{[^{}]*\})*\}|"[^"]*"|[^,]+)\s*,?`)
)

// ParseEntry parses one entry fragment into an Entry. It returns an error
// if the fragment does not match the minimal header shape; the caller is
// expected to skip the fragment and keep going.
//
// Field values with braces nested beyond one level are not captured
// correctly. The output stays deterministic for the same malformed input,
// which is the declared contract.
func ParseEntry(fragment string) (*Entry, error) {
	fragment = strings.TrimSpace(fragment)

	m := headerRegex.FindStringSubmatch(fragment)
	if m == nil {
		return nil, fmt.Errorf("fragment does not start with @type{key,")
	}

	entry := NewEntry(m[1], m[2])
	if entry.Key == "" {
		return nil, fmt.Errorf("entry %q has an empty citation key", m[1])
	}

	// The field body is everything after the header, up to the trailing
	// closing brace of the entry.
	body := strings.TrimSpace(fragment[len(m[0]):])
	body = strings.TrimSuffix(body, "}")

	for _, fm := range fieldRegex.FindAllStringSubmatch(body, -1) {
		name := fm[1]
		value := unwrapValue(fm[2])
		// Last occurrence wins.
		entry.Set(name, value)
	}

	return entry, nil
}

// ParseAll splits raw text into fragments and parses each one. Fragments
// that fail to parse are dropped; the second return value counts them.
func ParseAll(text string) ([]*Entry, int) {
	var entries []*Entry
	dropped := 0

	for _, fragment := range Split(text) {
		entry, err := ParseEntry(fragment)
		if err != nil {
			dropped++
			continue
		}
		entries = append(entries, entry)
	}

	return entries, dropped
}

// unwrapValue strips one layer of wrapping braces or quotes from a field
// value.
func unwrapValue(value string) string {
	value = strings.TrimSpace(value)
	if len(value) >= 2 {
		switch {
		case value[0] == '{' && value[len(value)-1] == '}':
			value = value[1 : len(value)-1]
		case value[0] == '"' && value[len(value)-1] == '"':
			value = value[1 : len(value)-1]
		}
	}
	return strings.TrimSpace(value)
}
