// Package bib provides the BibTeX entry model and a tolerant parser for
// brace-delimited, comma-separated bibliography records.
package bib

import (
	"bytes"
	"regexp"
	"strings"
)

// Entry is one bibliographic record: an entry type, a citation key, and a
// mapping from lowercased field names to raw field values.
type Entry struct {
	Type   string
	Key    string
	Fields map[string]string
}

// NewEntry creates an Entry with an initialized field map.
func NewEntry(entryType, key string) *Entry {
	return &Entry{
		Type:   strings.ToLower(entryType),
		Key:    strings.TrimSpace(key),
		Fields: make(map[string]string),
	}
}

// Get returns the value of a field, or "" if the field is absent.
func (e *Entry) Get(name string) string {
	return e.Fields[strings.ToLower(name)]
}

// Set stores a field value under its lowercased name.
func (e *Entry) Set(name, value string) {
	e.Fields[strings.ToLower(name)] = value
}

// Has reports whether a field is present.
func (e *Entry) Has(name string) bool {
	_, ok := e.Fields[strings.ToLower(name)]
	return ok
}

var canParseRegex = regexp.MustCompile(`@\w+\s*\{`)

// CanParse returns true if the input looks like it contains BibTeX entries.
func CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	if len(peek) == 0 {
		return false
	}
	return canParseRegex.Match(peek)
}
