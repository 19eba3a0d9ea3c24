// Copyright Arbor Learning Co., 2026. All rights reserved.

// Package ident recognizes canonical course identifiers in free text.
// A course identifier is a department-number token: one or two digits,
// a dot, two or three digits, and an optional trailing letter ("18.01",
// "6.042J"). Identifiers are the only stable anchor in free-form
// academic text, so one compiled pattern is applied uniformly
// everywhere. See docs/ARCHITECTURE.md § Extraction.
package ident

import (
	"regexp"
	"strings"
)

// coursePattern matches a course identifier anywhere in a text fragment,
// case-insensitively. The trailing letter covers joint-subject suffixes
// like 6.042J.
var coursePattern = regexp.MustCompile(`(?i)(\d{1,2}\.\d{2,3}[A-Z]?)`)

// Find returns the first course identifier in text, upper-cased.
// The second result is false when text contains no identifier; that is
// a normal outcome, not an error.
func Find(text string) (string, bool) {
	m := coursePattern.FindString(text)
	if m == "" {
		return "", false
	}
	return strings.ToUpper(m), true
}

// FindAll returns every course identifier in text in document order,
// upper-cased. Duplicates are preserved; deduplication belongs to the
// relation merger.
func FindAll(text string) []string {
	matches := coursePattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = strings.ToUpper(m)
	}
	return ids
}
