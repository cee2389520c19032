// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

// Package textnorm canonicalizes user-entered Unicode text.
//
// # Usage
//
// Free-text subject terms arrive from browsers in whatever composition form
// the client produced. Storing them unnormalized lets two visually identical
// keywords coexist in the database. This package pins a single canonical
// form (NFD) and derives an accent/case-insensitive search form from it.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// garbage lists markup fragments and control characters that word
// processors smuggle into pasted titles, abstracts, and keywords.
var garbage = []string{"<br />", "<br>", "<BR>", "\x0b", "\x0c", "\x0e", "\x0f"}

// Clean strips known junk sequences from pasted user text.
func Clean(s string) string {
	for _, g := range garbage {
		s = strings.ReplaceAll(s, g, "")
	}
	return s
}

// Normalize returns the NFD canonical decomposition of s.
//
// Two Unicode representations of the same visible string (composed é vs.
// e + combining acute) normalize to identical bytes, so uniqueness
// constraints compare what the user actually sees.
func Normalize(s string) string {
	return norm.NFD.String(s)
}

// SearchText derives the accent- and case-insensitive index form of s:
// NFD decomposition with combining marks removed, lowercased.
func SearchText(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)
	return strings.ToLower(result)
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
