// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

/*
Package keyword manages the subject terms candidates attach to a thesis.

Terms come from two places: free text typed by the candidate, and
suggestions from the FAST controlled vocabulary. Either way the text is
cleaned and NFD-normalized before storage so that visually identical
terms cannot coexist under different Unicode compositions. Each keyword
also carries a lowercase, accent-stripped search form for fuzzy matching.
*/
package keyword

import (
	"github.com/etheca/etheca/internal/platform/apperr"
	"github.com/etheca/etheca/internal/platform/constants"
	"github.com/etheca/etheca/pkg/textnorm"
)

// VocabURI is the base URI of the FAST subject authority.
const VocabURI = "http://id.worldcat.org/fast"

// VocabAuthority is the authority label recorded on vocabulary-sourced keywords.
const VocabAuthority = "fast"

// Keyword is a stored subject term.
type Keyword struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	// SearchText is the accent-stripped, lowercased index form of Text.
	SearchText   string `json:"-"`
	Authority    string `json:"authority,omitempty"`
	AuthorityURI string `json:"authority_uri,omitempty"`
	ValueURI     string `json:"value_uri,omitempty"`
}

/*
New builds a keyword from free text.

The text is cleaned of pasted markup, NFD-normalized, and bounded at the
storage column length. Empty terms are rejected.

Returns:
  - *Keyword: the keyword ready for persistence (ID unset).
  - error: apperr validation error for empty or oversized text.
*/
func New(text string) (*Keyword, error) {
	cleaned := textnorm.Normalize(textnorm.Clean(text))
	if cleaned == "" {
		return nil, apperr.ValidationError("Keyword text must not be empty",
			apperr.FieldError{Field: FieldText, Message: "Must not be empty"})
	}
	if len([]rune(cleaned)) > constants.KeywordMaxLen {
		return nil, apperr.ValidationError("Keyword text too long",
			apperr.FieldError{Field: FieldText, Message: "Too long"})
	}

	return &Keyword{
		Text:       cleaned,
		SearchText: textnorm.SearchText(cleaned),
	}, nil
}

/*
NewFromVocab builds a keyword carrying FAST authority attribution.

Parameters:
  - vocabID: FAST record id, with or without the "fst" prefix.
  - text: the authorized heading.
*/
func NewFromVocab(vocabID, text string) (*Keyword, error) {
	kw, err := New(text)
	if err != nil {
		return nil, err
	}

	kw.Authority = VocabAuthority
	kw.AuthorityURI = VocabURI
	kw.ValueURI = VocabURI + "/" + stripVocabPrefix(vocabID)
	return kw, nil
}

func stripVocabPrefix(id string) string {
	if len(id) > 3 && id[:3] == "fst" {
		return id[3:]
	}
	return id
}

// Suggestion is a single autocomplete option.
type Suggestion struct {
	// ID is either a stored keyword id, or "<vocabID>\t<heading>" for
	// vocabulary hits not yet stored locally.
	ID   string `json:"id"`
	Text string `json:"text"`
}

// SuggestionGroup is a labelled set of autocomplete options.
type SuggestionGroup struct {
	Text     string       `json:"text"`
	Children []Suggestion `json:"children"`
}

// Global field names for validation
const (
	FieldText = "text"
)
