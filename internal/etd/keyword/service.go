// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package keyword

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/etheca/etheca/internal/platform/apperr"
	"github.com/etheca/etheca/internal/platform/constants"
	"github.com/etheca/etheca/pkg/textnorm"
	"github.com/etheca/etheca/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	vocab  *VocabClient
	cache  *SuggestCache
	logger *slog.Logger
}

func NewService(repo Repository, vocab *VocabClient, cache *SuggestCache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		vocab:  vocab,
		cache:  cache,
		logger: logger,
	}
}

func (service *Service) GetKeyword(context context.Context, id string) (*Keyword, error) {
	return service.repo.GetKeyword(context, id)
}

// SearchKeywords returns stored keywords fuzzily matching term.
func (service *Service) SearchKeywords(context context.Context, term string, order string) ([]*Keyword, error) {
	return service.repo.SearchKeywords(context, term, order)
}

// CreateKeyword stores a new free-text keyword.
func (service *Service) CreateKeyword(context context.Context, text string) (*Keyword, error) {
	kw, err := New(text)
	if err != nil {
		return nil, err
	}

	kw.ID = uuidv7.New()
	if err := service.repo.CreateKeyword(context, kw); err != nil {
		return nil, err
	}

	service.logger.Info("keyword_created", slog.String("keyword_id", kw.ID))
	return kw, nil
}

/*
Resolve maps an autocomplete selection to a stored keyword, creating one
if needed.

The value is either a stored keyword id, or "<vocabID>\t<heading>" for a
vocabulary hit, or plain text the user typed. Typed text may already be
stored under a different Unicode composition, so it is normalized and
looked up by text before a new row is created.
*/
func (service *Service) Resolve(context context.Context, value string) (*Keyword, error) {
	// A stored keyword id resolves directly.
	if _, parseErr := uuid.Parse(value); parseErr == nil {
		kw, err := service.repo.GetKeyword(context, value)
		if err == nil {
			return kw, nil
		}
		if !apperr.IsNotFound(err) {
			return nil, err
		}
	}

	text := value
	vocabID := ""
	if before, after, found := strings.Cut(value, constants.IDValueSeparator); found {
		vocabID = before
		text = after
	}

	normalized := textnorm.Normalize(textnorm.Clean(text))
	if kw, err := service.repo.GetKeywordByText(context, normalized); err == nil {
		return kw, nil
	} else if !apperr.IsNotFound(err) {
		return nil, err
	}

	var kw *Keyword
	var err error
	if vocabID != "" {
		kw, err = NewFromVocab(vocabID, text)
	} else {
		kw, err = New(text)
	}
	if err != nil {
		return nil, err
	}

	kw.ID = uuidv7.New()
	if err := service.repo.CreateKeyword(context, kw); err != nil {
		// Lost a race with a concurrent create: fetch the winner.
		if apperr.IsCode(err, "DUPLICATE_TEXT") {
			return service.repo.GetKeywordByText(context, kw.Text)
		}
		return nil, err
	}

	service.logger.Info("keyword_created", slog.String("keyword_id", kw.ID), slog.String("authority", kw.Authority))
	return kw, nil
}

/*
Autocomplete assembles suggestion groups for a typed prefix: previously
used local keywords first, then controlled-vocabulary headings.

Vocabulary results are cached per term; local results are always fresh.
*/
func (service *Service) Autocomplete(context context.Context, term string) ([]SuggestionGroup, error) {
	groups := []SuggestionGroup{}

	stored, err := service.repo.SearchKeywords(context, term, "text")
	if err != nil {
		return nil, err
	}
	if len(stored) > 0 {
		children := make([]Suggestion, 0, len(stored))
		for _, kw := range stored {
			children = append(children, Suggestion{ID: kw.ID, Text: kw.Text})
		}
		groups = append(groups, SuggestionGroup{Text: "Previously Used", Children: children})
	}

	if vocabGroups, hit := service.cache.Get(context, term); hit {
		return append(groups, vocabGroups...), nil
	}

	vocabGroups := service.vocab.Suggest(context, term)
	service.cache.Set(context, term, vocabGroups)

	return append(groups, vocabGroups...), nil
}
