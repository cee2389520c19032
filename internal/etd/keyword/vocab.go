// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package keyword

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/etheca/etheca/internal/platform/constants"
)

// vocabErrorGroup is returned to the client whenever the vocabulary
// service is unreachable or returns garbage. Autocomplete degrades to
// locally stored keywords instead of failing the request.
var vocabErrorGroup = []SuggestionGroup{
	{Text: "FAST results", Children: []Suggestion{{ID: "", Text: "Error retrieving FAST results."}}},
}

// VocabClient queries the FAST suggest endpoint for subject headings.
type VocabClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

func NewVocabClient(baseURL string, logger *slog.Logger) *VocabClient {
	return &VocabClient{
		baseURL: baseURL,
		// The lookup sits on the interactive autocomplete path. Better to
		// drop the vocabulary suggestions than stall the form.
		client: &http.Client{Timeout: constants.VocabLookupTimeout},
		logger: logger,
	}
}

// vocabResponse mirrors the subset of the FAST suggest payload we read.
type vocabResponse struct {
	Response struct {
		Docs []vocabDoc `json:"docs"`
	} `json:"response"`
}

type vocabDoc struct {
	IDRoot     string   `json:"idroot"`
	Auth       string   `json:"auth"`
	Type       string   `json:"type"`
	SuggestAll []string `json:"suggestall"`
}

/*
Suggest queries the vocabulary for headings matching term.

The result is a single labelled group, an empty slice when nothing
matched, or an error placeholder group when the lookup failed. Lookup
failures are logged, never propagated: the caller always gets a usable
(possibly degraded) response.
*/
func (vocab *VocabClient) Suggest(context context.Context, term string) []SuggestionGroup {
	const index = "suggestall"

	params := url.Values{}
	params.Set("query", term)
	params.Set("queryIndex", index)
	params.Set("queryReturn", "idroot,auth,type,"+index)
	params.Set("suggest", "autoSubject")

	request, err := http.NewRequestWithContext(context, http.MethodGet, vocab.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		vocab.logger.Error("vocab_lookup_request_failed", slog.Any("error", err))
		return vocabErrorGroup
	}

	response, err := vocab.client.Do(request)
	if err != nil {
		vocab.logger.Error("vocab_lookup_failed", slog.Any("error", err))
		return vocabErrorGroup
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		vocab.logger.Error("vocab_lookup_bad_status", slog.Int("status", response.StatusCode))
		return vocabErrorGroup
	}

	var payload vocabResponse
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		vocab.logger.Error("vocab_lookup_decode_failed",
			slog.Int("status", response.StatusCode),
			slog.Any("error", err),
		)
		return vocabErrorGroup
	}

	suggestions := docsToSuggestions(payload.Response.Docs)
	if len(suggestions) == 0 {
		return nil
	}
	return []SuggestionGroup{{Text: "FAST results", Children: suggestions}}
}

// docsToSuggestions converts vocabulary docs to autocomplete options,
// keeping only the first hit per authority record.
func docsToSuggestions(docs []vocabDoc) []Suggestion {
	var suggestions []Suggestion
	seen := map[string]bool{}

	for _, doc := range docs {
		if seen[doc.IDRoot] {
			continue
		}
		seen[doc.IDRoot] = true

		text := doc.Auth
		// An alternate-form hit shows the matched variant next to the
		// authorized heading.
		if doc.Type != "auth" && len(doc.SuggestAll) > 0 {
			text = fmt.Sprintf("%s (%s)", text, doc.SuggestAll[0])
		}

		suggestions = append(suggestions, Suggestion{
			ID:   doc.IDRoot + constants.IDValueSeparator + doc.Auth,
			Text: text,
		})
	}

	return suggestions
}
