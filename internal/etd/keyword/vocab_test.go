// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package keyword

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etheca/etheca/internal/platform/constants"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestVocabClient_Suggest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "geo", request.URL.Query().Get("query"))
		assert.Equal(t, "suggestall", request.URL.Query().Get("queryIndex"))
		assert.Equal(t, "idroot,auth,type,suggestall", request.URL.Query().Get("queryReturn"))
		assert.Equal(t, "autoSubject", request.URL.Query().Get("suggest"))

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"response":{"docs":[
			{"idroot":"fst01","auth":"Geology","type":"auth","suggestall":["Geology"]},
			{"idroot":"fst01","auth":"Geology","type":"alt","suggestall":["Earth science"]},
			{"idroot":"fst02","auth":"Geomorphology","type":"alt","suggestall":["Landforms"]}
		]}}`))
	}))
	defer server.Close()

	client := NewVocabClient(server.URL, discardLogger())
	groups := client.Suggest(context.Background(), "geo")

	require.Len(t, groups, 1)
	assert.Equal(t, "FAST results", groups[0].Text)

	// Duplicate idroot collapsed; alternate form annotated.
	require.Len(t, groups[0].Children, 2)
	assert.Equal(t, "fst01"+constants.IDValueSeparator+"Geology", groups[0].Children[0].ID)
	assert.Equal(t, "Geology", groups[0].Children[0].Text)
	assert.Equal(t, "Geomorphology (Landforms)", groups[0].Children[1].Text)
}

func TestVocabClient_Suggest_EmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"response":{"docs":[]}}`))
	}))
	defer server.Close()

	client := NewVocabClient(server.URL, discardLogger())
	assert.Empty(t, client.Suggest(context.Background(), "zzz"))
}

func TestVocabClient_Suggest_UpstreamGarbage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusInternalServerError)
		_, _ = writer.Write([]byte("<html>oops</html>"))
	}))
	defer server.Close()

	client := NewVocabClient(server.URL, discardLogger())
	groups := client.Suggest(context.Background(), "geo")

	// Degrades to the error placeholder instead of failing the request.
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Children, 1)
	assert.Equal(t, "Error retrieving FAST results.", groups[0].Children[0].Text)
}

func TestVocabClient_Suggest_RateLimited(t *testing.T) {
	// A non-2xx answer with a well-formed JSON body must still degrade
	// to the placeholder, not an empty result.
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusServiceUnavailable)
		_, _ = writer.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer server.Close()

	client := NewVocabClient(server.URL, discardLogger())
	groups := client.Suggest(context.Background(), "geo")

	require.Len(t, groups, 1)
	require.Len(t, groups[0].Children, 1)
	assert.Equal(t, "Error retrieving FAST results.", groups[0].Children[0].Text)
}

func TestVocabClient_Suggest_Unreachable(t *testing.T) {
	client := NewVocabClient("http://127.0.0.1:1", discardLogger())
	groups := client.Suggest(context.Background(), "geo")
	require.Len(t, groups, 1)
	assert.Equal(t, "FAST results", groups[0].Text)
}
