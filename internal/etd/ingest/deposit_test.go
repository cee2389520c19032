// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package ingest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeposit(t *testing.T) {
	var received *http.Request
	var fileContent string

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		received = request
		require.NoError(t, request.ParseMultipartForm(1<<20))

		file, _, err := request.FormFile("t1.pdf")
		require.NoError(t, err)
		defer file.Close()
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		fileContent = string(content)

		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write([]byte(`{"pid": "etd:1234"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "etd-depositor", "secret-code")
	fields := map[string]string{
		"rights": `{"parameters":{"owner_id":"repo:etd-owner"}}`,
		"rels":   `{"type":"http://purl.org/spar/fabio/DoctoralThesis"}`,
	}

	pid, err := client.Deposit(context.Background(), fields, "t1.pdf", strings.NewReader("%PDF-1.7 fake"))
	require.NoError(t, err)
	assert.Equal(t, "etd:1234", pid)

	assert.Equal(t, `{"parameters":{"owner_id":"repo:etd-owner"}}`, received.FormValue("rights"))
	assert.Equal(t, "etd-depositor", received.FormValue("identity"))
	assert.Equal(t, "secret-code", received.FormValue("authorization_code"))
	assert.Equal(t, "%PDF-1.7 fake", fileContent)
}

func TestDepositUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusBadGateway)
		_, _ = writer.Write([]byte("storage offline"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "etd-depositor", "secret-code")

	_, err := client.Deposit(context.Background(), nil, "t1.pdf", strings.NewReader("doc"))
	require.Error(t, err)
	assert.Equal(t, "502 - storage offline", err.Error())
}

func TestDepositTransportError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "etd-depositor", "secret-code")

	_, err := client.Deposit(context.Background(), nil, "t1.pdf", strings.NewReader("doc"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deposit_post")
}
