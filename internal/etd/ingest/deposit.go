// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// Client posts deposits to the repository's ingest API.
//
// A deposit is one attempt with no retry and no client-side deadline:
// large manuscripts over a slow link are expected, and the repository
// deduplicates nothing, so an abandoned half-deposit is worse than a
// slow one. Callers bound the whole batch via context if needed.
type Client struct {
	apiURL            string
	identity          string
	authorizationCode string
	httpClient        *http.Client
}

func NewClient(apiURL, identity, authorizationCode string) *Client {
	return &Client{
		apiURL:            apiURL,
		identity:          identity,
		authorizationCode: authorizationCode,
		httpClient:        &http.Client{},
	}
}

/*
Deposit posts one thesis to the repository.

fields holds the prepared JSON form fields (rights, ir, mods, rels,
content_streams); the client adds its own identity and authorization
code. The document bytes are attached under the stored file name, which
must match the content_streams entry.

Returns the persistent identifier assigned by the repository. A non-2xx
response is an error carrying "<status> - <body>".
*/
func (client *Client) Deposit(context context.Context, fields map[string]string, fileName string, document io.Reader) (string, error) {
	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)

	for name, value := range fields {
		if err := form.WriteField(name, value); err != nil {
			return "", fmt.Errorf("deposit_encode_field: %w", err)
		}
	}
	if err := form.WriteField("identity", client.identity); err != nil {
		return "", fmt.Errorf("deposit_encode_field: %w", err)
	}
	if err := form.WriteField("authorization_code", client.authorizationCode); err != nil {
		return "", fmt.Errorf("deposit_encode_field: %w", err)
	}

	part, err := form.CreateFormFile(fileName, fileName)
	if err != nil {
		return "", fmt.Errorf("deposit_encode_document: %w", err)
	}
	if _, err := io.Copy(part, document); err != nil {
		return "", fmt.Errorf("deposit_read_document: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("deposit_encode_form: %w", err)
	}

	request, err := http.NewRequestWithContext(context, http.MethodPost, client.apiURL, body)
	if err != nil {
		return "", fmt.Errorf("deposit_build_request: %w", err)
	}
	request.Header.Set("Content-Type", form.FormDataContentType())

	response, err := client.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("deposit_post: %w", err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("deposit_read_response: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return "", fmt.Errorf("%d - %s", response.StatusCode, responseBody)
	}

	var payload struct {
		PID string `json:"pid"`
	}
	if err := json.Unmarshal(responseBody, &payload); err != nil {
		return "", fmt.Errorf("deposit_decode_response: %w", err)
	}
	return payload.PID, nil
}
