// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/etheca/etheca/internal/platform/apperr"
	"github.com/etheca/etheca/internal/platform/ctxutil"
	"github.com/etheca/etheca/internal/platform/identity"
	"github.com/etheca/etheca/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named URL parameter (UUID) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
User extracts the proxy-asserted identity from the request context.

Returns nil if the request is anonymous.
*/
func User(request *http.Request) *identity.Identity {
	return ctxutil.GetUser(request.Context())
}

/*
RequiredUser ensures the request is authenticated and returns the identity.

Returns:
  - *identity.Identity: The proxy-asserted identity
  - error: apperr.Unauthorized if the request is anonymous
*/
func RequiredUser(request *http.Request) (*identity.Identity, error) {
	user := ctxutil.GetUser(request.Context())
	if user == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return user, nil
}

/*
RequiredNetID returns the institutional login id of the current caller.

Returns:
  - string: netid
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredNetID(request *http.Request) (string, error) {
	user, err := RequiredUser(request)
	if err != nil {
		return "", err
	}
	return user.NetID, nil
}
