// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package middleware

import (
	"net/http"

	"github.com/etheca/etheca/internal/platform/apperr"
	"github.com/etheca/etheca/internal/platform/constants"
	"github.com/etheca/etheca/internal/platform/ctxutil"
	"github.com/etheca/etheca/internal/platform/identity"
	"github.com/etheca/etheca/internal/platform/respond"
)

// # Identity Resolution
//
// Login and session management live in the SSO proxy in front of this
// service. The proxy strips any client-supplied identity headers and sets
// its own, so the values read here are trusted by construction.

// ResolveUser reads the proxy-asserted identity headers and injects an
// [identity.Identity] into the request context.
//
// # Flow
//  1. Read the remote-user header (netid).
//  2. If absent, the request proceeds as anonymous.
//  3. Otherwise attach the identity (with role) for downstream handlers.
func ResolveUser() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			netid := request.Header.Get(constants.HeaderRemoteUser)

			// Anonymous access: health probes and reference data only.
			if netid == "" {
				next.ServeHTTP(writer, request)
				return
			}

			user := &identity.Identity{
				NetID: netid,
				Role:  request.Header.Get(constants.HeaderRole),
			}

			ctx := ctxutil.WithUser(request.Context(), user)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireUser blocks requests that did not arrive through the SSO proxy.
//
// # Usage
//
// Must be registered in the router AFTER [ResolveUser].
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetUser(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireStaff blocks callers without the Graduate School staff role.
//
// Review decisions (accept/reject), checklist updates, re-upload and ingest
// triggers all sit behind this guard.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		user := ctxutil.GetUser(request.Context())
		if user == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		if !user.IsStaff() {
			respond.Error(writer, request, apperr.Forbidden("Graduate School staff only"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
