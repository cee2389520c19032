// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/etheca/etheca/internal/platform/ctxutil"
	"github.com/etheca/etheca/internal/platform/identity"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_User verifies that the proxy-asserted identity round-trips.
*/
func TestContext_User(t *testing.T) {
	ctx := context.Background()
	user := &identity.Identity{NetID: "jdoe", Role: identity.RoleStaff}

	// 1. Initially should be nil
	assert.Nil(t, ctxutil.GetUser(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithUser(ctx, user)
	got := ctxutil.GetUser(ctx)
	assert.Equal(t, "jdoe", got.NetID)
	assert.True(t, got.IsStaff())
}
