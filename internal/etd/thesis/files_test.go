// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package thesis

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentStoreSave(t *testing.T) {
	store, err := NewDocumentStore(t.TempDir())
	require.NoError(t, err)

	checksum, err := store.Save("t1.pdf", strings.NewReader("hello world"))
	require.NoError(t, err)
	// Well-known SHA-1 of "hello world".
	assert.Equal(t, "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed", checksum)

	stored, err := os.ReadFile(store.Path("t1.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(stored))
}

func TestDocumentStoreOverwrite(t *testing.T) {
	store, err := NewDocumentStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save("t1.pdf", strings.NewReader("first draft"))
	require.NoError(t, err)
	_, err = store.Save("t1.pdf", strings.NewReader("final"))
	require.NoError(t, err)

	stored, err := os.ReadFile(store.Path("t1.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "final", string(stored))
}

func TestDocumentStorePathConfinement(t *testing.T) {
	store, err := NewDocumentStore(t.TempDir())
	require.NoError(t, err)

	path := store.Path("../../etc/passwd")
	assert.False(t, strings.Contains(path, ".."))
}
