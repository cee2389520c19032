// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package thesis

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// MaxDocumentSize caps uploaded manuscripts at 64 MiB.
const MaxDocumentSize = 64 << 20

// DocumentStore keeps uploaded manuscripts on disk under a single media
// root, named by thesis id so a re-upload replaces the previous file.
type DocumentStore struct {
	root string
}

func NewDocumentStore(root string) (*DocumentStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("document_store_init: %w", err)
	}
	return &DocumentStore{root: root}, nil
}

// Save writes the document and returns its SHA-1 checksum. An existing
// file under the same name is overwritten.
func (store *DocumentStore) Save(fileName string, document io.Reader) (string, error) {
	file, err := os.Create(store.Path(fileName))
	if err != nil {
		return "", fmt.Errorf("document_store_create: %w", err)
	}
	defer file.Close()

	digest := sha1.New()
	if _, err := io.Copy(file, io.TeeReader(document, digest)); err != nil {
		return "", fmt.Errorf("document_store_write: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("document_store_close: %w", err)
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}

// Open returns the stored document for reading.
func (store *DocumentStore) Open(fileName string) (*os.File, error) {
	file, err := os.Open(store.Path(fileName))
	if err != nil {
		return nil, fmt.Errorf("document_store_open: %w", err)
	}
	return file, nil
}

// Path resolves a stored file name under the media root. The base of
// the name is taken first, so a crafted name cannot escape the root.
func (store *DocumentStore) Path(fileName string) string {
	return filepath.Join(store.root, filepath.Base(fileName))
}
