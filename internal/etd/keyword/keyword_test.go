// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package keyword

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("normalizes_and_derives_search_text", func(t *testing.T) {
		kw, err := New("Café Culture")
		require.NoError(t, err)
		assert.Equal(t, "Café Culture", kw.Text)
		assert.Equal(t, "cafe culture", kw.SearchText)
	})

	t.Run("strips_pasted_markup", func(t *testing.T) {
		kw, err := New("Geology<br />")
		require.NoError(t, err)
		assert.Equal(t, "Geology", kw.Text)
	})

	t.Run("rejects_empty", func(t *testing.T) {
		_, err := New("")
		assert.Error(t, err)
	})

	t.Run("rejects_markup_only", func(t *testing.T) {
		_, err := New("<br>")
		assert.Error(t, err)
	})

	t.Run("rejects_oversized", func(t *testing.T) {
		_, err := New(strings.Repeat("x", 191))
		assert.Error(t, err)
	})
}

func TestNewFromVocab(t *testing.T) {
	tests := []struct {
		name         string
		vocabID      string
		wantValueURI string
	}{
		{"prefixed_id", "fst01234", VocabURI + "/01234"},
		{"bare_id", "01234", VocabURI + "/01234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kw, err := NewFromVocab(tt.vocabID, "Geology")
			require.NoError(t, err)
			assert.Equal(t, VocabAuthority, kw.Authority)
			assert.Equal(t, VocabURI, kw.AuthorityURI)
			assert.Equal(t, tt.wantValueURI, kw.ValueURI)
		})
	}
}
