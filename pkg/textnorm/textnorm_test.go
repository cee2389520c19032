// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/etheca/etheca/pkg/textnorm"
)

/*
TestNormalize_EquivalentForms verifies that composed and decomposed
representations of the same visible string normalize to identical bytes.
*/
func TestNormalize_EquivalentForms(t *testing.T) {
	composed := "caf\u00e9"      // precomposed é
	decomposed := "cafe\u0301" // e + combining acute accent
	assert.NotEqual(t, composed, decomposed)
	assert.Equal(t, textnorm.Normalize(composed), textnorm.Normalize(decomposed))
}

func TestSearchText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain_ascii", "Geology", "geology"},
		{"accented", "Café", "cafe"},
		{"decomposed_accent", "Cafe\u0301", "cafe"},
		{"mixed_case_diacritics", "Étude", "etude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textnorm.SearchText(tt.input))
		})
	}
}

func TestClean(t *testing.T) {
	assert.Equal(t, "line one line two", textnorm.Clean("line one<br /> line two"))
	assert.Equal(t, "tidy", textnorm.Clean("ti\x0bdy\x0c"))
}
