// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etheca/etheca/internal/etd/candidate"
	"github.com/etheca/etheca/internal/etd/reference"
)

var testRights = Rights{
	OwnerID:           "repo:etd-owner",
	PublicIdentity:    "PUBLIC",
	EmbargoedIdentity: "EMBARGOED",
}

func TestRightsParameters(t *testing.T) {
	embargoEnd := 2028
	privateUntil := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		candidate *candidate.Candidate
		want      map[string]string
	}{
		{
			"open_access",
			&candidate.Candidate{},
			map[string]string{
				"owner_id":          "repo:etd-owner",
				"additional_rights": "PUBLIC#discover,display",
			},
		},
		{
			"embargoed",
			&candidate.Candidate{EmbargoEndYear: &embargoEnd},
			map[string]string{
				"owner_id":          "repo:etd-owner",
				"additional_rights": "EMBARGOED#discover,display+PUBLIC#discover",
			},
		},
		{
			"private_access",
			&candidate.Candidate{PrivateAccessEndDate: &privateUntil},
			map[string]string{"owner_id": "repo:etd-owner"},
		},
		{
			// A private restriction wins even when an embargo is also set.
			"private_access_overrides_embargo",
			&candidate.Candidate{PrivateAccessEndDate: &privateUntil, EmbargoEndYear: &embargoEnd},
			map[string]string{"owner_id": "repo:etd-owner"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, testRights.Parameters(tt.candidate))
		})
	}
}

func TestRelsField(t *testing.T) {
	embargoEnd := 2028

	t.Run("masters", func(t *testing.T) {
		c := &candidate.Candidate{Degree: &reference.Degree{DegreeType: reference.DegreeTypeMasters}}
		rels, err := relsField(c)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"http://purl.org/spar/fabio/MastersThesis"}`, rels)
	})

	t.Run("doctorate_with_embargo", func(t *testing.T) {
		c := &candidate.Candidate{
			Degree:         &reference.Degree{DegreeType: reference.DegreeTypeDoctorate},
			EmbargoEndYear: &embargoEnd,
		}
		rels, err := relsField(c)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"type": "http://purl.org/spar/fabio/DoctoralThesis",
			"embargo_end": "2028-12-31T23:00:01Z"
		}`, rels)
	})
}

func TestIRField(t *testing.T) {
	ir, err := irField("collection:42", "ETD application")
	require.NoError(t, err)
	assert.JSONEq(t, `{"parameters":{"ir_collection_id":"collection:42","depositor_name":"ETD application"}}`, ir)
}

func TestContentStreamsField(t *testing.T) {
	streams, err := contentStreamsField("t1.pdf")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"file_name":"t1.pdf"}]`, streams)
}
