// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etheca/etheca/internal/etd/candidate"
	"github.com/etheca/etheca/internal/etd/keyword"
	"github.com/etheca/etheca/internal/etd/people"
	"github.com/etheca/etheca/internal/etd/reference"
	"github.com/etheca/etheca/internal/etd/thesis"
)

func modsFixture() (*thesis.Thesis, *candidate.Candidate) {
	bodyPages := 220
	t := &thesis.Thesis{
		Title:          "Sediment Transport in Estuarine Channels",
		Abstract:       "A study of sediment transport.",
		NumPrelimPages: "xii",
		NumBodyPages:   &bodyPages,
		Keywords: []*keyword.Keyword{
			{Text: "Sediment transport", Authority: "fast", AuthorityURI: "http://id.worldcat.org/fast", ValueURI: "http://id.worldcat.org/fast/1110763"},
			{Text: "Estuaries"},
		},
		Language: &reference.Language{Code: "eng", Name: "English"},
	}

	c := &candidate.Candidate{
		Year: 2026,
		Person: &people.Person{
			LastName:  "Okafor",
			FirstName: "Carmen",
			Middle:    "J.",
		},
		Degree:     &reference.Degree{Abbreviation: "Ph.D.", DegreeType: reference.DegreeTypeDoctorate},
		Department: &reference.Department{Name: "Department of Earth Sciences"},
		Committee: []*candidate.CommitteeMember{
			{Role: candidate.RoleAdvisor, Person: &people.Person{LastName: "Whitfield", FirstName: "Ama"}},
			{Role: candidate.RoleReader, Person: &people.Person{LastName: "Reyes", FirstName: "Daniel"}},
		},
	}
	return t, c
}

func TestMapMODS(t *testing.T) {
	th, c := modsFixture()

	encoded, err := MapMODS(th, c, "Halewick University")
	require.NoError(t, err)
	record := string(encoded)

	assert.True(t, strings.HasPrefix(record, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, record, `<mods xmlns="http://www.loc.gov/mods/v3" version="3.7">`)
	assert.Contains(t, record, "<title>Sediment Transport in Estuarine Channels</title>")

	// Creator, committee with display roles, corporate sponsor.
	assert.Contains(t, record, "<namePart>Okafor, Carmen J.</namePart>")
	assert.Contains(t, record, "creator")
	assert.Contains(t, record, "<namePart>Whitfield, Ama</namePart>")
	assert.Contains(t, record, "Advisor")
	assert.Contains(t, record, "<namePart>Reyes, Daniel</namePart>")
	assert.Contains(t, record, "Reader")
	assert.Contains(t, record, "<namePart>Halewick University. Department of Earth Sciences</namePart>")
	assert.Contains(t, record, "sponsor")

	assert.Contains(t, record, "<copyrightDate>2026</copyrightDate>")
	assert.Contains(t, record, "<extent>xii, 220 p.</extent>")
	assert.Contains(t, record, "<digitalOrigin>born digital</digitalOrigin>")
	assert.Contains(t, record, "<note>Thesis (Ph.D. -- Halewick University 2026)</note>")
	assert.Contains(t, record, "<typeOfResource>text</typeOfResource>")
	assert.Contains(t, record, `<genre authority="aat">theses</genre>`)
	assert.Contains(t, record, "<abstract>A study of sediment transport.</abstract>")

	assert.Contains(t, record, `<subject authority="fast" authorityURI="http://id.worldcat.org/fast" valueURI="http://id.worldcat.org/fast/1110763">`)
	assert.Contains(t, record, "<topic>Sediment transport</topic>")
	// Free-text keywords carry no authority attributes.
	assert.Contains(t, record, "<subject>\n    <topic>Estuaries</topic>")

	assert.Contains(t, record, `<languageTerm type="text">English</languageTerm>`)
}

func TestMapMODSOmitsAbsentFields(t *testing.T) {
	th := &thesis.Thesis{Title: "Untitled Draft"}
	c := &candidate.Candidate{
		Year:       2026,
		Person:     &people.Person{LastName: "Okafor"},
		Degree:     &reference.Degree{Abbreviation: "A.M."},
		Department: &reference.Department{Name: "Department of History"},
	}

	encoded, err := MapMODS(th, c, "Halewick University")
	require.NoError(t, err)
	record := string(encoded)

	assert.NotContains(t, record, "<extent>")
	assert.NotContains(t, record, "<abstract>")
	assert.NotContains(t, record, "<subject")
	assert.NotContains(t, record, "<language>")
	// A lone last name gets no trailing comma.
	assert.Contains(t, record, "<namePart>Okafor</namePart>")
}

func TestExtentText(t *testing.T) {
	body := 220

	assert.Equal(t, "xii, 220 p.", extentText("xii", &body))
	assert.Equal(t, "xii p.", extentText("xii", nil))
	assert.Equal(t, "220 p.", extentText("", &body))
	assert.Equal(t, "", extentText("", nil))
}
