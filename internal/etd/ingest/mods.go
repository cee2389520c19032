// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package ingest

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/etheca/etheca/internal/etd/candidate"
	"github.com/etheca/etheca/internal/etd/thesis"
)

// MODS 3 record structure, limited to the elements a thesis deposit
// carries.
type modsRecord struct {
	XMLName   xml.Name `xml:"mods"`
	Namespace string   `xml:"xmlns,attr"`
	Version   string   `xml:"version,attr"`

	TitleInfo           *modsTitleInfo  `xml:"titleInfo,omitempty"`
	Names               []modsName      `xml:"name"`
	OriginInfo          *modsOriginInfo `xml:"originInfo,omitempty"`
	PhysicalDescription *modsPhysical   `xml:"physicalDescription,omitempty"`
	Notes               []modsNote      `xml:"note"`
	TypeOfResource      string          `xml:"typeOfResource,omitempty"`
	Genres              []modsGenre     `xml:"genre"`
	Abstract            string          `xml:"abstract,omitempty"`
	Subjects            []modsSubject   `xml:"subject"`
	Language            *modsLanguage   `xml:"language,omitempty"`
}

type modsTitleInfo struct {
	Title string `xml:"title"`
}

type modsName struct {
	Type      string     `xml:"type,attr"`
	NameParts []string   `xml:"namePart"`
	Roles     []modsRole `xml:"role"`
}

type modsRole struct {
	RoleTerm modsRoleTerm `xml:"roleTerm"`
}

type modsRoleTerm struct {
	Type string `xml:"type,attr"`
	Text string `xml:",chardata"`
}

type modsOriginInfo struct {
	CopyrightDate string `xml:"copyrightDate"`
}

type modsPhysical struct {
	Extent        string `xml:"extent,omitempty"`
	DigitalOrigin string `xml:"digitalOrigin"`
}

type modsNote struct {
	Text string `xml:",chardata"`
}

type modsGenre struct {
	Authority string `xml:"authority,attr,omitempty"`
	Text      string `xml:",chardata"`
}

type modsSubject struct {
	Authority    string `xml:"authority,attr,omitempty"`
	AuthorityURI string `xml:"authorityURI,attr,omitempty"`
	ValueURI     string `xml:"valueURI,attr,omitempty"`
	Topic        string `xml:"topic"`
}

type modsLanguage struct {
	LanguageTerm modsLanguageTerm `xml:"languageTerm"`
}

type modsLanguageTerm struct {
	Type string `xml:"type,attr"`
	Text string `xml:",chardata"`
}

/*
MapMODS renders the descriptive metadata of a thesis as a MODS 3 XML
record.

The candidate is the creator; committee members appear with their role
display text and the department as a corporate sponsor under the
institution's name. Fields without a value omit their element entirely.
*/
func MapMODS(t *thesis.Thesis, c *candidate.Candidate, institution string) ([]byte, error) {
	record := &modsRecord{
		Namespace: "http://www.loc.gov/mods/v3",
		Version:   "3.7",
	}

	if t.Title != "" {
		record.TitleInfo = &modsTitleInfo{Title: t.Title}
	}

	record.Names = append(record.Names, personalName(c.Person.FormattedName(), "creator"))
	for _, member := range c.Committee {
		record.Names = append(record.Names, personalName(member.Person.FormattedName(), roleDisplay(member.Role)))
	}
	record.Names = append(record.Names, modsName{
		Type:      "corporate",
		NameParts: []string{institution + ". " + c.Department.Name},
		Roles:     []modsRole{{RoleTerm: modsRoleTerm{Type: "text", Text: "sponsor"}}},
	})

	record.OriginInfo = &modsOriginInfo{CopyrightDate: strconv.Itoa(c.Year)}

	record.PhysicalDescription = &modsPhysical{
		DigitalOrigin: "born digital",
		Extent:        extentText(t.NumPrelimPages, t.NumBodyPages),
	}

	record.Notes = append(record.Notes, modsNote{
		Text: fmt.Sprintf("Thesis (%s -- %s %d)", c.Degree.Abbreviation, institution, c.Year),
	})
	record.TypeOfResource = "text"
	record.Genres = append(record.Genres, modsGenre{Authority: "aat", Text: "theses"})
	record.Abstract = t.Abstract

	for _, kw := range t.Keywords {
		record.Subjects = append(record.Subjects, modsSubject{
			Authority:    kw.Authority,
			AuthorityURI: kw.AuthorityURI,
			ValueURI:     kw.ValueURI,
			Topic:        kw.Text,
		})
	}

	if t.Language != nil {
		record.Language = &modsLanguage{
			LanguageTerm: modsLanguageTerm{Type: "text", Text: t.Language.Name},
		}
	}

	encoded, err := xml.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode_mods: %w", err)
	}
	return append([]byte(xml.Header), encoded...), nil
}

// extentText renders the page-count extent. Either count may be absent;
// the element is dropped only when both are.
func extentText(prelim string, body *int) string {
	switch {
	case prelim != "" && body != nil:
		return fmt.Sprintf("%s, %d p.", prelim, *body)
	case prelim != "":
		return prelim + " p."
	case body != nil:
		return fmt.Sprintf("%d p.", *body)
	}
	return ""
}

func personalName(nameText, role string) modsName {
	return modsName{
		Type:      "personal",
		NameParts: []string{nameText},
		Roles:     []modsRole{{RoleTerm: modsRoleTerm{Type: "text", Text: role}}},
	}
}

// roleDisplay maps a stored committee role to its display text.
func roleDisplay(role string) string {
	switch role {
	case candidate.RoleAdvisor:
		return "Advisor"
	case candidate.RoleReader:
		return "Reader"
	}
	if role == "" {
		return ""
	}
	return strings.ToUpper(role[:1]) + role[1:]
}
