// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

/*
Package reference holds the controlled lookup tables of the submission
workflow: departments, degrees, and languages.

These rows change a handful of times per year (a new program, a renamed
department), so the write surface is staff-only while reads are open to
every authenticated candidate filling out the registration form.
*/
package reference

import "strings"

// Degree types.
const (
	DegreeTypeDoctorate = "doctorate"
	DegreeTypeMasters   = "masters"
)

// Degree is a degree program the Graduate School grants (e.g. "Ph.D.").
type Degree struct {
	ID           string `json:"id"`
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
	DegreeType   string `json:"degree_type"`
}

// TypeAdjective returns the adjective form used in candidate-facing prose
// ("doctoral candidates", "masters candidates").
func (d *Degree) TypeAdjective() string {
	if d.DegreeType == DegreeTypeDoctorate {
		return "doctoral"
	}
	return "masters"
}

// IsDoctorate reports whether the degree is a doctorate.
func (d *Degree) IsDoctorate() bool {
	return d.DegreeType == DegreeTypeDoctorate
}

// Department is an academic unit that grants degrees.
type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// CollectionID is the repository collection new deposits are filed under.
	CollectionID *string `json:"collection_id,omitempty"`
}

// ShortName strips the "Department of " prefix for display and for the
// corporate-name segment of exported metadata.
func (d *Department) ShortName() string {
	return strings.Replace(d.Name, "Department of ", "", 1)
}

// Language is an ISO 639-2 language a thesis may be written in.
type Language struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// Global field names for validation
const (
	FieldName         = "name"
	FieldAbbreviation = "abbreviation"
	FieldDegreeType   = "degree_type"
)
