// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

/*
Package people manages identity records for everyone the workflow touches:
candidates, advisors, and readers.

A person may arrive from several directions (SSO login, staff data entry,
committee registration), each supplying a different subset of identifiers.
The four identifiers (netid, orcid, bannerid, email) are individually
unique when present; empty strings are coerced to NULL so the uniqueness
constraints only bind real values.
*/
package people

import (
	"strings"
	"time"
)

// Person is an identity record referenced by candidates and committee members.
type Person struct {
	ID        string    `json:"id"`
	NetID     *string   `json:"netid"`
	Orcid     *string   `json:"orcid"`
	BannerID  *string   `json:"bannerid"`
	LastName  string    `json:"last_name"`
	FirstName string    `json:"first_name"`
	Middle    string    `json:"middle"`
	Email     *string   `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FormattedName renders "Last, First Middle" for metadata export and
// staff-facing lists. A person with no first name renders as just the
// last name.
func (p *Person) FormattedName() string {
	name := p.LastName
	if p.FirstName != "" {
		name += ", " + p.FirstName + " " + p.Middle
	}
	return strings.TrimSpace(name)
}

// DisplayName renders "First Last" for email salutations.
func (p *Person) DisplayName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// normalizeIdentifiers coerces empty identifier strings to NULL so the
// partial uniqueness constraints ignore them.
func (p *Person) normalizeIdentifiers() {
	p.NetID = nilIfEmpty(p.NetID)
	p.Orcid = nilIfEmpty(p.Orcid)
	p.BannerID = nilIfEmpty(p.BannerID)
	p.Email = nilIfEmpty(p.Email)
}

func nilIfEmpty(s *string) *string {
	if s != nil && *s == "" {
		return nil
	}
	return s
}

// Global field names for validation
const (
	FieldNetID     = "netid"
	FieldOrcid     = "orcid"
	FieldBannerID  = "bannerid"
	FieldLastName  = "last_name"
	FieldFirstName = "first_name"
	FieldMiddle    = "middle"
	FieldEmail     = "email"
)
