// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package people

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerson_FormattedName(t *testing.T) {
	tests := []struct {
		name   string
		person Person
		want   string
	}{
		{"full_name", Person{LastName: "Okafor", FirstName: "Carmen", Middle: "Maria"}, "Okafor, Carmen Maria"},
		{"no_middle", Person{LastName: "Okafor", FirstName: "Carmen"}, "Okafor, Carmen"},
		{"last_only", Person{LastName: "Okafor"}, "Okafor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.person.FormattedName())
		})
	}
}

func TestPerson_NormalizeIdentifiers(t *testing.T) {
	empty := ""
	netid := "cok1"

	p := Person{NetID: &netid, Orcid: &empty, Email: &empty}
	p.normalizeIdentifiers()

	assert.NotNil(t, p.NetID)
	assert.Nil(t, p.Orcid)
	assert.Nil(t, p.Email)
	assert.Nil(t, p.BannerID)
}
