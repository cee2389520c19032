// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDegree_TypeAdjective(t *testing.T) {
	tests := []struct {
		name       string
		degreeType string
		want       string
	}{
		{"doctorate", DegreeTypeDoctorate, "doctoral"},
		{"masters", DegreeTypeMasters, "masters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Degree{DegreeType: tt.degreeType}
			assert.Equal(t, tt.want, d.TypeAdjective())
		})
	}
}

func TestDepartment_ShortName(t *testing.T) {
	tests := []struct {
		name     string
		deptName string
		want     string
	}{
		{"with_prefix", "Department of Geology", "Geology"},
		{"without_prefix", "School of Engineering", "School of Engineering"},
		{"prefix_only_stripped_once", "Department of Department of Studies", "Department of Studies"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Department{Name: tt.deptName}
			assert.Equal(t, tt.want, d.ShortName())
		})
	}
}
