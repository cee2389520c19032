// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package reference

import "context"

type Repository interface {
	ListDegrees(context context.Context) ([]*Degree, error)
	GetDegree(context context.Context, id string) (*Degree, error)
	CreateDegree(context context.Context, d *Degree) error

	ListDepartments(context context.Context) ([]*Department, error)
	GetDepartment(context context.Context, id string) (*Department, error)
	CreateDepartment(context context.Context, d *Department) error

	ListLanguages(context context.Context) ([]*Language, error)
	GetLanguageByName(context context.Context, name string) (*Language, error)
}
