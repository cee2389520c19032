// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package people

import "context"

type Repository interface {
	GetPerson(context context.Context, id string) (*Person, error)
	GetPersonByNetID(context context.Context, netid string) (*Person, error)
	CreatePerson(context context.Context, p *Person) error
	UpdatePerson(context context.Context, p *Person) error
}
