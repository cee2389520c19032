// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package keyword

import "context"

type Repository interface {
	GetKeyword(context context.Context, id string) (*Keyword, error)
	GetKeywordByText(context context.Context, text string) (*Keyword, error)
	CreateKeyword(context context.Context, k *Keyword) error
	SearchKeywords(context context.Context, term string, order string) ([]*Keyword, error)
}
