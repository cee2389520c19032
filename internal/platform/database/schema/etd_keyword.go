package schema

// KeywordTable represents the 'etd.keyword' table
type KeywordTable struct {
	Table        string
	ID           string
	Text         string
	SearchText   string
	Authority    string
	AuthorityURI string
	ValueURI     string
}

// Keyword is the schema definition for etd.keyword
var Keyword = KeywordTable{
	Table:        "etd.keyword",
	ID:           "id",
	Text:         "text",
	SearchText:   "searchtext",
	Authority:    "authority",
	AuthorityURI: "authorityuri",
	ValueURI:     "valueuri",
}

func (t KeywordTable) Columns() []string {
	return []string{t.ID, t.Text, t.SearchText, t.Authority, t.AuthorityURI, t.ValueURI}
}
