package schema

// ThesisKeywordTable represents the 'etd.thesiskeyword' join table
type ThesisKeywordTable struct {
	Table     string
	ThesisID  string
	KeywordID string
}

// ThesisKeyword is the schema definition for etd.thesiskeyword
var ThesisKeyword = ThesisKeywordTable{
	Table:     "etd.thesiskeyword",
	ThesisID:  "thesisid",
	KeywordID: "keywordid",
}

func (t ThesisKeywordTable) Columns() []string {
	return []string{t.ThesisID, t.KeywordID}
}
