package schema

// LanguageTable represents the 'etd.language' table
type LanguageTable struct {
	Table string
	ID    string
	Code  string
	Name  string
}

// Language is the schema definition for etd.language
var Language = LanguageTable{
	Table: "etd.language",
	ID:    "id",
	Code:  "code",
	Name:  "name",
}

func (t LanguageTable) Columns() []string {
	return []string{t.ID, t.Code, t.Name}
}
