package schema

// DegreeTable represents the 'etd.degree' table
type DegreeTable struct {
	Table        string
	ID           string
	Abbreviation string
	Name         string
	DegreeType   string
}

// Degree is the schema definition for etd.degree
var Degree = DegreeTable{
	Table:        "etd.degree",
	ID:           "id",
	Abbreviation: "abbreviation",
	Name:         "name",
	DegreeType:   "degreetype",
}

func (t DegreeTable) Columns() []string {
	return []string{t.ID, t.Abbreviation, t.Name, t.DegreeType}
}
