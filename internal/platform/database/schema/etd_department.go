package schema

// DepartmentTable represents the 'etd.department' table
type DepartmentTable struct {
	Table        string
	ID           string
	Name         string
	CollectionID string
}

// Department is the schema definition for etd.department
var Department = DepartmentTable{
	Table:        "etd.department",
	ID:           "id",
	Name:         "name",
	CollectionID: "collectionid",
}

func (t DepartmentTable) Columns() []string {
	return []string{t.ID, t.Name, t.CollectionID}
}
