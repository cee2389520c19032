package schema

// CommitteeMemberTable represents the 'etd.committeemember' table
type CommitteeMemberTable struct {
	Table        string
	ID           string
	PersonID     string
	Role         string
	DepartmentID string
	Affiliation  string
	CreatedAt    string
	UpdatedAt    string
}

// CommitteeMember is the schema definition for etd.committeemember
var CommitteeMember = CommitteeMemberTable{
	Table:        "etd.committeemember",
	ID:           "id",
	PersonID:     "personid",
	Role:         "role",
	DepartmentID: "departmentid",
	Affiliation:  "affiliation",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

func (t CommitteeMemberTable) Columns() []string {
	return []string{t.ID, t.PersonID, t.Role, t.DepartmentID, t.Affiliation, t.CreatedAt, t.UpdatedAt}
}
