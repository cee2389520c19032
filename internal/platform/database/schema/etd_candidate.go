package schema

// CandidateTable represents the 'etd.candidate' table
type CandidateTable struct {
	Table                string
	ID                   string
	PersonID             string
	DateRegistered       string
	Year                 string
	DepartmentID         string
	DegreeID             string
	EmbargoEndYear       string
	PrivateAccessEndDate string
	CreatedAt            string
	UpdatedAt            string
}

// Candidate is the schema definition for etd.candidate
var Candidate = CandidateTable{
	Table:                "etd.candidate",
	ID:                   "id",
	PersonID:             "personid",
	DateRegistered:       "dateregistered",
	Year:                 "year",
	DepartmentID:         "departmentid",
	DegreeID:             "degreeid",
	EmbargoEndYear:       "embargoendyear",
	PrivateAccessEndDate: "privateaccessenddate",
	CreatedAt:            "createdat",
	UpdatedAt:            "updatedat",
}

func (t CandidateTable) Columns() []string {
	return []string{
		t.ID, t.PersonID, t.DateRegistered, t.Year, t.DepartmentID, t.DegreeID,
		t.EmbargoEndYear, t.PrivateAccessEndDate, t.CreatedAt, t.UpdatedAt,
	}
}
