package schema

// PersonTable represents the 'etd.person' table
type PersonTable struct {
	Table     string
	ID        string
	NetID     string
	Orcid     string
	BannerID  string
	LastName  string
	FirstName string
	Middle    string
	Email     string
	CreatedAt string
	UpdatedAt string
}

// Person is the schema definition for etd.person
var Person = PersonTable{
	Table:     "etd.person",
	ID:        "id",
	NetID:     "netid",
	Orcid:     "orcid",
	BannerID:  "bannerid",
	LastName:  "lastname",
	FirstName: "firstname",
	Middle:    "middle",
	Email:     "email",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t PersonTable) Columns() []string {
	return []string{t.ID, t.NetID, t.Orcid, t.BannerID, t.LastName, t.FirstName, t.Middle, t.Email, t.CreatedAt, t.UpdatedAt}
}
