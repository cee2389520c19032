package schema

// ThesisTable represents the 'etd.thesis' table
type ThesisTable struct {
	Table            string
	ID               string
	CandidateID      string
	FileName         string
	OriginalFileName string
	Checksum         string
	Title            string
	Abstract         string
	LanguageID       string
	NumPrelimPages   string
	NumBodyPages     string
	Status           string
	DateSubmitted    string
	DateAccepted     string
	DateRejected     string
	PID              string
	CreatedAt        string
	UpdatedAt        string
}

// Thesis is the schema definition for etd.thesis
var Thesis = ThesisTable{
	Table:            "etd.thesis",
	ID:               "id",
	CandidateID:      "candidateid",
	FileName:         "filename",
	OriginalFileName: "originalfilename",
	Checksum:         "checksum",
	Title:            "title",
	Abstract:         "abstract",
	LanguageID:       "languageid",
	NumPrelimPages:   "numprelimpages",
	NumBodyPages:     "numbodypages",
	Status:           "status",
	DateSubmitted:    "datesubmitted",
	DateAccepted:     "dateaccepted",
	DateRejected:     "daterejected",
	PID:              "pid",
	CreatedAt:        "createdat",
	UpdatedAt:        "updatedat",
}

func (t ThesisTable) Columns() []string {
	return []string{
		t.ID, t.CandidateID, t.FileName, t.OriginalFileName, t.Checksum, t.Title, t.Abstract,
		t.LanguageID, t.NumPrelimPages, t.NumBodyPages, t.Status, t.DateSubmitted, t.DateAccepted,
		t.DateRejected, t.PID, t.CreatedAt, t.UpdatedAt,
	}
}
