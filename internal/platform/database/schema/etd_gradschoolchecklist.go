package schema

// GradschoolChecklistTable represents the 'etd.gradschoolchecklist' table
type GradschoolChecklistTable struct {
	Table           string
	ID              string
	CandidateID     string
	DissertationFee string
	BursarReceipt   string
	ExitSurvey      string
	EarnedDocs      string
	PagesSubmitted  string
}

// GradschoolChecklist is the schema definition for etd.gradschoolchecklist
var GradschoolChecklist = GradschoolChecklistTable{
	Table:           "etd.gradschoolchecklist",
	ID:              "id",
	CandidateID:     "candidateid",
	DissertationFee: "dissertationfee",
	BursarReceipt:   "bursarreceipt",
	ExitSurvey:      "exitsurvey",
	EarnedDocs:      "earneddocs",
	PagesSubmitted:  "pagessubmitted",
}

func (t GradschoolChecklistTable) Columns() []string {
	return []string{t.ID, t.CandidateID, t.DissertationFee, t.BursarReceipt, t.ExitSurvey, t.EarnedDocs, t.PagesSubmitted}
}
