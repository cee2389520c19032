package schema

// FormatChecklistTable represents the 'etd.formatchecklist' table
type FormatChecklistTable struct {
	Table                string
	ID                   string
	ThesisID             string
	TitlePageIssue       string
	TitlePageComment     string
	SignaturePageIssue   string
	SignaturePageComment string
	FontIssue            string
	FontComment          string
	SpacingIssue         string
	SpacingComment       string
	MarginsIssue         string
	MarginsComment       string
	PaginationIssue      string
	PaginationComment    string
	FormatIssue          string
	FormatComment        string
	GraphsIssue          string
	GraphsComment        string
	DatingIssue          string
	DatingComment        string
	GeneralComments      string
	UpdatedAt            string
}

// FormatChecklist is the schema definition for etd.formatchecklist
var FormatChecklist = FormatChecklistTable{
	Table:                "etd.formatchecklist",
	ID:                   "id",
	ThesisID:             "thesisid",
	TitlePageIssue:       "titlepageissue",
	TitlePageComment:     "titlepagecomment",
	SignaturePageIssue:   "signaturepageissue",
	SignaturePageComment: "signaturepagecomment",
	FontIssue:            "fontissue",
	FontComment:          "fontcomment",
	SpacingIssue:         "spacingissue",
	SpacingComment:       "spacingcomment",
	MarginsIssue:         "marginsissue",
	MarginsComment:       "marginscomment",
	PaginationIssue:      "paginationissue",
	PaginationComment:    "paginationcomment",
	FormatIssue:          "formatissue",
	FormatComment:        "formatcomment",
	GraphsIssue:          "graphsissue",
	GraphsComment:        "graphscomment",
	DatingIssue:          "datingissue",
	DatingComment:        "datingcomment",
	GeneralComments:      "generalcomments",
	UpdatedAt:            "updatedat",
}

func (t FormatChecklistTable) Columns() []string {
	return []string{
		t.ID, t.ThesisID,
		t.TitlePageIssue, t.TitlePageComment, t.SignaturePageIssue, t.SignaturePageComment,
		t.FontIssue, t.FontComment, t.SpacingIssue, t.SpacingComment,
		t.MarginsIssue, t.MarginsComment, t.PaginationIssue, t.PaginationComment,
		t.FormatIssue, t.FormatComment, t.GraphsIssue, t.GraphsComment,
		t.DatingIssue, t.DatingComment, t.GeneralComments, t.UpdatedAt,
	}
}
