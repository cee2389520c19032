package schema

// CandidateCommitteeTable represents the 'etd.candidatecommittee' join table
type CandidateCommitteeTable struct {
	Table             string
	CandidateID       string
	CommitteeMemberID string
}

// CandidateCommittee is the schema definition for etd.candidatecommittee
var CandidateCommittee = CandidateCommitteeTable{
	Table:             "etd.candidatecommittee",
	CandidateID:       "candidateid",
	CommitteeMemberID: "committeememberid",
}

func (t CandidateCommitteeTable) Columns() []string {
	return []string{t.CandidateID, t.CommitteeMemberID}
}
