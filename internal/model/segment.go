package model

// Segment identifies one classification axis of the chart of accounts.
type Segment string

const (
	SegmentCompany    Segment = "company"
	SegmentDepartment Segment = "department"
	SegmentAccount    Segment = "account"
)

// Side is the posting side of a journal entry.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)
