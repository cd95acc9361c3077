package standings

// IssueKind classifies input that the aggregator tolerated instead of failing on.
type IssueKind string

const (
	IssueConferenceFallback IssueKind = "conference_fallback"
	IssueDuplicateTeam      IssueKind = "duplicate_team"
	IssueMissingTeamRef     IssueKind = "missing_team_reference"
	IssueUngroupedTeam      IssueKind = "ungrouped_team"
	IssueSelfMatch          IssueKind = "self_match"
)

// Issue reports one piece of input that was defaulted or skipped.
// Subject is the id of the group or match concerned.
type Issue struct {
	Kind    IssueKind `json:"kind"`
	Subject string    `json:"subject"`
	Detail  string    `json:"detail"`
}
