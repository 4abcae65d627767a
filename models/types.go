package models

import "time"

// Calendar type constants. CalendarType is an open string upstream; these are
// the values the report taxonomy knows about.
const (
	CalFirstReading    = "FIRST_READING"
	CalCommitteeReport = "COMMITTEE_REPORT"
	CalThirdReading    = "THIRD_READING"
	CalSpecialOrder    = "SPECIAL_ORDER"
	CalLaidOver        = "LAID_OVER"
	CalVetoed          = "VETOED"
)

// Action code constants
const (
	ActionCommitteeVote = "COMMITTEE_VOTE"
	// ActionCommitteeVoteLegacy is a misspelling that still exists on old rows.
	ActionCommitteeVoteLegacy = "COMITTEE_VOTE"
	ActionFloorVote           = "FLOOR_VOTE"
	ActionThirdReading        = "THIRD_READING"
	ActionPassage             = "PASSAGE"
)

// Action source constants. Automated-scrape sources are prefixed "MGA"
// (e.g. "MGA_WEBSITE", "MGA_PDF"); manually entered rows are exactly "MANUAL".
const (
	SourceManual    = "MANUAL"
	SourceMGAPrefix = "MGA"
)

// Party constants
const (
	PartyDemocrat   = "Democrat"
	PartyRepublican = "Republican"
)

// Chamber constants
const (
	ChamberHouse  = "HOUSE"
	ChamberSenate = "SENATE"
)

// Domain types

// Committee is a legislative committee reference.
type Committee struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
	Chamber      string `json:"chamber,omitempty"`
}

// CalendarMeta carries optional nested calendar metadata.
type CalendarMeta struct {
	ConsentCalendarNumber FlexInt `json:"consentCalendarNumber"`
}

// CalendarEntry is one floor-calendar instance. Entries are read-only
// snapshots per report request; the engine never mutates them.
type CalendarEntry struct {
	ID             string         `json:"id"`
	CalendarType   string         `json:"calendarType"`
	CalendarNumber FlexInt        `json:"calendarNumber"`
	CalendarDate   string         `json:"calendarDate"`
	CalendarName   string         `json:"calendarName,omitempty"`
	Committee      *Committee     `json:"committee,omitempty"`
	Metadata       *CalendarMeta  `json:"metadata,omitempty"`
	Items          []CalendarItem `json:"items"`
}

// CalendarItem is one bill's appearance on a calendar. Bill may be nil when
// the referenced bill no longer resolves; the engine skips such rows.
type CalendarItem struct {
	ID         string `json:"id"`
	Position   int    `json:"position"`
	BillNumber string `json:"billNumber"`
	Notes      string `json:"notes,omitempty"`
	ActionText string `json:"actionText,omitempty"`
	Bill       *Bill  `json:"bill,omitempty"`
}

// Bill carries the subset of bill data the report engine reads.
type Bill struct {
	BillNumber          string            `json:"billNumber"`
	SponsorDisplay      string            `json:"sponsorDisplay,omitempty"`
	ShortTitle          string            `json:"shortTitle,omitempty"`
	CrossFileExternalID string            `json:"crossFileExternalId,omitempty"`
	OriginChamber       string            `json:"originChamber,omitempty"`
	IsFlagged           bool              `json:"isFlagged"`
	Actions             []BillAction      `json:"actions"`
	Votes               []BillVote        `json:"votes"`
	Notes               []Note            `json:"notes,omitempty"`
	CurrentCommittee    *CurrentCommittee `json:"currentCommittee,omitempty"`
}

// CurrentCommittee is a bill's last-known committee assignment.
type CurrentCommittee struct {
	CommitteeID    string      `json:"committeeId"`
	LastVoteAction *BillAction `json:"lastVoteAction,omitempty"`
}

// BillAction is a recorded legislative action. Tally fields tolerate upstream
// records that encode counts as strings or omit them entirely (FlexInt).
// VoteCounts and DataSource are heterogeneous upstream payloads; all reading
// of them goes through the report package's count extractors.
type BillAction struct {
	ID          string         `json:"id"`
	BillNumber  string         `json:"billNumber,omitempty"`
	Chamber     string         `json:"chamber,omitempty"`
	ActionCode  string         `json:"actionCode,omitempty"`
	CommitteeID string         `json:"committeeId,omitempty"`
	Source      string         `json:"source,omitempty"`
	RecordedAt  time.Time      `json:"recordedAt,omitzero"`
	YesVotes    FlexInt        `json:"yesVotes"`
	NoVotes     FlexInt        `json:"noVotes"`
	NotVoting   FlexInt        `json:"notVoting"`
	Excused     FlexInt        `json:"excused"`
	Absent      FlexInt        `json:"absent"`
	VoteResult  string         `json:"voteResult,omitempty"`
	Description string         `json:"description,omitempty"`
	Motion      string         `json:"motion,omitempty"`
	VoteCounts  map[string]any `json:"voteCounts,omitempty"`
	DataSource  map[string]any `json:"dataSource,omitempty"`
}

// Legislator is the ballot-holder reference attached to a BillVote.
type Legislator struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Party    string `json:"party,omitempty"`
	Chamber  string `json:"chamber,omitempty"`
	District string `json:"district,omitempty"`
}

// BillVote is one legislator's ballot tied to a specific action.
type BillVote struct {
	BillActionID string      `json:"billActionId"`
	Vote         string      `json:"vote"`
	Legislator   *Legislator `json:"legislator,omitempty"`
}

// Note is a free-text annotation on a bill.
type Note struct {
	ID        string    `json:"id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
