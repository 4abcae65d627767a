// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// VoteTally is the canonical, fully-populated tally record. Every field
// defaults to zero when no source supplied it; "zero recorded" and "not
// recorded" are distinguished upstream of this type, never inside it.
type VoteTally struct {
	YesVotes  int `json:"yesVotes"`
	NoVotes   int `json:"noVotes"`
	Abstain   int `json:"abstain"`
	Excused   int `json:"excused"`
	Absent    int `json:"absent"`
	NotVoting int `json:"notVoting"`
}

// Report response types. These are the JSON shapes handed to the HTML table
// renderer and PDF exporter; they carry the engine's output plus the bill
// columns those layers print.

type CalendarReportResponse struct {
	From     string              `json:"from"`
	To       string              `json:"to"`
	Sections []ReportSectionView `json:"sections"`
}

type ReportSectionView struct {
	Title        string            `json:"title"`
	CalendarType string            `json:"calendarType"`
	DateLabel    string            `json:"dateLabel,omitempty"`
	Groups       []ReportGroupView `json:"groups"`
}

type ReportGroupView struct {
	Heading string      `json:"heading"`
	Rows    []ReportRow `json:"rows"`
}

type ReportRow struct {
	BillNumber          string `json:"billNumber"`
	ShortTitle          string `json:"shortTitle,omitempty"`
	SponsorDisplay      string `json:"sponsorDisplay,omitempty"`
	CrossFileExternalID string `json:"crossFileExternalId,omitempty"`
	OriginChamber       string `json:"originChamber,omitempty"`
	Notes               string `json:"notes,omitempty"`
	ActionText          string `json:"actionText,omitempty"`
	IsFlagged           bool   `json:"isFlagged"`
	CountsDisplay       string `json:"countsDisplay,omitempty"`
	PatternLabel        string `json:"patternLabel,omitempty"`
	StatusText          string `json:"statusText,omitempty"`
}

// Bill detail response types.

type BillDetailResponse struct {
	Bill          Bill               `json:"bill"`
	CommitteeVote *CommitteeVoteView `json:"committeeVote,omitempty"`
	PartyLine     *PartyLineView     `json:"partyLine,omitempty"`
}

// CommitteeVoteView is the reconciled committee vote for a bill.
type CommitteeVoteView struct {
	ActionID                  string    `json:"actionId"`
	Source                    string    `json:"source"`
	Counts                    VoteTally `json:"counts"`
	CountsDisplay             string    `json:"countsDisplay,omitempty"`
	StatusText                string    `json:"statusText,omitempty"`
	UsedManualCountsToFillMGA bool      `json:"usedManualCountsToFillMga"`
}

// PartyLineView is the strict party-line classification of one action's
// ballots.
type PartyLineView struct {
	Outcome   string `json:"outcome"`
	Direction string `json:"direction,omitempty"`
	Defectors int    `json:"defectors"`
	DemYea    int    `json:"demYea"`
	DemNay    int    `json:"demNay"`
	RepYea    int    `json:"repYea"`
	RepNay    int    `json:"repNay"`
}
