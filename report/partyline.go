// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import "github.com/danielhkuo/legitrack/models"

// PartyLineLabel is the lenient (report-page) voting-pattern label. The empty
// value means the ballots are not classifiable.
type PartyLineLabel string

const (
	PartyLineNone      PartyLineLabel = ""
	PartyLineUnanimous PartyLineLabel = "Unanimous"
	PartyLineParty     PartyLineLabel = "PartyLine"
	PartyLineSplit     PartyLineLabel = "PartySplit"
)

// StrictOutcome is the strict (detail-page) voting-pattern outcome.
type StrictOutcome string

const (
	StrictUnanimousFor StrictOutcome = "UNANIMOUS_FOR"
	StrictPartyLine    StrictOutcome = "PARTY_LINE"
	StrictSplit        StrictOutcome = "SPLIT"
	StrictNotPartyLine StrictOutcome = "NOT_PARTY_LINE"
)

// Direction names which party took which side of a party-line or split vote.
type Direction string

const (
	DirectionDYeaRNay Direction = "D_YEA_R_NAY"
	DirectionDNayRYea Direction = "D_NAY_R_YEA"
)

// StrictPartyLineResult carries the strict classification with its party
// totals. Defectors is 1 exactly when Outcome is StrictSplit.
type StrictPartyLineResult struct {
	Outcome   StrictOutcome
	Direction Direction
	Defectors int
	DemYea    int
	DemNay    int
	RepYea    int
	RepNay    int
}

// partyTotals counts normalizable YEA/NAY ballots cast by Democrat or
// Republican legislators. Everything else (abstentions, minor parties,
// ballots with no legislator) is excluded.
type partyTotals struct {
	demYea, demNay, repYea, repNay int
}

func tallyByParty(votes []models.BillVote) partyTotals {
	var t partyTotals
	for _, v := range votes {
		if v.Legislator == nil {
			continue
		}
		vote := NormalizeVote(v.Vote)
		if vote == VoteNone {
			continue
		}
		switch v.Legislator.Party {
		case models.PartyDemocrat:
			if vote == VoteYea {
				t.demYea++
			} else {
				t.demNay++
			}
		case models.PartyRepublican:
			if vote == VoteYea {
				t.repYea++
			} else {
				t.repNay++
			}
		}
	}
	return t
}

func (t partyTotals) total() int     { return t.demYea + t.demNay + t.repYea + t.repNay }
func (t partyTotals) nays() int      { return t.demNay + t.repNay }
func (t partyTotals) demsOnly() bool { return t.repYea+t.repNay == 0 }
func (t partyTotals) repsOnly() bool { return t.demYea+t.demNay == 0 }

// CommitteePartyLineLabel classifies an action's ballots for report rows.
// The rules, in order: no classifiable ballots → no label; every considered
// ballot YEA → Unanimous; only one party represented → no label (a split
// cannot be told apart from a line without both parties); each party wholly
// opposite the other → PartyLine; anything else, including a single defector,
// → PartySplit.
func CommitteePartyLineLabel(votes []models.BillVote) PartyLineLabel {
	t := tallyByParty(votes)
	switch {
	case t.total() == 0:
		return PartyLineNone
	case t.nays() == 0:
		return PartyLineUnanimous
	case t.demsOnly() || t.repsOnly():
		return PartyLineNone
	case t.demNay == 0 && t.repYea == 0, t.demYea == 0 && t.repNay == 0:
		return PartyLineParty
	default:
		return PartyLineSplit
	}
}

// ComputeStrictPartyLine is the detail-page classifier. It distinguishes
// UNANIMOUS_FOR (no nay votes at all), PARTY_LINE (each party wholly on one
// side, opposite the other), SPLIT (exactly one cross-party defector from an
// otherwise party-line alignment, with the defector count preserved), and
// NOT_PARTY_LINE (everything else, including zero-vote and single-party-only
// ballot sets).
func ComputeStrictPartyLine(votes []models.BillVote) StrictPartyLineResult {
	t := tallyByParty(votes)
	res := StrictPartyLineResult{
		Outcome: StrictNotPartyLine,
		DemYea:  t.demYea, DemNay: t.demNay,
		RepYea: t.repYea, RepNay: t.repNay,
	}

	if t.total() == 0 {
		return res
	}
	if t.nays() == 0 {
		res.Outcome = StrictUnanimousFor
		return res
	}
	if t.demsOnly() || t.repsOnly() {
		return res
	}

	switch {
	case t.demNay == 0 && t.repYea == 0:
		res.Outcome = StrictPartyLine
		res.Direction = DirectionDYeaRNay
		return res
	case t.demYea == 0 && t.repNay == 0:
		res.Outcome = StrictPartyLine
		res.Direction = DirectionDNayRYea
		return res
	}

	// A split is an otherwise party-line alignment broken by exactly one
	// cross-party defector.
	if t.demYea > 0 && t.repNay > 0 && t.demNay+t.repYea == 1 {
		res.Outcome = StrictSplit
		res.Direction = DirectionDYeaRNay
		res.Defectors = 1
		return res
	}
	if t.demNay > 0 && t.repYea > 0 && t.demYea+t.repNay == 1 {
		res.Outcome = StrictSplit
		res.Direction = DirectionDNayRYea
		res.Defectors = 1
		return res
	}
	return res
}

// VotesForAction filters a bill's ballots down to those cast on one action.
func VotesForAction(votes []models.BillVote, actionID string) []models.BillVote {
	if actionID == "" {
		return nil
	}
	var out []models.BillVote
	for _, v := range votes {
		if v.BillActionID == actionID {
			out = append(out, v)
		}
	}
	return out
}
