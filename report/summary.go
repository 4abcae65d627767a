// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import "github.com/danielhkuo/legitrack/models"

// RowSummary is the per-row vote summary attached to rendered report rows.
// All fields may be empty when a bill has no usable vote record.
type RowSummary struct {
	CountsDisplay string
	PatternLabel  PartyLineLabel
	StatusText    string
}

// SummarizeBillVote runs the reconciliation chain for a bill's current
// committee and classifies the winning action's ballots. When the primary
// reconciliation finds nothing the coarser committee-vote chain is used as
// the display source.
func SummarizeBillVote(bill *models.Bill) RowSummary {
	if bill == nil {
		return RowSummary{}
	}

	committeeID := ""
	if bill.CurrentCommittee != nil {
		committeeID = bill.CurrentCommittee.CommitteeID
	}
	rec := PickCommitteeVoteForCommittee(bill.Actions, committeeID)
	if rec.Action == nil {
		rec = PickPreferredCommitteeVoteFromActions(bill.Actions)
	}
	if rec.Action == nil {
		return RowSummary{}
	}

	var summary RowSummary
	if HasAnyCounts(rec.Counts) {
		summary.CountsDisplay = FormatCounts(rec.Counts)
	}
	summary.PatternLabel = CommitteePartyLineLabel(VotesForAction(bill.Votes, rec.Action.ID))
	summary.StatusText = firstNonEmpty(rec.Action.VoteResult, rec.Action.Description, rec.Action.Motion)
	return summary
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
