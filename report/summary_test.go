// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danielhkuo/legitrack/models"
)

func TestSummarizeBillVote(t *testing.T) {
	action := committeeAction("mga-1", "jud", "MGA_WEBSITE", 6, 1)
	action.VoteResult = "Favorable"

	b := &models.Bill{
		BillNumber:       "SB0010",
		CurrentCommittee: &models.CurrentCommittee{CommitteeID: "jud"},
		Actions:          []models.BillAction{action},
		Votes: append(
			VotesForAction(nil, ""), // none
			ballotsForAction("mga-1", 4, 0, 2, 1)...,
		),
	}

	got := SummarizeBillVote(b)
	assert.Equal(t, "6-1", got.CountsDisplay)
	assert.Equal(t, PartyLineSplit, got.PatternLabel)
	assert.Equal(t, "Favorable", got.StatusText)
}

func TestSummarizeBillVoteFallsBackToCoarseChain(t *testing.T) {
	// No current committee, so the primary reconciliation has no target, but
	// a committee-vote-coded action still yields a display source.
	a := committeeAction("cv-1", "", models.SourceManual, 5, 2)
	a.Motion = "Favorable with amendments"

	b := &models.Bill{
		BillNumber: "HB0200",
		Actions:    []models.BillAction{a},
	}

	got := SummarizeBillVote(b)
	assert.Equal(t, "5-2", got.CountsDisplay)
	assert.Equal(t, "Favorable with amendments", got.StatusText)
}

func TestSummarizeBillVoteEmpty(t *testing.T) {
	assert.Equal(t, RowSummary{}, SummarizeBillVote(nil))
	assert.Equal(t, RowSummary{}, SummarizeBillVote(&models.Bill{BillNumber: "HB0001"}))
}

func ballotsForAction(actionID string, demYea, demNay, repYea, repNay int) []models.BillVote {
	votes := ballots(demYea, demNay, repYea, repNay)
	for i := range votes {
		votes[i].BillActionID = actionID
	}
	return votes
}
