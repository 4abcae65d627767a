// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"fmt"

	"github.com/danielhkuo/legitrack/models"
)

// Alternate spellings the nested voteCounts payload uses per canonical field.
// Top-level action fields always win over nested ones.
var nestedCountKeys = map[string][]string{
	"yesVotes":  {"yesVotes", "yeas", "yes"},
	"noVotes":   {"noVotes", "nays", "no"},
	"abstain":   {"abstain", "abstains"},
	"excused":   {"excused"},
	"absent":    {"absent", "absents"},
	"notVoting": {"notVoting", "not_voting", "nv"},
}

func nestedCount(m map[string]any, field string) (int, bool) {
	if m == nil {
		return 0, false
	}
	for _, key := range nestedCountKeys[field] {
		if v, ok := m[key]; ok {
			if n, ok := ToInt(v); ok {
				return n, true
			}
		}
	}
	return 0, false
}

func pickCount(top models.FlexInt, nested map[string]any, field string) int {
	if top.Valid {
		return top.Int
	}
	if n, ok := nestedCount(nested, field); ok {
		return n
	}
	return 0
}

// ExtractCounts builds the canonical tally for an action. A top-level field
// wins over the nested voteCounts payload; any field neither source supplies
// defaults to zero. The action itself has no top-level abstain column, so
// abstains only ever come from the nested payload.
func ExtractCounts(a *models.BillAction) models.VoteTally {
	if a == nil {
		return models.VoteTally{}
	}
	var t models.VoteTally
	t.YesVotes = pickCount(a.YesVotes, a.VoteCounts, "yesVotes")
	t.NoVotes = pickCount(a.NoVotes, a.VoteCounts, "noVotes")
	t.Excused = pickCount(a.Excused, a.VoteCounts, "excused")
	t.Absent = pickCount(a.Absent, a.VoteCounts, "absent")
	t.NotVoting = pickCount(a.NotVoting, a.VoteCounts, "notVoting")
	if n, ok := nestedCount(a.VoteCounts, "abstain"); ok {
		t.Abstain = n
	}
	return t
}

// ExtractCountsFromVoteAIResult reads the AI-extracted tally payload at
// dataSource.voteAiResult.vote, preferring the aggregated totalsRow sub-object
// when present. Reports false when the action carries no such payload.
func ExtractCountsFromVoteAIResult(a *models.BillAction) (models.VoteTally, bool) {
	if a == nil || a.DataSource == nil {
		return models.VoteTally{}, false
	}
	ai, ok := a.DataSource["voteAiResult"].(map[string]any)
	if !ok {
		return models.VoteTally{}, false
	}
	vote, ok := ai["vote"].(map[string]any)
	if !ok {
		return models.VoteTally{}, false
	}
	row := vote
	if totals, ok := vote["totalsRow"].(map[string]any); ok {
		row = totals
	}

	var t models.VoteTally
	if n, ok := ToInt(row["yeas"]); ok {
		t.YesVotes = n
	}
	if n, ok := ToInt(row["nays"]); ok {
		t.NoVotes = n
	}
	if n, ok := nestedCount(row, "abstain"); ok {
		t.Abstain = n
	}
	if n, ok := nestedCount(row, "excused"); ok {
		t.Excused = n
	}
	if n, ok := nestedCount(row, "absent"); ok {
		t.Absent = n
	}
	if n, ok := nestedCount(row, "notVoting"); ok {
		t.NotVoting = n
	}
	return t, true
}

// HasAnyCounts reports whether the tally holds real data: any of the six
// fields strictly greater than zero. This predicate, not mere presence of an
// action, decides whether a source counts as having data.
func HasAnyCounts(t models.VoteTally) bool {
	return t.YesVotes > 0 || t.NoVotes > 0 || t.Abstain > 0 ||
		t.Excused > 0 || t.Absent > 0 || t.NotVoting > 0
}

// FormatCounts renders a tally for report rows: "7-2", with any non-ballot
// counts appended, e.g. "7-2 (1 NV, 2 Absent)".
func FormatCounts(t models.VoteTally) string {
	if !HasAnyCounts(t) {
		return ""
	}
	s := fmt.Sprintf("%d-%d", t.YesVotes, t.NoVotes)
	var extra string
	appendPart := func(n int, label string) {
		if n <= 0 {
			return
		}
		if extra != "" {
			extra += ", "
		}
		extra += fmt.Sprintf("%d %s", n, label)
	}
	appendPart(t.Abstain, "Abstain")
	appendPart(t.Excused, "Excused")
	appendPart(t.Absent, "Absent")
	appendPart(t.NotVoting, "NV")
	if extra != "" {
		s += " (" + extra + ")"
	}
	return s
}
