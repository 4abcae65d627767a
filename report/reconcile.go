// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"sort"
	"strings"

	"github.com/danielhkuo/legitrack/models"
)

// VoteSource identifies which kind of record supplied the reconciled vote.
type VoteSource string

const (
	SourceNone   VoteSource = ""
	SourceMGA    VoteSource = "MGA"
	SourceManual VoteSource = "MANUAL"
	SourceAI     VoteSource = "AI"
	SourceOther  VoteSource = "OTHER"
)

// ReconcilePolicy selects which precedence chain the reconciler runs. The two
// chains are tuned fallbacks grown at different call sites; both are kept.
type ReconcilePolicy string

const (
	// PolicyPreferMGACounts: the automated MGA record wins when it has real
	// counts; manual counts backfill an empty MGA record.
	PolicyPreferMGACounts ReconcilePolicy = "preferMgaCounts"
	// PolicyPreferAnyCounts: coarser chain over committee-vote-coded actions,
	// preferring whichever record carries real counts (AI tally first).
	PolicyPreferAnyCounts ReconcilePolicy = "preferAnyCounts"
)

// ReconciliationResult is the chosen authoritative vote record for a
// bill/committee context. A nil Action means no record matched; that is a
// normal outcome, not an error.
type ReconciliationResult struct {
	Action                    *models.BillAction
	Counts                    models.VoteTally
	Source                    VoteSource
	UsedManualCountsToFillMGA bool
}

// PickCommitteeVoteForCommittee selects the single authoritative committee
// vote among a bill's actions for the target committee. Precedence:
//
//  1. MGA action with real counts wins outright.
//  2. MGA action without counts + manual action with counts: the MGA action
//     is kept for its narrative text but the manual tally fills the numbers
//     (UsedManualCountsToFillMGA is set).
//  3. Manual action, even with empty counts.
//  4. MGA action with empty counts.
func PickCommitteeVoteForCommittee(actions []models.BillAction, committeeID string) ReconciliationResult {
	return reconcile(actions, committeeID, PolicyPreferMGACounts)
}

// PickPreferredCommitteeVoteFromActions is the coarser fallback chain over all
// committee-vote-coded actions, used as a display source when the primary
// reconciliation yields nothing: AI-extracted tally with real counts, else a
// manual entry with real counts, else any non-AI action with real counts,
// else the first committee-vote action found.
func PickPreferredCommitteeVoteFromActions(actions []models.BillAction) ReconciliationResult {
	return reconcile(actions, "", PolicyPreferAnyCounts)
}

// Reconcile runs the chain named by policy. PolicyPreferMGACounts requires a
// committee id; PolicyPreferAnyCounts ignores it.
func Reconcile(actions []models.BillAction, committeeID string, policy ReconcilePolicy) ReconciliationResult {
	return reconcile(actions, committeeID, policy)
}

func reconcile(actions []models.BillAction, committeeID string, policy ReconcilePolicy) ReconciliationResult {
	switch policy {
	case PolicyPreferAnyCounts:
		return reconcileAnyCounts(actions)
	default:
		return reconcileMGACounts(actions, committeeID)
	}
}

// byRecordedAt returns the actions stable-sorted oldest first. Selection used
// to lean on upstream array order being oldest-first; sorting on the recorded
// timestamp makes that explicit. Zero timestamps compare equal, so rows
// without one keep their input order.
func byRecordedAt(actions []models.BillAction) []models.BillAction {
	sorted := make([]models.BillAction, len(actions))
	copy(sorted, actions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RecordedAt.Before(sorted[j].RecordedAt)
	})
	return sorted
}

func isMGASource(source string) bool {
	return strings.HasPrefix(strings.ToUpper(source), models.SourceMGAPrefix)
}

func isCommitteeVoteCode(code string) bool {
	return code == models.ActionCommitteeVote || code == models.ActionCommitteeVoteLegacy
}

func classifySource(a *models.BillAction) VoteSource {
	switch {
	case a == nil:
		return SourceNone
	case isMGASource(a.Source):
		return SourceMGA
	case a.Source == models.SourceManual:
		return SourceManual
	default:
		return SourceOther
	}
}

func reconcileMGACounts(actions []models.BillAction, committeeID string) ReconciliationResult {
	if committeeID == "" {
		return ReconciliationResult{}
	}

	var matched []models.BillAction
	for _, a := range byRecordedAt(actions) {
		if a.CommitteeID != "" && a.CommitteeID == committeeID {
			matched = append(matched, a)
		}
	}
	if len(matched) == 0 {
		return ReconciliationResult{}
	}

	var bestMGA, bestManual *models.BillAction
	for i := range matched {
		a := &matched[i]
		if bestMGA == nil && isMGASource(a.Source) {
			bestMGA = a
		}
		if bestManual == nil && a.Source == models.SourceManual {
			bestManual = a
		}
	}

	mgaCounts := ExtractCounts(bestMGA)
	manualCounts := ExtractCounts(bestManual)

	switch {
	case bestMGA != nil && HasAnyCounts(mgaCounts):
		return ReconciliationResult{Action: bestMGA, Counts: mgaCounts, Source: SourceMGA}
	case bestMGA != nil && bestManual != nil && HasAnyCounts(manualCounts):
		// The MGA row is the official record of the event; manual entry
		// backfills the numbers until the official tally is scraped.
		return ReconciliationResult{
			Action:                    bestMGA,
			Counts:                    manualCounts,
			Source:                    SourceMGA,
			UsedManualCountsToFillMGA: true,
		}
	case bestManual != nil:
		return ReconciliationResult{Action: bestManual, Counts: manualCounts, Source: SourceManual}
	case bestMGA != nil:
		return ReconciliationResult{Action: bestMGA, Counts: mgaCounts, Source: SourceMGA}
	default:
		return ReconciliationResult{}
	}
}

func reconcileAnyCounts(actions []models.BillAction) ReconciliationResult {
	var matched []models.BillAction
	for _, a := range byRecordedAt(actions) {
		if isCommitteeVoteCode(a.ActionCode) {
			matched = append(matched, a)
		}
	}
	if len(matched) == 0 {
		return ReconciliationResult{}
	}

	for i := range matched {
		a := &matched[i]
		if counts, ok := ExtractCountsFromVoteAIResult(a); ok && HasAnyCounts(counts) {
			return ReconciliationResult{Action: a, Counts: counts, Source: SourceAI}
		}
	}
	for i := range matched {
		a := &matched[i]
		if a.Source != models.SourceManual {
			continue
		}
		if counts := ExtractCounts(a); HasAnyCounts(counts) {
			return ReconciliationResult{Action: a, Counts: counts, Source: SourceManual}
		}
	}
	for i := range matched {
		a := &matched[i]
		if _, hasAI := ExtractCountsFromVoteAIResult(a); hasAI {
			continue
		}
		if counts := ExtractCounts(a); HasAnyCounts(counts) {
			return ReconciliationResult{Action: a, Counts: counts, Source: classifySource(a)}
		}
	}
	first := &matched[0]
	return ReconciliationResult{Action: first, Counts: ExtractCounts(first), Source: classifySource(first)}
}
