// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package report is the calendar report compilation and vote reconciliation
engine. Everything in it is a pure, side-effect-free transformation over
in-memory records: each call receives a fresh snapshot and returns a new
derived structure, so concurrent report requests share nothing.

# Calendar Organization

OrganizeFloorCalendars turns a flat list of calendar entries into ordered
sections (First Reading through Vetoed, fixed order) and, within each section,
groups keyed by committee/report/consent number (committee reports) or
calendar number (everything else):

	sections := report.OrganizeFloorCalendars(entries, report.OrganizeOptions{
		HiddenTypes: report.ParseHiddenCalendars("first,laid_over"),
	})

SectionDateLabel computes the section's date-range label, with dates pinned
to UTC so a bare YYYY-MM-DD never drifts a day.

# Vote Reconciliation

PickCommitteeVoteForCommittee selects the single authoritative committee-vote
record for a bill/committee, preferring the automated MGA record when it has
real counts and backfilling its numbers from a manual entry when it does not.
PickPreferredCommitteeVoteFromActions is the coarser fallback chain used as a
display source. Both precedence chains share one core (Reconcile) selected by
ReconcilePolicy.

Whether a record "has data" is decided by HasAnyCounts over the canonical
tally built by ExtractCounts / ExtractCountsFromVoteAIResult, never by the
mere presence of an action.

# Voting-Pattern Classification

Two classifiers over one action's ballots, kept deliberately separate because
their call sites disagree on edge cases:

  - CommitteePartyLineLabel (lenient, report rows): Unanimous / PartyLine /
    PartySplit, or no label when unclassifiable.
  - ComputeStrictPartyLine (strict, detail page): UNANIMOUS_FOR / PARTY_LINE /
    SPLIT (exactly one defector, count preserved) / NOT_PARTY_LINE, with
    per-party totals and direction.

# Error Handling

The engine never returns errors. Malformed or missing optional data (null
committee id, missing bill reference, non-numeric counts, absent ballots)
degrades to empty or "not classifiable" outputs so a report always renders
something for every entry.
*/
package report
