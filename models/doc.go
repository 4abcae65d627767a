// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and view types shared across the service.

# Domain Types

Records as the upstream data sources produce them:

  - CalendarEntry: one floor-calendar instance with its items
  - CalendarItem: one bill's appearance on a calendar
  - Bill: bill metadata plus nested actions, votes, notes
  - BillAction: a recorded legislative action with vote tallies
  - BillVote: one legislator's ballot tied to an action
  - Legislator: ballot holder with party affiliation
  - Committee: committee reference (name, abbreviation)
  - Note: free-text bill annotation

# View Types

JSON shapes returned to the report renderers:

  - CalendarReportResponse → ReportSectionView → ReportGroupView → ReportRow
  - BillDetailResponse: bill plus CommitteeVoteView and PartyLineView
  - VoteTally: the canonical six-field tally record

# FlexInt

Upstream feeds encode counts inconsistently: numbers, numeric strings, or
null. FlexInt absorbs all three at the JSON boundary and keeps track of
whether a value was actually present, which matters when reconciliation must
distinguish "zero recorded" from "not recorded".

# Constants

Calendar types:

	CalFirstReading, CalCommitteeReport, CalThirdReading,
	CalSpecialOrder, CalLaidOver, CalVetoed

Action codes:

	ActionCommitteeVote (and the legacy misspelling ActionCommitteeVoteLegacy),
	ActionFloorVote, ActionThirdReading, ActionPassage

Sources:

	SourceManual = "MANUAL"
	SourceMGAPrefix = "MGA" (automated-scrape sources start with this)

Parties:

	PartyDemocrat, PartyRepublican
*/
package models
