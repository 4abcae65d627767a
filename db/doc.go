// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema

Tables:

  - committee: legislative committees (name, abbreviation, chamber)
  - legislator: ballot holders with party affiliation
  - bill: bill metadata, flag state, current committee reference
  - bill_action: recorded actions with nullable vote tallies and the raw
    data_source JSON payload (AI-extracted tallies live in there)
  - bill_vote: one legislator's ballot per action
  - bill_note: free-text annotations
  - calendar: floor-calendar instances (type, number, date, consent number)
  - calendar_item: bill appearances on a calendar, ordered by position

# Nullable Tallies

bill_action tally columns are nullable rather than defaulting to zero.
Reconciliation must be able to tell "a tally of zero was recorded" apart from
"no tally was recorded"; collapsing the two at the schema level would break
the manual-backfill path.

# Portability

The DDL uses only the subset SQLite and PostgreSQL share (TEXT/INTEGER/
BOOLEAN/TIMESTAMP, CURRENT_TIMESTAMP), since the server runs on either
driver. data_source is stored as JSON text for the same reason.
*/
package db
