// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
legitrack compiles legislative floor calendars into session-day reports and
reconciles committee vote records from competing sources.

The pipeline: calendar rows for a date range are grouped into a fixed section
taxonomy (First Reading through Vetoed), committee reports are bucketed by
committee and report number, and each bill row is annotated with its
reconciled committee vote, a voting-pattern label, and a display tally.

Vote records arrive from two places that routinely disagree: the automated
scrape of the state assembly site (MGA) and staff manual entry. The report
package owns the precedence rules that pick one authoritative record per
bill, including the hybrid case where a scraped record's missing tally is
backfilled from a manual entry.

Usage:

	legitrack -d file:legitrack.db        # sqlite
	legitrack -t postgres -d postgres://… # postgres
	legitrack -d file:dev.db -seed seed.yaml

Configuration may also come from PORT, DATABASE_URL, DATABASE_TYPE, and
SEED_FILE environment variables, or a .env file.
*/
package main
