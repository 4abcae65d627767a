// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS. The DDL sticks to the
// subset SQLite and PostgreSQL share, since both drivers are supported.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Committees
CREATE TABLE IF NOT EXISTS committee (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    abbreviation TEXT,
    chamber TEXT
);

-- Legislators
CREATE TABLE IF NOT EXISTS legislator (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    party TEXT,
    chamber TEXT,
    district TEXT
);

-- Bills
CREATE TABLE IF NOT EXISTS bill (
    bill_number TEXT PRIMARY KEY,
    sponsor_display TEXT,
    short_title TEXT,
    cross_file_external_id TEXT,
    origin_chamber TEXT,
    is_flagged BOOLEAN NOT NULL DEFAULT FALSE,
    current_committee_id TEXT REFERENCES committee(id)
);

CREATE INDEX IF NOT EXISTS idx_bill_flagged ON bill(is_flagged);

-- Bill actions. Tally columns are nullable on purpose: NULL means "not
-- recorded", which reconciliation treats differently from zero.
CREATE TABLE IF NOT EXISTS bill_action (
    id TEXT PRIMARY KEY,
    bill_number TEXT NOT NULL REFERENCES bill(bill_number) ON DELETE CASCADE,
    chamber TEXT,
    action_code TEXT,
    committee_id TEXT,
    source TEXT,
    recorded_at TIMESTAMP,
    yes_votes INTEGER,
    no_votes INTEGER,
    not_voting INTEGER,
    excused INTEGER,
    absent INTEGER,
    vote_result TEXT,
    description TEXT,
    motion TEXT,
    data_source TEXT
);

CREATE INDEX IF NOT EXISTS idx_bill_action_bill ON bill_action(bill_number);
CREATE INDEX IF NOT EXISTS idx_bill_action_committee ON bill_action(committee_id);

-- Individual ballots
CREATE TABLE IF NOT EXISTS bill_vote (
    bill_action_id TEXT NOT NULL REFERENCES bill_action(id) ON DELETE CASCADE,
    legislator_id TEXT NOT NULL REFERENCES legislator(id),
    vote TEXT,
    PRIMARY KEY (bill_action_id, legislator_id)
);

CREATE INDEX IF NOT EXISTS idx_bill_vote_action ON bill_vote(bill_action_id);

-- Bill notes
CREATE TABLE IF NOT EXISTS bill_note (
    id TEXT PRIMARY KEY,
    bill_number TEXT NOT NULL REFERENCES bill(bill_number) ON DELETE CASCADE,
    body TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_bill_note_bill ON bill_note(bill_number);

-- Floor calendars
CREATE TABLE IF NOT EXISTS calendar (
    id TEXT PRIMARY KEY,
    calendar_type TEXT NOT NULL,
    calendar_number INTEGER,
    calendar_date TEXT NOT NULL,
    calendar_name TEXT,
    committee_id TEXT REFERENCES committee(id),
    consent_calendar_number INTEGER
);

CREATE INDEX IF NOT EXISTS idx_calendar_date ON calendar(calendar_date);
CREATE INDEX IF NOT EXISTS idx_calendar_type ON calendar(calendar_type);

-- Calendar items
CREATE TABLE IF NOT EXISTS calendar_item (
    id TEXT PRIMARY KEY,
    calendar_id TEXT NOT NULL REFERENCES calendar(id) ON DELETE CASCADE,
    position INTEGER NOT NULL DEFAULT 0,
    bill_number TEXT,
    notes TEXT,
    action_text TEXT
);

CREATE INDEX IF NOT EXISTS idx_calendar_item_calendar ON calendar_item(calendar_id);
`
