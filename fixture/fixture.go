// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fixture

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Seed is the top-level shape of a YAML seed file. All sections are optional.
type Seed struct {
	Committees  []Committee  `yaml:"committees"`
	Legislators []Legislator `yaml:"legislators"`
	Bills       []Bill       `yaml:"bills"`
	Calendars   []Calendar   `yaml:"calendars"`
}

type Committee struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Abbreviation string `yaml:"abbreviation"`
	Chamber      string `yaml:"chamber"`
}

type Legislator struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Party    string `yaml:"party"`
	Chamber  string `yaml:"chamber"`
	District string `yaml:"district"`
}

type Bill struct {
	BillNumber       string   `yaml:"billNumber"`
	SponsorDisplay   string   `yaml:"sponsorDisplay"`
	ShortTitle       string   `yaml:"shortTitle"`
	CrossFileID      string   `yaml:"crossFileId"`
	OriginChamber    string   `yaml:"originChamber"`
	Flagged          bool     `yaml:"flagged"`
	CurrentCommittee string   `yaml:"currentCommittee"`
	Actions          []Action `yaml:"actions"`
	Notes            []string `yaml:"notes"`
}

type Action struct {
	ID          string `yaml:"id"`
	Chamber     string `yaml:"chamber"`
	ActionCode  string `yaml:"actionCode"`
	CommitteeID string `yaml:"committeeId"`
	Source      string `yaml:"source"`
	RecordedAt  string `yaml:"recordedAt"` // RFC 3339
	YesVotes    *int   `yaml:"yesVotes"`
	NoVotes     *int   `yaml:"noVotes"`
	NotVoting   *int   `yaml:"notVoting"`
	Excused     *int   `yaml:"excused"`
	Absent      *int   `yaml:"absent"`
	VoteResult  string `yaml:"voteResult"`
	Description string `yaml:"description"`
	Motion      string `yaml:"motion"`
	DataSource  string `yaml:"dataSource"` // raw JSON
	Votes       []Vote `yaml:"votes"`
}

type Vote struct {
	Legislator string `yaml:"legislator"` // legislator id
	Vote       string `yaml:"vote"`
}

type Calendar struct {
	ID            string `yaml:"id"`
	Type          string `yaml:"type"`
	Number        *int   `yaml:"number"`
	Date          string `yaml:"date"` // YYYY-MM-DD
	Name          string `yaml:"name"`
	Committee     string `yaml:"committee"`
	ConsentNumber *int   `yaml:"consentNumber"`
	Items         []Item `yaml:"items"`
}

type Item struct {
	Position   int    `yaml:"position"`
	Bill       string `yaml:"bill"`
	Notes      string `yaml:"notes"`
	ActionText string `yaml:"actionText"`
}

// Load reads and parses a YAML seed file.
func Load(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &seed, nil
}

// Apply inserts the seed data in dependency order inside one transaction.
// Records without an explicit id get a generated one.
func Apply(db *sql.DB, seed *Seed) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, c := range seed.Committees {
		_, err := tx.Exec(`
			INSERT INTO committee (id, name, abbreviation, chamber)
			VALUES ($1, $2, $3, $4)
		`, orGenerated(c.ID), c.Name, c.Abbreviation, c.Chamber)
		if err != nil {
			return fmt.Errorf("failed to seed committee %q: %w", c.Name, err)
		}
	}

	for _, l := range seed.Legislators {
		_, err := tx.Exec(`
			INSERT INTO legislator (id, name, party, chamber, district)
			VALUES ($1, $2, $3, $4, $5)
		`, orGenerated(l.ID), l.Name, l.Party, l.Chamber, l.District)
		if err != nil {
			return fmt.Errorf("failed to seed legislator %q: %w", l.Name, err)
		}
	}

	for _, b := range seed.Bills {
		if err := applyBill(tx, b); err != nil {
			return err
		}
	}

	for _, c := range seed.Calendars {
		if err := applyCalendar(tx, c); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return nil
}

func applyBill(tx *sql.Tx, b Bill) error {
	_, err := tx.Exec(`
		INSERT INTO bill (bill_number, sponsor_display, short_title,
			cross_file_external_id, origin_chamber, is_flagged, current_committee_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, b.BillNumber, b.SponsorDisplay, b.ShortTitle,
		b.CrossFileID, b.OriginChamber, b.Flagged, nullable(b.CurrentCommittee))
	if err != nil {
		return fmt.Errorf("failed to seed bill %s: %w", b.BillNumber, err)
	}

	for _, a := range b.Actions {
		actionID := orGenerated(a.ID)
		var recordedAt any
		if a.RecordedAt != "" {
			ts, err := time.Parse(time.RFC3339, a.RecordedAt)
			if err != nil {
				return fmt.Errorf("bill %s: bad recordedAt %q: %w", b.BillNumber, a.RecordedAt, err)
			}
			recordedAt = ts
		}
		_, err := tx.Exec(`
			INSERT INTO bill_action (id, bill_number, chamber, action_code,
				committee_id, source, recorded_at,
				yes_votes, no_votes, not_voting, excused, absent,
				vote_result, description, motion, data_source)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		`, actionID, b.BillNumber, a.Chamber, a.ActionCode,
			nullable(a.CommitteeID), a.Source, recordedAt,
			nullableInt(a.YesVotes), nullableInt(a.NoVotes), nullableInt(a.NotVoting),
			nullableInt(a.Excused), nullableInt(a.Absent),
			a.VoteResult, a.Description, a.Motion, nullable(a.DataSource))
		if err != nil {
			return fmt.Errorf("failed to seed action for %s: %w", b.BillNumber, err)
		}

		for _, v := range a.Votes {
			_, err := tx.Exec(`
				INSERT INTO bill_vote (bill_action_id, legislator_id, vote)
				VALUES ($1, $2, $3)
			`, actionID, v.Legislator, v.Vote)
			if err != nil {
				return fmt.Errorf("failed to seed ballot for %s: %w", b.BillNumber, err)
			}
		}
	}

	for _, note := range b.Notes {
		_, err := tx.Exec(`
			INSERT INTO bill_note (id, bill_number, body)
			VALUES ($1, $2, $3)
		`, uuid.New().String(), b.BillNumber, note)
		if err != nil {
			return fmt.Errorf("failed to seed note for %s: %w", b.BillNumber, err)
		}
	}
	return nil
}

func applyCalendar(tx *sql.Tx, c Calendar) error {
	calendarID := orGenerated(c.ID)
	_, err := tx.Exec(`
		INSERT INTO calendar (id, calendar_type, calendar_number, calendar_date,
			calendar_name, committee_id, consent_calendar_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, calendarID, c.Type, nullableInt(c.Number), c.Date,
		c.Name, nullable(c.Committee), nullableInt(c.ConsentNumber))
	if err != nil {
		return fmt.Errorf("failed to seed calendar %s: %w", calendarID, err)
	}

	for _, it := range c.Items {
		_, err := tx.Exec(`
			INSERT INTO calendar_item (id, calendar_id, position, bill_number, notes, action_text)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, uuid.New().String(), calendarID, it.Position, nullable(it.Bill), it.Notes, it.ActionText)
		if err != nil {
			return fmt.Errorf("failed to seed calendar item for %s: %w", calendarID, err)
		}
	}
	return nil
}

func orGenerated(id string) string {
	if id != "" {
		return id
	}
	return uuid.New().String()
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableInt(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}
