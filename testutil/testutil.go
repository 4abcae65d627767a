// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/legitrack/db"
)

// SetupTestDB opens an in-memory sqlite database with the full schema
// applied. Each test gets its own database; the single-connection limit keeps
// the in-memory database alive for the test's duration.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// InsertCommittee creates a committee and returns its id.
func InsertCommittee(t *testing.T, conn *sql.DB, name, abbreviation string) string {
	t.Helper()
	id := uuid.New().String()
	_, err := conn.Exec(`
		INSERT INTO committee (id, name, abbreviation, chamber)
		VALUES ($1, $2, $3, $4)
	`, id, name, abbreviation, "HOUSE")
	if err != nil {
		t.Fatalf("Failed to insert committee: %v", err)
	}
	return id
}

// InsertLegislator creates a legislator and returns its id.
func InsertLegislator(t *testing.T, conn *sql.DB, name, party string) string {
	t.Helper()
	id := uuid.New().String()
	_, err := conn.Exec(`
		INSERT INTO legislator (id, name, party, chamber)
		VALUES ($1, $2, $3, $4)
	`, id, name, party, "HOUSE")
	if err != nil {
		t.Fatalf("Failed to insert legislator: %v", err)
	}
	return id
}

// BillOpts describes a bill row. Zero-value fields insert as empty/NULL.
type BillOpts struct {
	BillNumber         string
	ShortTitle         string
	SponsorDisplay     string
	CrossFileID        string
	OriginChamber      string
	IsFlagged          bool
	CurrentCommitteeID string
}

func InsertBill(t *testing.T, conn *sql.DB, opts BillOpts) {
	t.Helper()
	_, err := conn.Exec(`
		INSERT INTO bill (bill_number, short_title, sponsor_display,
			cross_file_external_id, origin_chamber, is_flagged, current_committee_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, opts.BillNumber, opts.ShortTitle, opts.SponsorDisplay,
		opts.CrossFileID, opts.OriginChamber, opts.IsFlagged,
		nullable(opts.CurrentCommitteeID))
	if err != nil {
		t.Fatalf("Failed to insert bill %s: %v", opts.BillNumber, err)
	}
}

// ActionOpts describes a bill_action row. Nil tally pointers insert as NULL,
// which the count extractor treats as "not recorded" rather than zero.
type ActionOpts struct {
	BillNumber  string
	Chamber     string
	ActionCode  string
	CommitteeID string
	Source      string
	RecordedAt  time.Time
	Yes         *int
	No          *int
	NotVoting   *int
	Excused     *int
	Absent      *int
	VoteResult  string
	Description string
	Motion      string
	DataSource  string // raw JSON payload, empty for NULL
}

func InsertAction(t *testing.T, conn *sql.DB, opts ActionOpts) string {
	t.Helper()
	id := uuid.New().String()
	_, err := conn.Exec(`
		INSERT INTO bill_action (id, bill_number, chamber, action_code,
			committee_id, source, recorded_at,
			yes_votes, no_votes, not_voting, excused, absent,
			vote_result, description, motion, data_source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`, id, opts.BillNumber, opts.Chamber, opts.ActionCode,
		nullable(opts.CommitteeID), opts.Source, opts.RecordedAt,
		nullableInt(opts.Yes), nullableInt(opts.No), nullableInt(opts.NotVoting),
		nullableInt(opts.Excused), nullableInt(opts.Absent),
		opts.VoteResult, opts.Description, opts.Motion, nullable(opts.DataSource))
	if err != nil {
		t.Fatalf("Failed to insert action for %s: %v", opts.BillNumber, err)
	}
	return id
}

func InsertVote(t *testing.T, conn *sql.DB, actionID, legislatorID, vote string) {
	t.Helper()
	_, err := conn.Exec(`
		INSERT INTO bill_vote (bill_action_id, legislator_id, vote)
		VALUES ($1, $2, $3)
	`, actionID, legislatorID, vote)
	if err != nil {
		t.Fatalf("Failed to insert vote: %v", err)
	}
}

// CalendarOpts describes a calendar row. Nil number pointers insert as NULL.
type CalendarOpts struct {
	CalendarType  string
	Number        *int
	Date          string // YYYY-MM-DD
	Name          string
	CommitteeID   string
	ConsentNumber *int
}

func InsertCalendar(t *testing.T, conn *sql.DB, opts CalendarOpts) string {
	t.Helper()
	id := uuid.New().String()
	_, err := conn.Exec(`
		INSERT INTO calendar (id, calendar_type, calendar_number, calendar_date,
			calendar_name, committee_id, consent_calendar_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, id, opts.CalendarType, nullableInt(opts.Number), opts.Date,
		opts.Name, nullable(opts.CommitteeID), nullableInt(opts.ConsentNumber))
	if err != nil {
		t.Fatalf("Failed to insert calendar: %v", err)
	}
	return id
}

func InsertCalendarItem(t *testing.T, conn *sql.DB, calendarID string, position int, billNumber string) string {
	t.Helper()
	id := uuid.New().String()
	_, err := conn.Exec(`
		INSERT INTO calendar_item (id, calendar_id, position, bill_number)
		VALUES ($1, $2, $3, $4)
	`, id, calendarID, position, billNumber)
	if err != nil {
		t.Fatalf("Failed to insert calendar item: %v", err)
	}
	return id
}

// IntPtr is a literal helper for the nullable tally fields.
func IntPtr(n int) *int { return &n }

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

// MakeRequest creates an HTTP request and response recorder for handler
// tests. body may be nil.
func MakeRequest(t *testing.T, method, path string, body io.Reader) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, httptest.NewRecorder()
}

// JSONBody wraps a JSON string for request construction.
func JSONBody(s string) io.Reader {
	return strings.NewReader(s)
}

// AssertStatus fails the test when the recorded status differs.
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Errorf("Expected status %d, got %d (body: %s)", want, w.Code, w.Body.String())
	}
}

// DecodeJSON decodes the recorded response body into v.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode response: %v (body: %s)", err, w.Body.String())
	}
}
