// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"

	"github.com/danielhkuo/legitrack/models"
)

func flexFromNull(n sql.NullInt64) models.FlexInt {
	if !n.Valid {
		return models.FlexInt{}
	}
	return models.NewFlexInt(int(n.Int64))
}

// loadCalendarEntries fetches calendars (with committee reference and items)
// for an inclusive date range. Bills are resolved separately and attached to
// items afterwards, so each distinct bill is loaded once.
func loadCalendarEntries(db *sql.DB, from, to string) ([]models.CalendarEntry, error) {
	rows, err := db.Query(`
		SELECT c.id, c.calendar_type, c.calendar_number, c.calendar_date,
		       c.calendar_name, c.consent_calendar_number,
		       cm.id, cm.name, cm.abbreviation
		FROM calendar c
		LEFT JOIN committee cm ON c.committee_id = cm.id
		WHERE c.calendar_date >= $1 AND c.calendar_date <= $2
		ORDER BY c.calendar_date, c.id
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.CalendarEntry
	for rows.Next() {
		var e models.CalendarEntry
		var number, consent sql.NullInt64
		var name sql.NullString
		var cmID, cmName, cmAbbr sql.NullString
		if err := rows.Scan(&e.ID, &e.CalendarType, &number, &e.CalendarDate,
			&name, &consent, &cmID, &cmName, &cmAbbr); err != nil {
			return nil, err
		}
		e.CalendarNumber = flexFromNull(number)
		e.CalendarName = name.String
		if consent.Valid {
			e.Metadata = &models.CalendarMeta{ConsentCalendarNumber: models.NewFlexInt(int(consent.Int64))}
		}
		if cmID.Valid {
			e.Committee = &models.Committee{ID: cmID.String, Name: cmName.String, Abbreviation: cmAbbr.String}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	bills := make(map[string]*models.Bill)
	for i := range entries {
		items, err := loadCalendarItems(db, entries[i].ID, bills)
		if err != nil {
			return nil, err
		}
		entries[i].Items = items
	}
	return entries, nil
}

func loadCalendarItems(db *sql.DB, calendarID string, bills map[string]*models.Bill) ([]models.CalendarItem, error) {
	rows, err := db.Query(`
		SELECT id, position, bill_number, notes, action_text
		FROM calendar_item
		WHERE calendar_id = $1
		ORDER BY position, id
	`, calendarID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.CalendarItem
	for rows.Next() {
		var it models.CalendarItem
		var billNumber, notes, actionText sql.NullString
		if err := rows.Scan(&it.ID, &it.Position, &billNumber, &notes, &actionText); err != nil {
			return nil, err
		}
		it.BillNumber = billNumber.String
		it.Notes = notes.String
		it.ActionText = actionText.String
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Attach bills after the item cursor is closed; sqlite in-memory runs on
	// a single connection.
	for i := range items {
		if items[i].BillNumber == "" {
			continue
		}
		b, cached := bills[items[i].BillNumber]
		if !cached {
			var err error
			b, err = loadBill(db, items[i].BillNumber)
			if err != nil {
				return nil, err
			}
			bills[items[i].BillNumber] = b
		}
		items[i].Bill = b // nil when the bill reference dangles
	}
	return items, nil
}

// loadBill fetches one bill with its actions, ballots, and notes. Returns
// (nil, nil) when the bill does not exist.
func loadBill(db *sql.DB, billNumber string) (*models.Bill, error) {
	var b models.Bill
	var sponsor, title, crossFile, origin, currentCommittee sql.NullString
	err := db.QueryRow(`
		SELECT bill_number, sponsor_display, short_title, cross_file_external_id,
		       origin_chamber, is_flagged, current_committee_id
		FROM bill
		WHERE bill_number = $1
	`, billNumber).Scan(&b.BillNumber, &sponsor, &title, &crossFile, &origin,
		&b.IsFlagged, &currentCommittee)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	b.SponsorDisplay = sponsor.String
	b.ShortTitle = title.String
	b.CrossFileExternalID = crossFile.String
	b.OriginChamber = origin.String
	if currentCommittee.Valid {
		b.CurrentCommittee = &models.CurrentCommittee{CommitteeID: currentCommittee.String}
	}

	if b.Actions, err = loadBillActions(db, billNumber); err != nil {
		return nil, err
	}
	if b.Votes, err = loadBillVotes(db, billNumber); err != nil {
		return nil, err
	}
	if b.Notes, err = loadBillNotes(db, billNumber); err != nil {
		return nil, err
	}
	return &b, nil
}

func loadBillActions(db *sql.DB, billNumber string) ([]models.BillAction, error) {
	rows, err := db.Query(`
		SELECT id, chamber, action_code, committee_id, source, recorded_at,
		       yes_votes, no_votes, not_voting, excused, absent,
		       vote_result, description, motion, data_source
		FROM bill_action
		WHERE bill_number = $1
		ORDER BY recorded_at, id
	`, billNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var actions []models.BillAction
	for rows.Next() {
		var a models.BillAction
		var chamber, code, committee, source sql.NullString
		var recorded sql.NullTime
		var yes, no, nv, excused, absent sql.NullInt64
		var result, description, motion, dataSource sql.NullString
		if err := rows.Scan(&a.ID, &chamber, &code, &committee, &source, &recorded,
			&yes, &no, &nv, &excused, &absent,
			&result, &description, &motion, &dataSource); err != nil {
			return nil, err
		}
		a.BillNumber = billNumber
		a.Chamber = chamber.String
		a.ActionCode = code.String
		a.CommitteeID = committee.String
		a.Source = source.String
		if recorded.Valid {
			a.RecordedAt = recorded.Time
		}
		a.YesVotes = flexFromNull(yes)
		a.NoVotes = flexFromNull(no)
		a.NotVoting = flexFromNull(nv)
		a.Excused = flexFromNull(excused)
		a.Absent = flexFromNull(absent)
		a.VoteResult = result.String
		a.Description = description.String
		a.Motion = motion.String
		if dataSource.Valid && dataSource.String != "" {
			// data_source holds the raw upstream payload; a record that fails
			// to parse is treated as no payload at all.
			var payload map[string]any
			if err := json.Unmarshal([]byte(dataSource.String), &payload); err == nil {
				a.DataSource = payload
			}
		}
		actions = append(actions, a)
	}
	return actions, rows.Err()
}

func loadBillVotes(db *sql.DB, billNumber string) ([]models.BillVote, error) {
	rows, err := db.Query(`
		SELECT v.bill_action_id, v.vote, l.id, l.name, l.party
		FROM bill_vote v
		JOIN bill_action a ON v.bill_action_id = a.id
		LEFT JOIN legislator l ON v.legislator_id = l.id
		WHERE a.bill_number = $1
		ORDER BY v.bill_action_id, l.id
	`, billNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var votes []models.BillVote
	for rows.Next() {
		var v models.BillVote
		var vote, legID, legName, legParty sql.NullString
		if err := rows.Scan(&v.BillActionID, &vote, &legID, &legName, &legParty); err != nil {
			return nil, err
		}
		v.Vote = vote.String
		if legID.Valid {
			v.Legislator = &models.Legislator{ID: legID.String, Name: legName.String, Party: legParty.String}
		}
		votes = append(votes, v)
	}
	return votes, rows.Err()
}

func loadBillNotes(db *sql.DB, billNumber string) ([]models.Note, error) {
	rows, err := db.Query(`
		SELECT id, body, created_at
		FROM bill_note
		WHERE bill_number = $1
		ORDER BY created_at, id
	`, billNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.Body, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
