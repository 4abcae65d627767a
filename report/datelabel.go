// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"strings"
	"time"

	"github.com/danielhkuo/legitrack/models"
)

const dateLabelFormat = "January 2, 2006"

// SectionDateLabel builds the human date-range label for one calendar type
// from the min/max calendarDate among matching entries. A single calendar day
// collapses to one formatted date; otherwise the ends are joined with an
// en dash. Unparseable dates are skipped; no parseable dates yields "".
func SectionDateLabel(entries []models.CalendarEntry, calendarType string) string {
	var min, max time.Time
	for _, e := range entries {
		if e.CalendarType != calendarType {
			continue
		}
		d, ok := parseCalendarDate(e.CalendarDate)
		if !ok {
			continue
		}
		if min.IsZero() || d.Before(min) {
			min = d
		}
		if max.IsZero() || d.After(max) {
			max = d
		}
	}
	if min.IsZero() {
		return ""
	}
	if sameDay(min, max) {
		return min.Format(dateLabelFormat)
	}
	return min.Format(dateLabelFormat) + " – " + max.Format(dateLabelFormat)
}

// parseCalendarDate interprets a bare YYYY-MM-DD as UTC midnight. Treating it
// as local midnight shifts the calendar day for any viewer west of UTC, so
// parsing and formatting both stay pinned to UTC.
func parseCalendarDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.UTC); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
