// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/danielhkuo/legitrack/models"
	"github.com/danielhkuo/legitrack/testutil"
)

func TestGetCalendarReport_RequiresDateRange(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h := NewReportHandler(conn)

	testCases := []struct {
		name string
		path string
	}{
		{"no params", "/reports/calendar"},
		{"missing to", "/reports/calendar?from=2025-03-01"},
		{"missing from", "/reports/calendar?to=2025-03-07"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, w := testutil.MakeRequest(t, "GET", tc.path, nil)
			h.GetCalendarReport(w, req)
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestGetCalendarReport_EmptyRange(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h := NewReportHandler(conn)

	req, w := testutil.MakeRequest(t, "GET", "/reports/calendar?from=2025-03-01&to=2025-03-07", nil)
	h.GetCalendarReport(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.CalendarReportResponse
	testutil.DecodeJSON(t, w, &resp)

	// All six sections render even with no data.
	if len(resp.Sections) != 6 {
		t.Fatalf("Expected 6 sections, got %d", len(resp.Sections))
	}
	for _, s := range resp.Sections {
		if len(s.Groups) != 0 {
			t.Errorf("Expected empty groups in section %s, got %d", s.Title, len(s.Groups))
		}
	}
	if resp.Sections[0].Title != "First Reading" || resp.Sections[5].Title != "Vetoed" {
		t.Errorf("Unexpected section order: %s ... %s", resp.Sections[0].Title, resp.Sections[5].Title)
	}
}

func TestGetCalendarReport_FullReport(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h := NewReportHandler(conn)

	committeeID := testutil.InsertCommittee(t, conn, "Judiciary", "JUD")
	demA := testutil.InsertLegislator(t, conn, "Dem A", "Democrat")
	demB := testutil.InsertLegislator(t, conn, "Dem B", "Democrat")
	repA := testutil.InsertLegislator(t, conn, "Rep A", "Republican")

	testutil.InsertBill(t, conn, testutil.BillOpts{
		BillNumber:         "HB0100",
		ShortTitle:         "Consumer Protection Act",
		SponsorDisplay:     "Delegate Smith",
		OriginChamber:      "HOUSE",
		IsFlagged:          true,
		CurrentCommitteeID: committeeID,
	})
	actionID := testutil.InsertAction(t, conn, testutil.ActionOpts{
		BillNumber:  "HB0100",
		ActionCode:  "COMMITTEE_VOTE",
		CommitteeID: committeeID,
		Source:      "MGA_SCRAPE",
		RecordedAt:  time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Yes:         testutil.IntPtr(2),
		No:          testutil.IntPtr(1),
		VoteResult:  "Favorable",
	})
	testutil.InsertVote(t, conn, actionID, demA, "YEA")
	testutil.InsertVote(t, conn, actionID, demB, "YEA")
	testutil.InsertVote(t, conn, actionID, repA, "NAY")

	calID := testutil.InsertCalendar(t, conn, testutil.CalendarOpts{
		CalendarType: "COMMITTEE_REPORT",
		Number:       testutil.IntPtr(12),
		Date:         "2025-03-03",
		CommitteeID:  committeeID,
	})
	testutil.InsertCalendarItem(t, conn, calID, 1, "HB0100")

	req, w := testutil.MakeRequest(t, "GET", "/reports/calendar?from=2025-03-01&to=2025-03-07", nil)
	h.GetCalendarReport(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.CalendarReportResponse
	testutil.DecodeJSON(t, w, &resp)

	var second *models.ReportSectionView
	for i := range resp.Sections {
		if resp.Sections[i].CalendarType == "COMMITTEE_REPORT" {
			second = &resp.Sections[i]
		}
	}
	if second == nil {
		t.Fatal("Expected a Second Reading section")
	}
	if second.DateLabel != "March 3, 2025" {
		t.Errorf("Expected date label 'March 3, 2025', got '%s'", second.DateLabel)
	}
	if len(second.Groups) != 1 {
		t.Fatalf("Expected 1 group, got %d", len(second.Groups))
	}
	g := second.Groups[0]
	if g.Heading != "Judiciary - Report 12" {
		t.Errorf("Expected heading 'Judiciary - Report 12', got '%s'", g.Heading)
	}
	if len(g.Rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(g.Rows))
	}
	row := g.Rows[0]
	if row.BillNumber != "HB0100" {
		t.Errorf("Expected bill HB0100, got %s", row.BillNumber)
	}
	if row.ShortTitle != "Consumer Protection Act" {
		t.Errorf("Unexpected short title: %s", row.ShortTitle)
	}
	if !row.IsFlagged {
		t.Error("Expected row to be flagged")
	}
	if row.CountsDisplay != "2-1" {
		t.Errorf("Expected counts '2-1', got '%s'", row.CountsDisplay)
	}
	if row.PatternLabel != "PartyLine" {
		t.Errorf("Expected pattern 'PartyLine', got '%s'", row.PatternLabel)
	}
	if row.StatusText != "Favorable" {
		t.Errorf("Expected status 'Favorable', got '%s'", row.StatusText)
	}
}

func TestGetCalendarReport_Filters(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h := NewReportHandler(conn)

	testutil.InsertBill(t, conn, testutil.BillOpts{BillNumber: "SB0001", IsFlagged: true})
	testutil.InsertBill(t, conn, testutil.BillOpts{BillNumber: "SB0002"})

	calID := testutil.InsertCalendar(t, conn, testutil.CalendarOpts{
		CalendarType: "FIRST_READING",
		Number:       testutil.IntPtr(3),
		Date:         "2025-03-04",
	})
	testutil.InsertCalendarItem(t, conn, calID, 1, "SB0001")
	testutil.InsertCalendarItem(t, conn, calID, 2, "SB0002")

	t.Run("hide empty section", func(t *testing.T) {
		req, w := testutil.MakeRequest(t, "GET",
			"/reports/calendar?from=2025-03-01&to=2025-03-07&hide=vetoed", nil)
		h.GetCalendarReport(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.CalendarReportResponse
		testutil.DecodeJSON(t, w, &resp)
		if len(resp.Sections) != 5 {
			t.Fatalf("Expected 5 sections with vetoed hidden, got %d", len(resp.Sections))
		}
		for _, s := range resp.Sections {
			if s.CalendarType == "VETOED" {
				t.Error("Vetoed section should be hidden")
			}
		}
	})

	t.Run("hidden section with data still renders", func(t *testing.T) {
		req, w := testutil.MakeRequest(t, "GET",
			"/reports/calendar?from=2025-03-01&to=2025-03-07&hide=first", nil)
		h.GetCalendarReport(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.CalendarReportResponse
		testutil.DecodeJSON(t, w, &resp)
		found := false
		for _, s := range resp.Sections {
			if s.CalendarType == "FIRST_READING" {
				found = true
			}
		}
		if !found {
			t.Error("First Reading has bills, so hiding it must not suppress it")
		}
	})

	t.Run("flagged only", func(t *testing.T) {
		req, w := testutil.MakeRequest(t, "GET",
			"/reports/calendar?from=2025-03-01&to=2025-03-07&flagged_only=true", nil)
		h.GetCalendarReport(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.CalendarReportResponse
		testutil.DecodeJSON(t, w, &resp)
		for _, s := range resp.Sections {
			if s.CalendarType != "FIRST_READING" {
				continue
			}
			if len(s.Groups) != 1 || len(s.Groups[0].Rows) != 1 {
				t.Fatalf("Expected 1 group with 1 flagged row, got %+v", s.Groups)
			}
			if s.Groups[0].Rows[0].BillNumber != "SB0001" {
				t.Errorf("Expected SB0001, got %s", s.Groups[0].Rows[0].BillNumber)
			}
		}
	})
}

func TestGetCalendarReport_HideUnanimous(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h := NewReportHandler(conn)

	committeeID := testutil.InsertCommittee(t, conn, "Finance", "FIN")
	dem := testutil.InsertLegislator(t, conn, "Dem", "Democrat")
	rep := testutil.InsertLegislator(t, conn, "Rep", "Republican")

	testutil.InsertBill(t, conn, testutil.BillOpts{BillNumber: "SB0100", CurrentCommitteeID: committeeID})
	actionID := testutil.InsertAction(t, conn, testutil.ActionOpts{
		BillNumber:  "SB0100",
		ActionCode:  "COMMITTEE_VOTE",
		CommitteeID: committeeID,
		Source:      "MGA_SCRAPE",
		Yes:         testutil.IntPtr(2),
		No:          testutil.IntPtr(0),
	})
	testutil.InsertVote(t, conn, actionID, dem, "YEA")
	testutil.InsertVote(t, conn, actionID, rep, "YEA")

	calID := testutil.InsertCalendar(t, conn, testutil.CalendarOpts{
		CalendarType: "THIRD_READING",
		Number:       testutil.IntPtr(1),
		Date:         "2025-03-05",
	})
	testutil.InsertCalendarItem(t, conn, calID, 1, "SB0100")

	req, w := testutil.MakeRequest(t, "GET",
		"/reports/calendar?from=2025-03-01&to=2025-03-07&hide_unanimous=true", nil)
	h.GetCalendarReport(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.CalendarReportResponse
	testutil.DecodeJSON(t, w, &resp)
	for _, s := range resp.Sections {
		if s.CalendarType != "THIRD_READING" {
			continue
		}
		if len(s.Groups) != 1 {
			t.Fatalf("Expected the group to remain, got %d groups", len(s.Groups))
		}
		if len(s.Groups[0].Rows) != 0 {
			t.Errorf("Expected unanimous row to be dropped, got %d rows", len(s.Groups[0].Rows))
		}
	}
}
