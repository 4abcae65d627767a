// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/legitrack/middleware"
	"github.com/danielhkuo/legitrack/models"
	"github.com/danielhkuo/legitrack/report"
)

// ReportHandler serves the compiled floor-calendar report.
type ReportHandler struct {
	db *sql.DB
}

func NewReportHandler(db *sql.DB) *ReportHandler {
	return &ReportHandler{db: db}
}

// GetCalendarReport handles GET /reports/calendar?from=&to=
//
// Optional parameters:
//
//   - hide: comma-separated section codes to suppress (first, second, third,
//     special, laid_over, vetoed)
//   - flagged_only: "true" keeps only flagged bills
//   - hide_unanimous: "true" drops rows whose voting pattern is Unanimous
func (h *ReportHandler) GetCalendarReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from := q.Get("from")
	to := q.Get("to")
	if from == "" || to == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "from and to dates are required (YYYY-MM-DD)")
		return
	}

	entries, err := loadCalendarEntries(h.db, from, to)
	if err != nil {
		slog.Error("failed to load calendars", "from", from, "to", to, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load calendars")
		return
	}

	sections := report.OrganizeFloorCalendars(entries, report.OrganizeOptions{
		HiddenTypes: report.ParseHiddenCalendars(q.Get("hide")),
		FlaggedOnly: q.Get("flagged_only") == "true",
	})

	resp := models.CalendarReportResponse{
		From:     from,
		To:       to,
		Sections: buildSectionViews(sections, q.Get("hide_unanimous") == "true"),
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

func buildSectionViews(sections []report.ReportSection, hideUnanimous bool) []models.ReportSectionView {
	views := make([]models.ReportSectionView, 0, len(sections))
	for _, s := range sections {
		sv := models.ReportSectionView{
			Title:        s.Title,
			CalendarType: s.CalendarType,
			DateLabel:    s.DateLabel,
			Groups:       make([]models.ReportGroupView, 0, len(s.Groups)),
		}
		for _, g := range s.Groups {
			gv := models.ReportGroupView{Heading: g.Heading, Rows: []models.ReportRow{}}
			for _, item := range g.Items {
				row := buildReportRow(item)
				if hideUnanimous && row.PatternLabel == string(report.PartyLineUnanimous) {
					continue
				}
				gv.Rows = append(gv.Rows, row)
			}
			sv.Groups = append(sv.Groups, gv)
		}
		views = append(views, sv)
	}
	return views
}

func buildReportRow(item models.CalendarItem) models.ReportRow {
	row := models.ReportRow{
		BillNumber: item.BillNumber,
		Notes:      item.Notes,
		ActionText: item.ActionText,
	}
	if item.Bill != nil {
		row.ShortTitle = item.Bill.ShortTitle
		row.SponsorDisplay = item.Bill.SponsorDisplay
		row.CrossFileExternalID = item.Bill.CrossFileExternalID
		row.OriginChamber = item.Bill.OriginChamber
		row.IsFlagged = item.Bill.IsFlagged

		summary := report.SummarizeBillVote(item.Bill)
		row.CountsDisplay = summary.CountsDisplay
		row.PatternLabel = string(summary.PatternLabel)
		row.StatusText = summary.StatusText
	}
	return row
}
