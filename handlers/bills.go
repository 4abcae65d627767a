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

// BillHandler serves bill detail and reconciled committee-vote lookups.
type BillHandler struct {
	db *sql.DB
}

func NewBillHandler(db *sql.DB) *BillHandler {
	return &BillHandler{db: db}
}

// GetBill handles GET /bills/{billNumber}
//
// The response carries the bill record plus, when a committee vote can be
// reconciled, the winning vote and its strict party-line classification.
func (h *BillHandler) GetBill(w http.ResponseWriter, r *http.Request) {
	billNumber := r.PathValue("billNumber")
	if billNumber == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Bill number is required")
		return
	}

	bill, err := loadBill(h.db, billNumber)
	if err != nil {
		slog.Error("failed to load bill", "bill", billNumber, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load bill")
		return
	}
	if bill == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Bill not found")
		return
	}

	resp := models.BillDetailResponse{Bill: *bill}

	committeeID := ""
	if bill.CurrentCommittee != nil {
		committeeID = bill.CurrentCommittee.CommitteeID
	}
	rec := report.PickCommitteeVoteForCommittee(bill.Actions, committeeID)
	if rec.Action == nil {
		rec = report.PickPreferredCommitteeVoteFromActions(bill.Actions)
	}
	if rec.Action != nil {
		resp.CommitteeVote = committeeVoteView(rec)
		strict := report.ComputeStrictPartyLine(report.VotesForAction(bill.Votes, rec.Action.ID))
		resp.PartyLine = &models.PartyLineView{
			Outcome:   string(strict.Outcome),
			Direction: string(strict.Direction),
			Defectors: strict.Defectors,
			DemYea:    strict.DemYea,
			DemNay:    strict.DemNay,
			RepYea:    strict.RepYea,
			RepNay:    strict.RepNay,
		}
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetCommitteeVote handles GET /bills/{billNumber}/committee-vote?committee_id=
//
// Runs the committee-scoped reconciliation chain against the given committee
// and returns the winning vote. 404 when no committee vote can be reconciled.
func (h *BillHandler) GetCommitteeVote(w http.ResponseWriter, r *http.Request) {
	billNumber := r.PathValue("billNumber")
	committeeID := r.URL.Query().Get("committee_id")
	if billNumber == "" || committeeID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Bill number and committee_id are required")
		return
	}

	bill, err := loadBill(h.db, billNumber)
	if err != nil {
		slog.Error("failed to load bill", "bill", billNumber, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load bill")
		return
	}
	if bill == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Bill not found")
		return
	}

	rec := report.PickCommitteeVoteForCommittee(bill.Actions, committeeID)
	if rec.Action == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "No committee vote recorded for this committee")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, committeeVoteView(rec))
}

func committeeVoteView(rec report.ReconciliationResult) *models.CommitteeVoteView {
	view := &models.CommitteeVoteView{
		ActionID:                  rec.Action.ID,
		Source:                    string(rec.Source),
		Counts:                    rec.Counts,
		StatusText:                firstNonEmptyString(rec.Action.VoteResult, rec.Action.Description, rec.Action.Motion),
		UsedManualCountsToFillMGA: rec.UsedManualCountsToFillMGA,
	}
	if report.HasAnyCounts(rec.Counts) {
		view.CountsDisplay = report.FormatCounts(rec.Counts)
	}
	return view
}

func firstNonEmptyString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
