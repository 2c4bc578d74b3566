package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hechen2/fapiaosum/internal/report"
)

// amountColumn reads the amount column selection from the query string.
// Anything other than "net" means gross.
func amountColumn(r *http.Request) report.AmountColumn {
	return report.ParseAmountColumn(r.URL.Query().Get("column"))
}

// handleSummary returns the batch facts plus the per-category rollup.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	col := amountColumn(r)

	writeJSON(w, http.StatusOK, map[string]any{
		"session_id":  sess.ID,
		"created_at":  sess.CreatedAt.Format(time.RFC3339),
		"files":       sess.Files,
		"records":     len(sess.Records),
		"warnings":    sess.Warnings,
		"total":       report.Total(sess.Records, col),
		"by_category": report.CategoryRollup(sess.Records, col),
	})
}

// handleCrossTab returns the category × date (or × file) matrix. With a single
// distinct secondary value the response degenerates to a scoped rollup.
func (s *Server) handleCrossTab(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	col := amountColumn(r)
	dim := report.DimensionFor(sess.Records)
	writeJSON(w, http.StatusOK, report.CrossTab(sess.Records, col, dim))
}

// handleExpenses returns the reimbursement table. Repeated "date" query
// parameters restrict it to those short issue dates.
func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	col := amountColumn(r)
	dates := r.URL.Query()["date"]
	writeJSON(w, http.StatusOK, report.ExpenseRollup(sess.Records, col, s.expense, dates))
}

// handleRecords returns the detail records grouped per invoice, filtered by
// the optional q substring, together with the match statistics.
func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	col := amountColumn(r)
	matched := report.Search(sess.Records, r.URL.Query().Get("q"))

	writeJSON(w, http.StatusOK, map[string]any{
		"query":    r.URL.Query().Get("q"),
		"stats":    report.Stats(matched, col),
		"invoices": report.GroupByInvoice(matched, col),
	})
}

// handleExport streams the session as an xlsx workbook.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	col := amountColumn(r)

	var buf bytes.Buffer
	if err := report.WriteXLSX(&buf, sess.Records, col, s.expense); err != nil {
		s.log.Error("xlsx export failed", "session_id", sess.ID, "error", err)
		jsonError(w, "export failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="invoices-%s.xlsx"`, sess.ID))
	w.Header().Set("Content-Length", fmt.Sprint(buf.Len()))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
