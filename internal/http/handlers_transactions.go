package http

import (
	"net/http"
	"strings"
	"time"

	"smartspend/internal/core"
	"smartspend/internal/stats"
)

// Category lists the add screen offers. Free text is still accepted by
// the store; these are only the suggested sets.
var (
	expenseCategories = []string{
		"Food & Dining",
		"Transportation",
		"Entertainment",
		"Shopping",
		"Utilities",
		"Healthcare",
		"Education",
		"Other",
	}

	incomeCategories = []string{
		"Salary",
		"Bonus",
		"Interest",
		"Investment",
		"Gift",
		"Refund",
		"Rental Income",
		"Freelance",
		"Other Income",
	}
)

type transactionsResponse struct {
	Transactions []core.Transaction `json:"transactions"`
	Summary      stats.Summary      `json:"summary"`
}

// handleListTransactions supports the history screen's filters:
// range=all|week|month, category, type=income|expense.
func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	txs, err := s.transactions.List(ctx)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	p, err := s.prefs.Load(ctx)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	q := r.URL.Query()
	f := stats.Filter{
		Range:     stats.RangeAll,
		Category:  strings.TrimSpace(q.Get("category")),
		Type:      core.TransactionType(strings.TrimSpace(q.Get("type"))),
		WeekStart: p.WeekStart,
		Now:       time.Now(),
	}
	switch q.Get("range") {
	case string(stats.RangeWeek):
		f.Range = stats.RangeWeek
	case string(stats.RangeMonth):
		f.Range = stats.RangeMonth
	}
	if f.Type != "" {
		if err := f.Type.Validate(); err != nil {
			writeDomainError(w, err)
			return
		}
	}

	filtered := f.Apply(txs)
	from, to := f.Bounds()

	writeJSON(w, http.StatusOK, transactionsResponse{
		Transactions: filtered,
		Summary:      stats.Summarize(filtered, from, to),
	})
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var tx core.Transaction
	if err := decodeJSON(r, &tx); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := s.transactions.Record(r.Context(), tx)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleClearTransactions(w http.ResponseWriter, r *http.Request) {
	if err := s.transactions.Clear(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"expense": expenseCategories,
		"income":  incomeCategories,
	})
}
