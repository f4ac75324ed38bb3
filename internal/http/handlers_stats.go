package http

import (
	"net/http"
	"time"

	"smartspend/internal/stats"
)

type overviewResponse struct {
	Name     string         `json:"name"`
	Overview stats.Overview `json:"overview"`
}

// handleOverview serves the home screen numbers: all-time balance plus
// this month's income, expenses and spent percentage.
func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// The home screen greets anonymous visitors as "User".
	name := "User"
	if user, err := s.accounts.CurrentUser(ctx); err == nil {
		name = user.Name
	}

	txs, err := s.transactions.List(ctx)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, overviewResponse{
		Name:     name,
		Overview: stats.MonthOverview(txs, time.Now()),
	})
}
