// Package http serves the JSON API the app screens talk to.
package http

import (
	"net/http"
	"time"

	"smartspend/internal/accounts"
	"smartspend/internal/log"
	"smartspend/internal/prefs"
	"smartspend/internal/services"
)

type Server struct {
	http.Server
	accounts     *accounts.Store
	prefs        *prefs.Store
	transactions *services.TransactionService
	logger       *log.Logger
}

func NewServer(addr string, accounts *accounts.Store, prefs *prefs.Store, transactions *services.TransactionService, logger *log.Logger) *Server {
	s := &Server{
		accounts:     accounts,
		prefs:        prefs,
		transactions: transactions,
		logger:       logger.WithComponent(log.ComponentHTTP),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/signup", s.handleSignup)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/logout", s.handleLogout)
	mux.HandleFunc("GET /api/profile", s.handleGetProfile)
	mux.HandleFunc("PUT /api/profile", s.handleUpdateProfile)
	mux.HandleFunc("GET /api/preferences", s.handleGetPreferences)
	mux.HandleFunc("PUT /api/preferences", s.handleUpdatePreferences)
	mux.HandleFunc("GET /api/transactions", s.handleListTransactions)
	mux.HandleFunc("POST /api/transactions", s.handleCreateTransaction)
	mux.HandleFunc("DELETE /api/transactions", s.handleClearTransactions)
	mux.HandleFunc("GET /api/overview", s.handleOverview)
	mux.HandleFunc("GET /api/categories", s.handleCategories)
	mux.HandleFunc("GET /api/health", s.handleHealth)

	s.Addr = addr
	s.Handler = log.Middleware(logger)(mux)
	s.ReadTimeout = 10 * time.Second
	s.WriteTimeout = 10 * time.Second
	s.IdleTimeout = 60 * time.Second
	s.MaxHeaderBytes = 1 << 16 // 64KB

	return s
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
