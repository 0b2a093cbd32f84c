// Copyright (c) 2026 Pollbox contributors.
// Source-available; see LICENSE for terms.

package router

import (
	"database/sql"
	"net/http"

	"github.com/pollbox/pollbox/cliparse"
	"github.com/pollbox/pollbox/handlers"
	"github.com/pollbox/pollbox/middleware"
	"github.com/pollbox/pollbox/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	s := store.New(db)

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(s, cfg)
	pollHandler := handlers.NewPollHandler(s, cfg)
	votingHandler := handlers.NewVotingHandler(s, cfg)
	resultsHandler := handlers.NewResultsHandler(s, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts and sessions
	mux.HandleFunc("POST /register", middleware.WithLogging(accountHandler.Register))
	mux.HandleFunc("POST /login", middleware.WithLogging(accountHandler.Login))
	mux.HandleFunc("POST /logout", middleware.WithLogging(middleware.RequireAuth(s, accountHandler.Logout)))
	mux.HandleFunc("GET /me/polls", middleware.WithLogging(middleware.RequireAuth(s, accountHandler.MyPolls)))

	// Poll lifecycle (creation and deletion require login)
	mux.HandleFunc("GET /polls", middleware.WithLogging(pollHandler.ListPolls))
	mux.HandleFunc("POST /polls", middleware.WithLogging(middleware.RequireAuth(s, pollHandler.CreatePoll)))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(middleware.OptionalAuth(s, pollHandler.GetPoll)))
	mux.HandleFunc("DELETE /polls/{id}", middleware.WithLogging(middleware.RequireAuth(s, pollHandler.DeletePoll)))

	// Voting and results
	mux.HandleFunc("POST /polls/{id}/vote", middleware.WithLogging(middleware.RequireAuth(s, votingHandler.CastVote)))
	mux.HandleFunc("GET /polls/{id}/results", middleware.WithLogging(middleware.OptionalAuth(s, resultsHandler.GetResults)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pollbox API v1"))
	})

	return mux
}
