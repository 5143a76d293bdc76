package rest

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/gomoku-backend/transport/view"
)

const defaultLeaderboardLimit = 10

func (that *Server) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := defaultLeaderboardLimit
	if value := r.URL.Query().Get("limit"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 0 {
			that.writeError(w, r, view.ErrInvalidBody)
			return
		}
		limit = parsed
	}

	records, err := that.leaderboard.Leaderboard(r.Context(), limit)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func (that *Server) getPlayer(w http.ResponseWriter, r *http.Request) {
	record, err := that.leaderboard.GetRecord(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

func (that *Server) listNames(w http.ResponseWriter, r *http.Request) {
	names, err := that.names.Names(r.Context())
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	if names == nil {
		names = []string{}
	}

	writeJSON(w, http.StatusOK, names)
}

func (that *Server) forgetName(w http.ResponseWriter, r *http.Request) {
	if err := that.names.ForgetName(r.Context(), chi.URLParam(r, "name")); err != nil {
		that.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
