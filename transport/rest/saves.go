package rest

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/gomoku-backend/transport/view"
)

type saveRequest struct {
	Name string `json:"name"`
}

func (that *Server) saveGame(w http.ResponseWriter, r *http.Request) {
	var request saveRequest
	if err := decodeJSON(r, &request); err != nil {
		that.writeError(w, r, err)
		return
	}

	save, err := that.saves.SaveGame(r.Context(), chi.URLParam(r, "gameID"), request.Name)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, view.NewSave(save))
}

func (that *Server) listSaves(w http.ResponseWriter, r *http.Request) {
	saves, err := that.saves.ListSaves(r.Context())
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view.NewSaves(saves))
}

func (that *Server) loadSave(w http.ResponseWriter, r *http.Request) {
	timestamp, err := timestampParam(r)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	game, err := that.saves.LoadSave(r.Context(), timestamp)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view.NewGame(game))
}

func (that *Server) deleteSave(w http.ResponseWriter, r *http.Request) {
	timestamp, err := timestampParam(r)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	if err = that.saves.DeleteSave(r.Context(), timestamp); err != nil {
		that.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func timestampParam(r *http.Request) (int64, error) {
	timestamp, err := strconv.ParseInt(chi.URLParam(r, "timestamp"), 10, 64)
	if err != nil {
		return 0, view.ErrInvalidBody
	}

	return timestamp, nil
}
