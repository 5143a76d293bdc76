package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/usecase"
	"github.com/rocketscienceinc/gomoku-backend/transport/view"
)

type moveRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type hintResponse struct {
	Hint entity.Coordinate `json:"hint"`
}

func (that *Server) createGame(w http.ResponseWriter, r *http.Request) {
	var request usecase.NewGameRequest
	if err := decodeJSON(r, &request); err != nil {
		that.writeError(w, r, err)
		return
	}

	game, err := that.games.NewGame(r.Context(), request)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, view.NewGame(game))
}

func (that *Server) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view.NewGame(game))
}

func (that *Server) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.games.DeleteGame(r.Context(), chi.URLParam(r, "gameID")); err != nil {
		that.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) makeMove(w http.ResponseWriter, r *http.Request) {
	var request moveRequest
	if err := decodeJSON(r, &request); err != nil {
		that.writeError(w, r, err)
		return
	}

	if request.Row == nil || request.Col == nil {
		that.writeError(w, r, view.ErrInvalidBody)
		return
	}

	game, err := that.games.MakeMove(r.Context(), chi.URLParam(r, "gameID"), entity.NewCoordinate(*request.Row, *request.Col))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view.NewGame(game))
}

func (that *Server) undo(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.Undo(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view.NewGame(game))
}

func (that *Server) reset(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.Reset(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view.NewGame(game))
}

func (that *Server) hint(w http.ResponseWriter, r *http.Request) {
	hint, err := that.games.Hint(r.Context(), chi.URLParam(r, "gameID"), r.URL.Query().Get("difficulty"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, hintResponse{Hint: hint})
}
