package rest

import (
	"encoding/json"
	"net/http"

	"github.com/rocketscienceinc/gomoku-backend/transport/view"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (that *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := view.StatusOf(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "path", r.URL.Path, "error", err)
	}

	writeJSON(w, status, errorResponse{Error: message})
}

func decodeJSON(r *http.Request, target any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}

	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return view.ErrInvalidBody
	}

	return nil
}
