package view

import (
	"errors"
	"net/http"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

var ErrInvalidBody = errors.New("invalid request body")

var errorStatuses = []struct {
	err    error
	status int
}{
	{apperror.ErrGameNotFound, http.StatusNotFound},
	{apperror.ErrSaveNotFound, http.StatusNotFound},
	{apperror.ErrGameOver, http.StatusConflict},
	{apperror.ErrCellOccupied, http.StatusConflict},
	{apperror.ErrNotYourTurn, http.StatusConflict},
	{apperror.ErrNoHistory, http.StatusUnprocessableEntity},
	{apperror.ErrOutOfBounds, http.StatusBadRequest},
	{apperror.ErrInvalidName, http.StatusBadRequest},
	{apperror.ErrInvalidSide, http.StatusBadRequest},
	{apperror.ErrInvalidBoardSize, http.StatusBadRequest},
	{entity.ErrUnknownDifficulty, http.StatusBadRequest},
	{entity.ErrUnknownMode, http.StatusBadRequest},
	{ErrInvalidBody, http.StatusBadRequest},
}

// StatusOf maps an error to its HTTP status and the message shown to clients.
func StatusOf(err error) (int, string) {
	for _, known := range errorStatuses {
		if errors.Is(err, known.err) {
			return known.status, known.err.Error()
		}
	}

	return http.StatusInternalServerError, "internal server error"
}
