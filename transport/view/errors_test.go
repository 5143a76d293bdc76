package view

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"wrapped not found", fmt.Errorf("failed to get game: %w", apperror.ErrGameNotFound), http.StatusNotFound, "game not found"},
		{"occupied cell", fmt.Errorf("failed to make move: %w", apperror.ErrCellOccupied), http.StatusConflict, "cell is already occupied"},
		{"nothing to undo", apperror.ErrNoHistory, http.StatusUnprocessableEntity, "no moves to undo"},
		{"unknown difficulty", fmt.Errorf("%w: %q", entity.ErrUnknownDifficulty, "insane"), http.StatusBadRequest, entity.ErrUnknownDifficulty.Error()},
		{"bad body", ErrInvalidBody, http.StatusBadRequest, "invalid request body"},
		{"anything else stays private", errors.New("redis: connection refused"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := StatusOf(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}
