// Package view shapes engine state for clients that draw the board.
package view

import (
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// Game is the client view of a session. It leaves out the undo history.
type Game struct {
	ID            string              `json:"id"`
	Mode          string              `json:"mode"`
	Difficulty    entity.Difficulty   `json:"difficulty,omitempty"`
	BotPlayer     entity.Cell         `json:"bot_player,omitempty"`
	Players       entity.Players      `json:"players"`
	BoardSize     int                 `json:"board_size"`
	Board         *entity.Board       `json:"board"`
	CurrentPlayer entity.Cell         `json:"current_player"`
	Winner        entity.Cell         `json:"winner"`
	Outcome       entity.Outcome      `json:"outcome"`
	LastMove      *entity.Coordinate  `json:"last_move,omitempty"`
	WinningLine   []entity.Coordinate `json:"winning_line,omitempty"`
	MoveCount     int                 `json:"move_count"`
	CanUndo       bool                `json:"can_undo"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func NewGame(game *entity.Game) *Game {
	if game == nil {
		return nil
	}

	state := game.State

	return &Game{
		ID:            game.ID,
		Mode:          game.Mode,
		Difficulty:    game.Difficulty,
		BotPlayer:     game.BotPlayer,
		Players:       game.Players,
		BoardSize:     state.Board.Size(),
		Board:         state.Board,
		CurrentPlayer: state.CurrentPlayer,
		Winner:        state.Winner,
		Outcome:       state.Outcome(),
		LastMove:      state.LastMove,
		WinningLine:   state.WinningLine,
		MoveCount:     state.MoveCount(),
		CanUndo:       state.MoveCount() > 0,
		CreatedAt:     game.CreatedAt,
		UpdatedAt:     game.UpdatedAt,
	}
}

// Save is a save slot without its game body.
type Save struct {
	Name      string         `json:"name"`
	Timestamp int64          `json:"timestamp"`
	GameID    string         `json:"game_id"`
	Mode      string         `json:"mode"`
	Players   entity.Players `json:"players"`
	MoveCount int            `json:"move_count"`
}

func NewSave(save *entity.Save) *Save {
	result := &Save{
		Name:      save.Name,
		Timestamp: save.Timestamp,
	}

	if save.Game != nil {
		result.GameID = save.Game.ID
		result.Mode = save.Game.Mode
		result.Players = save.Game.Players
		result.MoveCount = save.Game.State.MoveCount()
	}

	return result
}

func NewSaves(saves []*entity.Save) []*Save {
	result := make([]*Save, 0, len(saves))
	for _, save := range saves {
		result = append(result, NewSave(save))
	}

	return result
}
