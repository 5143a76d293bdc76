// Package gomoku implements the five-in-a-row rules on top of entity.GameState.
// It performs no I/O and keeps no package-level mutable state.
package gomoku

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// Direction is a unit step (dRow, dCol) along a board line.
type Direction struct {
	DRow int
	DCol int
}

// Directions are the four undirected lines, in the order win detection checks them.
var Directions = [4]Direction{
	{DRow: 1, DCol: 0},
	{DRow: 0, DCol: 1},
	{DRow: 1, DCol: 1},
	{DRow: 1, DCol: -1},
}

// ApplyMove places a stone for the current player.
func ApplyMove(state *entity.GameState, at entity.Coordinate) error {
	if err := validateMove(state, at); err != nil {
		return fmt.Errorf("invalid move %s: %w", at, err)
	}

	state.History = append(state.History, entity.Snapshot{
		Board:         state.Board.Clone(),
		CurrentPlayer: state.CurrentPlayer,
	})

	state.Board.Set(at, state.CurrentPlayer)
	lastMove := at
	state.LastMove = &lastMove

	updateGameStatus(state, at)

	return nil
}

// Undo reverts the most recent move.
func Undo(state *entity.GameState) error {
	if len(state.History) == 0 {
		return apperror.ErrNoHistory
	}

	previous := state.History[len(state.History)-1]
	state.History = state.History[:len(state.History)-1]

	state.Board = previous.Board
	state.CurrentPlayer = previous.CurrentPlayer
	state.Winner = entity.Empty
	state.WinningLine = nil
	state.LastMove = nil

	return nil
}

// CheckWinFrom returns the five winning coordinates through at, or nil.
// When the run is longer than five, the five cells starting at its most negative end are returned.
func CheckWinFrom(board *entity.Board, at entity.Coordinate) []entity.Coordinate {
	if !board.InBounds(at) {
		return nil
	}

	player := board.At(at)
	if player == entity.Empty {
		return nil
	}

	for _, dir := range Directions {
		forward := countRun(board, at, dir.DRow, dir.DCol, player)
		backward := countRun(board, at, -dir.DRow, -dir.DCol, player)

		if 1+forward+backward < entity.WinLength {
			continue
		}

		start := at.Step(-dir.DRow, -dir.DCol, backward)
		line := make([]entity.Coordinate, entity.WinLength)
		for i := range line {
			line[i] = start.Step(dir.DRow, dir.DCol, i)
		}

		return line
	}

	return nil
}

func IsBoardFull(board *entity.Board) bool {
	return board.IsFull()
}

// validateMove - checks if the move is valid.
func validateMove(state *entity.GameState, at entity.Coordinate) error {
	if state.IsTerminal() {
		return apperror.ErrGameOver
	}

	if !state.Board.InBounds(at) {
		return apperror.ErrOutOfBounds
	}

	if state.Board.At(at) != entity.Empty {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(state *entity.GameState, at entity.Coordinate) {
	if line := CheckWinFrom(state.Board, at); line != nil {
		state.Winner = state.CurrentPlayer
		state.WinningLine = line
		return
	}

	// a full board is a draw; the mover stays current
	if state.Board.IsFull() {
		return
	}

	state.CurrentPlayer = state.CurrentPlayer.Opponent()
}

// countRun counts consecutive player cells from at (exclusive) along (dRow, dCol).
func countRun(board *entity.Board, at entity.Coordinate, dRow, dCol int, player entity.Cell) int {
	count := 0
	next := at.Step(dRow, dCol, 1)
	for board.InBounds(next) && board.At(next) == player {
		count++
		next = next.Step(dRow, dCol, 1)
	}

	return count
}
