package entity

import (
	"encoding/json"
	"fmt"
)

// Outcome classifies a game state for collaborators that react to results.
type Outcome string

const (
	OutcomeInProgress  Outcome = "in_progress"
	OutcomePlayerAWins Outcome = "player_a_wins"
	OutcomePlayerBWins Outcome = "player_b_wins"
	OutcomeDraw        Outcome = "draw"
)

// WinLength is the number of stones in a row needed to win.
const WinLength = 5

// Snapshot is the part of a GameState captured before each move.
type Snapshot struct {
	Board         *Board `json:"board"`
	CurrentPlayer Cell   `json:"current_player"`
}

// GameState is the full engine state of one game.
// It must only be mutated through gomoku.ApplyMove and gomoku.Undo.
type GameState struct {
	Board         *Board       `json:"board"`
	CurrentPlayer Cell         `json:"current_player"`
	Winner        Cell         `json:"winner"`
	LastMove      *Coordinate  `json:"last_move,omitempty"`
	WinningLine   []Coordinate `json:"winning_line,omitempty"`
	History       []Snapshot   `json:"history"`
}

func NewGameState(boardSize int) *GameState {
	return &GameState{
		Board:         NewBoard(boardSize),
		CurrentPlayer: PlayerA,
		Winner:        Empty,
		History:       []Snapshot{},
	}
}

// IsTerminal reports whether the game accepts no more moves: someone won or the board is full.
func (that *GameState) IsTerminal() bool {
	return that.Winner != Empty || that.Board.IsFull()
}

func (that *GameState) Outcome() Outcome {
	switch {
	case that.Winner == PlayerA:
		return OutcomePlayerAWins
	case that.Winner == PlayerB:
		return OutcomePlayerBWins
	case that.Board.IsFull():
		return OutcomeDraw
	default:
		return OutcomeInProgress
	}
}

func (that *GameState) MoveCount() int {
	return len(that.History)
}

// Clone returns a deep copy, history included.
func (that *GameState) Clone() *GameState {
	clone := &GameState{
		Board:         that.Board.Clone(),
		CurrentPlayer: that.CurrentPlayer,
		Winner:        that.Winner,
		History:       make([]Snapshot, len(that.History)),
	}

	if that.LastMove != nil {
		lastMove := *that.LastMove
		clone.LastMove = &lastMove
	}

	if that.WinningLine != nil {
		clone.WinningLine = append([]Coordinate(nil), that.WinningLine...)
	}

	for i, snapshot := range that.History {
		clone.History[i] = Snapshot{Board: snapshot.Board.Clone(), CurrentPlayer: snapshot.CurrentPlayer}
	}

	return clone
}

// UnmarshalJSON rejects states the engine could not have produced: a missing board,
// an unknown side to move or stone counts where A is not level with or one ahead of B.
func (that *GameState) UnmarshalJSON(data []byte) error {
	type plain GameState

	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("failed to unmarshal game state: %w", err)
	}

	state := GameState(decoded)
	if err := state.validate(); err != nil {
		return err
	}

	*that = state

	return nil
}

func (that *GameState) validate() error {
	if that.Board == nil {
		return fmt.Errorf("%w: missing board", ErrInvalidBoard)
	}

	if !that.CurrentPlayer.IsPlayer() {
		return fmt.Errorf("%w: current player %d", ErrInvalidBoard, that.CurrentPlayer)
	}

	if lead := that.Board.Count(PlayerA) - that.Board.Count(PlayerB); lead < 0 || lead > 1 {
		return fmt.Errorf("%w: player A leads by %d stones", ErrInvalidBoard, lead)
	}

	for i, snapshot := range that.History {
		if snapshot.Board == nil || snapshot.Board.Size() != that.Board.Size() {
			return fmt.Errorf("%w: history entry %d", ErrInvalidBoard, i)
		}
	}

	return nil
}
