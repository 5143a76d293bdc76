package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	ModePvP = "pvp"
	ModeBot = "bot"
)

// Difficulty selects the bot strategy tier.
type Difficulty string

const (
	EasyDifficulty   Difficulty = "easy"
	MediumDifficulty Difficulty = "medium"
	HardDifficulty   Difficulty = "hard"
)

var (
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownMode       = errors.New("unknown game mode")
)

func ParseDifficulty(value string) (Difficulty, error) {
	switch difficulty := Difficulty(strings.ToLower(strings.TrimSpace(value))); difficulty {
	case EasyDifficulty, MediumDifficulty, HardDifficulty:
		return difficulty, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, value)
	}
}

// Players holds the display names of both sides.
type Players struct {
	A string `json:"a"`
	B string `json:"b"`
}

// NameOf returns the display name of the given side.
func (that Players) NameOf(player Cell) string {
	if player == PlayerB {
		return that.B
	}
	return that.A
}

// Game is a stored session wrapping one engine state.
type Game struct {
	ID         string     `json:"id"`
	Mode       string     `json:"mode"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	BotPlayer  Cell       `json:"bot_player,omitempty"`
	Players    Players    `json:"players"`
	State      *GameState `json:"state"`
	Recorded   bool       `json:"recorded,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func NewGame(id, mode string, boardSize int) *Game {
	now := time.Now().UTC()

	return &Game{
		ID:        id,
		Mode:      mode,
		State:     NewGameState(boardSize),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (that *Game) IsWithBot() bool {
	return that.Mode == ModeBot
}

// IsBotTurn reports whether the side to move is played by the bot.
func (that *Game) IsBotTurn() bool {
	return that.IsWithBot() && !that.State.IsTerminal() && that.State.CurrentPlayer == that.BotPlayer
}

func (that *Game) IsFinished() bool {
	return that.State.IsTerminal()
}

// Reset replaces the engine state with a fresh one of the same board size.
func (that *Game) Reset() {
	that.State = NewGameState(that.State.Board.Size())
	that.Recorded = false
	that.Touch()
}

func (that *Game) Touch() {
	that.UpdatedAt = time.Now().UTC()
}
