// Package bot picks moves for a computer-controlled side.
//
// Three tiers are available. Easy plays a random empty cell. Medium wins when it can,
// otherwise blocks an immediate loss, otherwise plays near the center. Hard scores
// every empty cell with EvaluatePosition and plays one of the best.
//
// The bot never keeps a board: callers pass the board on every call and get it back
// unchanged.
package bot

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

// centerJitter is the upper bound of the noise added to center distances.
// It stays below 1 so that a nearer cell always beats a farther one.
const centerJitter = 0.5

// Bot is safe for concurrent use.
type Bot struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a bot drawing randomness from rng.
func New(rng *rand.Rand) *Bot {
	return &Bot{rng: rng}
}

func NewFromSeed(seed int64) *Bot {
	return New(rand.New(rand.NewSource(seed))) //nolint: gosec // game randomness
}

// SelectMove returns the cell player should take on board.
func (that *Bot) SelectMove(board *entity.Board, player entity.Cell, difficulty entity.Difficulty) (entity.Coordinate, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return entity.Coordinate{}, apperror.ErrNoAvailableMoves
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	switch difficulty {
	case entity.EasyDifficulty:
		return that.easyMove(availableCells), nil
	case entity.MediumDifficulty:
		return that.mediumMove(board, player, availableCells), nil
	case entity.HardDifficulty:
		return that.hardMove(board, player, availableCells), nil
	default:
		return entity.Coordinate{}, fmt.Errorf("%w: %q", entity.ErrUnknownDifficulty, difficulty)
	}
}

func (that *Bot) easyMove(availableCells []entity.Coordinate) entity.Coordinate {
	return availableCells[that.rng.Intn(len(availableCells))]
}

func (that *Bot) mediumMove(board *entity.Board, player entity.Cell, availableCells []entity.Coordinate) entity.Coordinate {
	for _, cell := range availableCells {
		if winsAt(board, cell, player) {
			return cell
		}
	}

	opponent := player.Opponent()
	for _, cell := range availableCells {
		if winsAt(board, cell, opponent) {
			return cell
		}
	}

	center := float64(board.Size()-1) / 2
	best := availableCells[0]
	bestDistance := math.Inf(1)
	for _, cell := range availableCells {
		distance := math.Abs(float64(cell.Row)-center) + math.Abs(float64(cell.Col)-center)
		distance += that.rng.Float64() * centerJitter

		if distance < bestDistance {
			best = cell
			bestDistance = distance
		}
	}

	return best
}

func (that *Bot) hardMove(board *entity.Board, player entity.Cell, availableCells []entity.Coordinate) entity.Coordinate {
	bestScore := math.Inf(-1)
	var best []entity.Coordinate

	for _, cell := range availableCells {
		score := EvaluatePosition(board, cell, player)

		switch {
		case score > bestScore:
			bestScore = score
			best = append(best[:0], cell)
		case score == bestScore:
			best = append(best, cell)
		}
	}

	return best[that.rng.Intn(len(best))]
}

// winsAt reports whether player would complete five by playing at.
func winsAt(board *entity.Board, at entity.Coordinate, player entity.Cell) bool {
	if !board.InBounds(at) {
		return false
	}

	restore := place(board, at, player)
	defer restore()

	return gomoku.CheckWinFrom(board, at) != nil
}

// place puts a hypothetical stone on board and returns the function that removes it.
func place(board *entity.Board, at entity.Coordinate, player entity.Cell) func() {
	previous := board.At(at)
	board.Set(at, player)

	return func() {
		board.Set(at, previous)
	}
}
