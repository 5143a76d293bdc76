package bot

import (
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

const (
	scoreFive      = 100000
	scoreOpenFour  = 10000
	scoreFour      = 1000
	scoreOpenThree = 1000
	scoreThree     = 100
	scoreOpenTwo   = 100
	scoreTwo       = 10

	// must block an immediate five
	scoreBlockFive = 200000
	// must block an open four
	scoreBlockOpenFour = 50000

	defenseWeight = 0.8
)

// EvaluatePosition scores how good it is for player to take the empty cell at.
// The board is returned exactly as it was passed in. Off-board coordinates score 0.
func EvaluatePosition(board *entity.Board, at entity.Coordinate, player entity.Cell) float64 {
	if !board.InBounds(at) {
		return 0
	}

	attackScore := placementScore(board, at, player)
	defenseScore := placementScore(board, at, player.Opponent())

	switch {
	case defenseScore >= scoreFive:
		return scoreBlockFive
	case defenseScore >= scoreOpenFour:
		return scoreBlockOpenFour
	default:
		return attackScore + defenseWeight*defenseScore
	}
}

// placementScore sums lineScore over all directions with a stone of player at at.
func placementScore(board *entity.Board, at entity.Coordinate, player entity.Cell) float64 {
	restore := place(board, at, player)
	defer restore()

	total := 0
	for _, dir := range gomoku.Directions {
		total += lineScore(board, at, dir, player)
	}

	return float64(total)
}

// lineScore rates the run of player through at along dir.
func lineScore(board *entity.Board, at entity.Coordinate, dir gomoku.Direction, player entity.Cell) int {
	forward, forwardOpen := scanRun(board, at, dir.DRow, dir.DCol, player)
	backward, backwardOpen := scanRun(board, at, -dir.DRow, -dir.DCol, player)

	length := 1 + forward + backward
	openEnds := 0
	if forwardOpen {
		openEnds++
	}
	if backwardOpen {
		openEnds++
	}

	switch {
	case length >= entity.WinLength:
		return scoreFive
	case length == 4 && openEnds == 2:
		return scoreOpenFour
	case length == 4 && openEnds == 1:
		return scoreFour
	case length == 3 && openEnds == 2:
		return scoreOpenThree
	case length == 3 && openEnds == 1:
		return scoreThree
	case length == 2 && openEnds == 2:
		return scoreOpenTwo
	case length == 2 && openEnds == 1:
		return scoreTwo
	default:
		return 0
	}
}

// scanRun counts player stones after at along (dRow, dCol) and reports whether
// the first cell past them is an empty on-board cell.
func scanRun(board *entity.Board, at entity.Coordinate, dRow, dCol int, player entity.Cell) (int, bool) {
	count := 0
	next := at.Step(dRow, dCol, 1)
	for board.InBounds(next) && board.At(next) == player {
		count++
		next = next.Step(dRow, dCol, 1)
	}

	open := board.InBounds(next) && board.At(next) == entity.Empty

	return count, open
}
