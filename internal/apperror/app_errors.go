package apperror

import "errors"

// Engine errors. None of them is fatal: the state is unchanged when one is returned.
var (
	ErrGameOver     = errors.New("game is already over")
	ErrOutOfBounds  = errors.New("coordinate is out of bounds")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrNoHistory    = errors.New("no moves to undo")
)

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrSaveNotFound     = errors.New("save not found")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrInvalidName      = errors.New("invalid player name")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrInvalidSide      = errors.New("bot must play A or B")
	ErrInvalidBoardSize = errors.New("unsupported board size")
)
