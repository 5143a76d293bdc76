package entity

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DefaultBoardSize is the side of a standard gomoku board.
const DefaultBoardSize = 15

var ErrInvalidBoard = errors.New("invalid board")

// Board is a square grid of cells stored in row-major order.
type Board struct {
	size  int
	cells []Cell
}

func NewBoard(size int) *Board {
	if size < 1 {
		size = DefaultBoardSize
	}

	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) InBounds(at Coordinate) bool {
	return at.Row >= 0 && at.Col >= 0 && at.Row < that.size && at.Col < that.size
}

// At returns the cell at the coordinate; out of bounds reads as Empty.
func (that *Board) At(at Coordinate) Cell {
	if !that.InBounds(at) {
		return Empty
	}

	return that.cells[that.index(at)]
}

// Set writes the cell at the coordinate; out of bounds writes are dropped.
func (that *Board) Set(at Coordinate, value Cell) {
	if !that.InBounds(at) {
		return
	}

	that.cells[that.index(at)] = value
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == Empty {
			return false
		}
	}

	return true
}

// EmptyCells lists every empty coordinate in row-major order.
func (that *Board) EmptyCells() []Coordinate {
	empty := make([]Coordinate, 0, len(that.cells))
	for i, cell := range that.cells {
		if cell == Empty {
			empty = append(empty, Coordinate{Row: i / that.size, Col: i % that.size})
		}
	}

	return empty
}

// Count returns how many cells hold value.
func (that *Board) Count(value Cell) int {
	count := 0
	for _, cell := range that.cells {
		if cell == value {
			count++
		}
	}

	return count
}

func (that *Board) Clone() *Board {
	clone := &Board{
		size:  that.size,
		cells: make([]Cell, len(that.cells)),
	}
	copy(clone.cells, that.cells)

	return clone
}

func (that *Board) Equal(other *Board) bool {
	if that == nil || other == nil {
		return that == other
	}

	if that.size != other.size {
		return false
	}

	for i := range that.cells {
		if that.cells[i] != other.cells[i] {
			return false
		}
	}

	return true
}

// Rows returns a copy of the grid as a slice of rows.
func (that *Board) Rows() [][]Cell {
	rows := make([][]Cell, that.size)
	for r := range rows {
		rows[r] = make([]Cell, that.size)
		copy(rows[r], that.cells[r*that.size:(r+1)*that.size])
	}

	return rows
}

// BoardFromRows builds a board from a square grid.
func BoardFromRows(rows [][]Cell) (*Board, error) {
	size := len(rows)
	if size == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidBoard)
	}

	board := NewBoard(size)
	for r, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, r, len(row), size)
		}

		for c, cell := range row {
			if !cell.IsValid() {
				return nil, fmt.Errorf("%w: cell %d at (%d,%d)", ErrInvalidBoard, cell, r, c)
			}

			board.cells[r*size+c] = cell
		}
	}

	return board, nil
}

func (that *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.Rows())
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var rows [][]Cell
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("failed to unmarshal board: %w", err)
	}

	board, err := BoardFromRows(rows)
	if err != nil {
		return err
	}

	*that = *board

	return nil
}

func (that *Board) index(at Coordinate) int {
	return at.Row*that.size + at.Col
}
