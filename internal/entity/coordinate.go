package entity

import "fmt"

// Coordinate addresses a board cell by row and column, both zero based.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCoordinate(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// Step returns the coordinate n steps away along the direction (dRow, dCol).
func (that Coordinate) Step(dRow, dCol, n int) Coordinate {
	return Coordinate{Row: that.Row + dRow*n, Col: that.Col + dCol*n}
}

func (that Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}
