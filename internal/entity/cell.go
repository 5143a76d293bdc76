package entity

// Cell is the content of a single board intersection.
type Cell int8

const (
	Empty Cell = iota
	PlayerA
	PlayerB
)

// Opponent returns the other player. Empty has no opponent and maps to itself.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return Empty
	}
}

func (that Cell) IsPlayer() bool {
	return that == PlayerA || that == PlayerB
}

func (that Cell) IsValid() bool {
	return that == Empty || that.IsPlayer()
}

func (that Cell) String() string {
	switch that {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	default:
		return "empty"
	}
}
