package entity

// Result is one player's result of a finished game.
type Result string

const (
	ResultWin  Result = "win"
	ResultLoss Result = "loss"
	ResultDraw Result = "draw"
)

const (
	WinPoints  = 10
	DrawPoints = 3
	LossPoints = 0
)

// PlayerResult credits one named side of a finished game.
type PlayerResult struct {
	Name   string
	Result Result
}

// PlayerRecord is a leaderboard row keyed by display name.
type PlayerRecord struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Draws  int    `json:"draws"`
}

// Points returns the score awarded for a result.
func (that Result) Points() int {
	switch that {
	case ResultWin:
		return WinPoints
	case ResultDraw:
		return DrawPoints
	default:
		return LossPoints
	}
}
