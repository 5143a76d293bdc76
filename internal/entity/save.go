package entity

import "time"

// SaveNameLayout formats the default name of a save slot.
const SaveNameLayout = "2006/01/02 15:04:05"

// Save is a named snapshot of a whole game session.
type Save struct {
	Name      string `json:"name"`
	Timestamp int64  `json:"timestamp"`
	Game      *Game  `json:"game"`
}

func NewSave(name string, game *Game, now time.Time) *Save {
	if name == "" {
		name = now.Format(SaveNameLayout)
	}

	return &Save{
		Name:      name,
		Timestamp: now.UnixMilli(),
		Game:      game,
	}
}
