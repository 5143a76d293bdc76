package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/gomoku-backend/internal/usecase"
	"github.com/rocketscienceinc/gomoku-backend/transport/view"
)

const (
	actionGameNew   = "game:new"
	actionGameState = "game:state"
	actionGameMove  = "game:move"
	actionGameUndo  = "game:undo"
	actionGameReset = "game:reset"
	actionError     = "error"

	// pushed only, after a save is loaded
	actionGameRestore = "game:restore"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	GameID string                  `json:"game_id,omitempty"`
	Game   *usecase.NewGameRequest `json:"game,omitempty"`
	Row    *int                    `json:"row,omitempty"`
	Col    *int                    `json:"col,omitempty"`
}

type ResponsePayload struct {
	Game  *view.Game `json:"game,omitempty"`
	Error string     `json:"error,omitempty"`
}

var eventActions = map[string]string{
	usecase.EventNew:     actionGameNew,
	usecase.EventMove:    actionGameMove,
	usecase.EventUndo:    actionGameUndo,
	usecase.EventReset:   actionGameReset,
	usecase.EventRestore: actionGameRestore,
}

func encodeMessage(action string, payload ResponsePayload) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(Message{Action: action, Payload: body})
}
