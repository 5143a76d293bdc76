package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/usecase"
	"github.com/rocketscienceinc/gomoku-backend/transport/view"
)

func (that *Server) handleNewGame(ctx context.Context, msg *Message, peer *client) error {
	payloadReq, err := decodePayload(msg)
	if err != nil {
		that.sendError(peer, msg.Action, "invalid payload")
		return err
	}

	request := usecase.NewGameRequest{}
	if payloadReq.Game != nil {
		request = *payloadReq.Game
	}

	game, err := that.games.NewGame(ctx, request)
	if err != nil {
		return that.replyError(peer, msg.Action, err)
	}

	that.reply(peer, msg.Action, game)

	return nil
}

func (that *Server) handleGameState(ctx context.Context, msg *Message, peer *client) error {
	payloadReq, err := decodePayload(msg)
	if err != nil || payloadReq.GameID == "" {
		that.sendError(peer, msg.Action, "game_id is required")
		return err
	}

	game, err := that.games.GetGame(ctx, payloadReq.GameID)
	if err != nil {
		return that.replyError(peer, msg.Action, err)
	}

	that.subscribe(peer, game.ID)
	that.send(peer, msg.Action, ResponsePayload{Game: view.NewGame(game)})

	return nil
}

func (that *Server) handleGameMove(ctx context.Context, msg *Message, peer *client) error {
	payloadReq, err := decodePayload(msg)
	if err != nil || payloadReq.GameID == "" || payloadReq.Row == nil || payloadReq.Col == nil {
		that.sendError(peer, msg.Action, "game_id, row and col are required")
		return err
	}

	game, err := that.games.MakeMove(ctx, payloadReq.GameID, entity.NewCoordinate(*payloadReq.Row, *payloadReq.Col))
	if err != nil {
		return that.replyError(peer, msg.Action, err)
	}

	that.reply(peer, msg.Action, game)

	return nil
}

func (that *Server) handleGameUndo(ctx context.Context, msg *Message, peer *client) error {
	return that.handleGameUpdate(ctx, msg, peer, that.games.Undo)
}

func (that *Server) handleGameReset(ctx context.Context, msg *Message, peer *client) error {
	return that.handleGameUpdate(ctx, msg, peer, that.games.Reset)
}

func (that *Server) handleGameUpdate(ctx context.Context, msg *Message, peer *client, update func(context.Context, string) (*entity.Game, error)) error {
	payloadReq, err := decodePayload(msg)
	if err != nil || payloadReq.GameID == "" {
		that.sendError(peer, msg.Action, "game_id is required")
		return err
	}

	game, err := update(ctx, payloadReq.GameID)
	if err != nil {
		return that.replyError(peer, msg.Action, err)
	}

	that.reply(peer, msg.Action, game)

	return nil
}

// reply answers a peer that is not watching the game yet. Watchers already got the change pushed.
func (that *Server) reply(peer *client, action string, game *entity.Game) {
	if that.subscribe(peer, game.ID) {
		that.send(peer, action, ResponsePayload{Game: view.NewGame(game)})
	}
}

func (that *Server) onGameChange(event string, game *entity.Game) {
	action, ok := eventActions[event]
	if !ok {
		that.logger.Warn("unknown game event", "event", event, "game_id", game.ID)
		return
	}

	that.broadcast(action, game)
}

// broadcast pushes the new state to every client watching the game.
func (that *Server) broadcast(action string, game *entity.Game) {
	message, err := encodeMessage(action, ResponsePayload{Game: view.NewGame(game)})
	if err != nil {
		that.logger.Error("failed to encode game update", "error", err)
		return
	}

	that.subscribersMutex.RLock()
	defer that.subscribersMutex.RUnlock()

	for peer := range that.subscribers[game.ID] {
		if !peer.enqueue(message) {
			that.logger.Warn("dropped game update", "game_id", game.ID)
		}
	}
}

// replyError answers with the client facing message. Only unexpected errors are returned.
func (that *Server) replyError(peer *client, action string, err error) error {
	status, message := view.StatusOf(err)
	that.sendError(peer, action, message)

	if status >= 500 {
		return err
	}

	return nil
}

func (that *Server) sendError(peer *client, action, message string) {
	that.send(peer, action, ResponsePayload{Error: message})
}

func (that *Server) send(peer *client, action string, payload ResponsePayload) {
	message, err := encodeMessage(action, payload)
	if err != nil {
		that.logger.Error("failed to encode response", "error", err)
		return
	}

	peer.enqueue(message)
}

func decodePayload(msg *Message) (*RequestPayload, error) {
	payload := &RequestPayload{}
	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return payload, nil
}
