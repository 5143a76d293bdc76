package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/usecase"
)

type gameUseCase interface {
	NewGame(ctx context.Context, request usecase.NewGameRequest) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeMove(ctx context.Context, id string, at entity.Coordinate) (*entity.Game, error)
	Undo(ctx context.Context, id string) (*entity.Game, error)
	Reset(ctx context.Context, id string) (*entity.Game, error)
	OnChange(listener usecase.ChangeListener)
}

type handlerFunc func(ctx context.Context, message *Message, conn *client) error

type Server struct {
	logger   *slog.Logger
	games    gameUseCase
	upgrader websocket.Upgrader
	srv      *http.Server

	handlers map[string]handlerFunc

	subscribersMutex sync.RWMutex
	subscribers      map[string]map[*client]struct{}
}

func New(logger *slog.Logger, port string, games gameUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		games:  games,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},

		handlers:    make(map[string]handlerFunc),
		subscribers: make(map[string]map[*client]struct{}),
	}

	server.handlers[actionGameNew] = server.handleNewGame
	server.handlers[actionGameState] = server.handleGameState
	server.handlers[actionGameMove] = server.handleGameMove
	server.handlers[actionGameUndo] = server.handleGameUndo
	server.handlers[actionGameReset] = server.handleGameReset

	// changes made over REST reach websocket watchers too
	games.OnChange(server.onGameChange)

	server.srv = &http.Server{
		Addr:              ":" + port,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return server
}

func (that *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/ws", that.serveWS)

	return r
}

// Start - starts WebSocket server.
func (that *Server) Start() error {
	that.logger.Info("websocket server listening", "addr", that.srv.Addr)

	if err := that.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	return that.srv.Shutdown(ctx)
}

func (that *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveWS")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	peer := newClient(conn)

	go func() {
		defer conn.Close()

		if err := peer.writePump(); err != nil {
			log.Debug("write pump stopped", "error", err)
		}
	}()

	log.Info("WebSocket connection established")

	if err = that.handleMessages(r.Context(), peer); err != nil {
		log.Debug("connection closed", "error", err)
	}

	that.unsubscribe(peer)
	peer.close()
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, peer *client) error {
	log := that.logger.With("method", "handleMessages")

	peer.conn.SetReadLimit(64 * 1024)
	_ = peer.conn.SetReadDeadline(time.Now().Add(pongWait))
	peer.conn.SetPongHandler(func(string) error {
		return peer.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, body, err := peer.conn.ReadMessage()
		if err != nil {
			return err
		}
		_ = peer.conn.SetReadDeadline(time.Now().Add(pongWait))

		var message Message
		if err = json.Unmarshal(body, &message); err != nil {
			log.Debug("failed to unmarshal message", "error", err)
			that.sendError(peer, actionError, "invalid message")
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			that.sendError(peer, message.Action, "unknown action")
			continue
		}

		if err = handler(ctx, &message, peer); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

// subscribe makes peer a watcher of gameID and reports whether it was not one already.
func (that *Server) subscribe(peer *client, gameID string) bool {
	that.subscribersMutex.Lock()
	defer that.subscribersMutex.Unlock()

	if previous := peer.subscribe(gameID); previous != "" && previous != gameID {
		that.removeSubscriber(previous, peer)
	}

	if that.subscribers[gameID] == nil {
		that.subscribers[gameID] = make(map[*client]struct{})
	}

	_, watching := that.subscribers[gameID][peer]
	that.subscribers[gameID][peer] = struct{}{}

	return !watching
}

func (that *Server) unsubscribe(peer *client) {
	that.subscribersMutex.Lock()
	defer that.subscribersMutex.Unlock()

	if gameID := peer.subscription(); gameID != "" {
		that.removeSubscriber(gameID, peer)
	}
}

func (that *Server) removeSubscriber(gameID string, peer *client) {
	delete(that.subscribers[gameID], peer)
	if len(that.subscribers[gameID]) == 0 {
		delete(that.subscribers, gameID)
	}
}
