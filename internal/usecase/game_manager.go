package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-backend/internal/pkg"
)

const (
	MinBoardSize = entity.WinLength
	MaxBoardSize = 25

	defaultBotName = "Bot"
)

// Events passed to change listeners.
const (
	EventNew     = "new"
	EventMove    = "move"
	EventUndo    = "undo"
	EventReset   = "reset"
	EventRestore = "restore"
)

// ChangeListener is told about every stored change to a game, whichever transport caused it.
type ChangeListener func(event string, game *entity.Game)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type moveSelector interface {
	SelectMove(board *entity.Board, player entity.Cell, difficulty entity.Difficulty) (entity.Coordinate, error)
}

type outcomeRecorder interface {
	RecordOutcome(ctx context.Context, game *entity.Game) error
}

type nameRecorder interface {
	RememberName(ctx context.Context, name string) error
}

// Settings are the defaults applied to new games.
type Settings struct {
	BoardSize         int
	DefaultDifficulty entity.Difficulty
	BotDelay          time.Duration
}

// NewGameRequest describes a game to start. Zero values fall back to the settings.
type NewGameRequest struct {
	Mode       string      `json:"mode"`
	Difficulty string      `json:"difficulty,omitempty"`
	BotPlayer  entity.Cell `json:"bot_player,omitempty"`
	PlayerA    string      `json:"player_a,omitempty"`
	PlayerB    string      `json:"player_b,omitempty"`
	BoardSize  int         `json:"board_size,omitempty"`
}

type GameManager struct {
	logger   *slog.Logger
	settings Settings

	gameRepo    gameRepo
	bot         moveSelector
	leaderboard outcomeRecorder
	names       nameRecorder

	mu        sync.Mutex
	locks     map[string]*gameLock
	listeners []ChangeListener
}

// gameLock serialises work on one game; refs counts holders and waiters.
type gameLock struct {
	mu   sync.Mutex
	refs int
}

func NewGameManager(logger *slog.Logger, settings Settings, gameRepo gameRepo, bot moveSelector, leaderboard outcomeRecorder, names nameRecorder) *GameManager {
	if settings.BoardSize == 0 {
		settings.BoardSize = entity.DefaultBoardSize
	}

	if settings.DefaultDifficulty == "" {
		settings.DefaultDifficulty = entity.MediumDifficulty
	}

	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		settings: settings,

		gameRepo:    gameRepo,
		bot:         bot,
		leaderboard: leaderboard,
		names:       names,

		locks: make(map[string]*gameLock),
	}
}

// NewGame starts a session. When the bot plays A it opens immediately.
func (that *GameManager) NewGame(ctx context.Context, request NewGameRequest) (*entity.Game, error) {
	game, err := that.buildGame(request)
	if err != nil {
		return nil, err
	}

	unlock := that.lock(game.ID)
	defer unlock()

	// only names typed in by humans go to the history
	for side, name := range map[entity.Cell]string{entity.PlayerA: request.PlayerA, entity.PlayerB: request.PlayerB} {
		if name == "" || (game.IsWithBot() && side == game.BotPlayer) {
			continue
		}

		if err = that.names.RememberName(ctx, game.Players.NameOf(side)); err != nil {
			that.logger.Warn("failed to remember name", "error", err)
		}
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	if err = that.playBot(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("game created", "game_id", game.ID, "mode", game.Mode, "difficulty", game.Difficulty)
	that.notify(EventNew, game)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	return that.getGameByID(ctx, id)
}

// MakeMove plays a human move and, in bot games, the reply.
func (that *GameManager) MakeMove(ctx context.Context, id string, at entity.Coordinate) (*entity.Game, error) {
	log := that.logger.With("method", "MakeMove", "game_id", id)

	unlock := that.lock(id)
	defer unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if game.IsBotTurn() {
		log.Debug("move rejected", "coordinate", at.String(), "error", apperror.ErrNotYourTurn)
		return nil, apperror.ErrNotYourTurn
	}

	if err = gomoku.ApplyMove(game.State, at); err != nil {
		log.Debug("move rejected", "coordinate", at.String(), "error", err)
		return nil, fmt.Errorf("failed to make move: %w", err)
	}

	that.finish(ctx, game)

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	if err = that.playBot(ctx, game); err != nil {
		return nil, err
	}

	that.notify(EventMove, game)

	return game, nil
}

// Undo reverts the last move. In bot games it keeps going until the human is to move.
// A result already on the leaderboard stays there.
func (that *GameManager) Undo(ctx context.Context, id string) (*entity.Game, error) {
	unlock := that.lock(id)
	defer unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = gomoku.Undo(game.State); err != nil {
		return nil, fmt.Errorf("failed to undo: %w", err)
	}

	for game.IsWithBot() && game.State.CurrentPlayer == game.BotPlayer && len(game.State.History) > 0 {
		if err = gomoku.Undo(game.State); err != nil {
			return nil, fmt.Errorf("failed to undo: %w", err)
		}
	}

	game.Touch()
	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	// the bot opened and the human took it back
	if err = that.playBot(ctx, game); err != nil {
		return nil, err
	}

	that.notify(EventUndo, game)

	return game, nil
}

// Reset starts over on an empty board with the same players.
func (that *GameManager) Reset(ctx context.Context, id string) (*entity.Game, error) {
	unlock := that.lock(id)
	defer unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	game.Reset()
	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	if err = that.playBot(ctx, game); err != nil {
		return nil, err
	}

	that.notify(EventReset, game)

	return game, nil
}

// Restore stores a saved session under its own ID, replacing the live one.
func (that *GameManager) Restore(ctx context.Context, game *entity.Game) error {
	unlock := that.lock(game.ID)
	defer unlock()

	game.Touch()
	if err := that.updateGame(ctx, game); err != nil {
		return err
	}

	that.notify(EventRestore, game)

	return nil
}

// Hint suggests a move for the side to move without playing it.
func (that *GameManager) Hint(ctx context.Context, id, difficulty string) (entity.Coordinate, error) {
	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return entity.Coordinate{}, err
	}

	if game.IsFinished() {
		return entity.Coordinate{}, apperror.ErrGameOver
	}

	level := game.Difficulty
	if difficulty != "" {
		if level, err = entity.ParseDifficulty(difficulty); err != nil {
			return entity.Coordinate{}, err
		}
	}
	if level == "" {
		level = that.settings.DefaultDifficulty
	}

	hint, err := that.bot.SelectMove(game.State.Board, game.State.CurrentPlayer, level)
	if err != nil {
		return entity.Coordinate{}, fmt.Errorf("failed to select hint: %w", err)
	}

	return hint, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	unlock := that.lock(id)
	defer unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// OnChange registers a listener. Listeners run under the game's lock and must not block.
func (that *GameManager) OnChange(listener ChangeListener) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.listeners = append(that.listeners, listener)
}

func (that *GameManager) notify(event string, game *entity.Game) {
	that.mu.Lock()
	listeners := that.listeners
	that.mu.Unlock()

	for _, listener := range listeners {
		listener(event, game)
	}
}

func (that *GameManager) buildGame(request NewGameRequest) (*entity.Game, error) {
	mode := request.Mode
	if mode == "" {
		mode = entity.ModePvP
	}
	if mode != entity.ModePvP && mode != entity.ModeBot {
		return nil, fmt.Errorf("%w: %q", entity.ErrUnknownMode, request.Mode)
	}

	size := request.BoardSize
	if size == 0 {
		size = that.settings.BoardSize
	}
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, size)
	}

	game := entity.NewGame(pkg.GenerateGameID(), mode, size)
	game.Players = entity.Players{A: "Player A", B: "Player B"}

	if game.IsWithBot() {
		game.BotPlayer = request.BotPlayer
		if game.BotPlayer == entity.Empty {
			game.BotPlayer = entity.PlayerB
		}
		if !game.BotPlayer.IsPlayer() {
			return nil, apperror.ErrInvalidSide
		}

		game.Difficulty = that.settings.DefaultDifficulty
		if request.Difficulty != "" {
			difficulty, err := entity.ParseDifficulty(request.Difficulty)
			if err != nil {
				return nil, err
			}
			game.Difficulty = difficulty
		}

		game.Players = entity.Players{A: "Player", B: "Player"}
		if game.BotPlayer == entity.PlayerA {
			game.Players.A = defaultBotName
		} else {
			game.Players.B = defaultBotName
		}
	}

	for side, name := range map[entity.Cell]string{entity.PlayerA: request.PlayerA, entity.PlayerB: request.PlayerB} {
		if name == "" {
			continue
		}

		cleaned, err := CleanName(name)
		if err != nil {
			return nil, err
		}

		if side == entity.PlayerA {
			game.Players.A = cleaned
		} else {
			game.Players.B = cleaned
		}
	}

	return game, nil
}

// playBot lets the bot move while it is its turn, after the configured delay.
func (that *GameManager) playBot(ctx context.Context, game *entity.Game) error {
	if !game.IsBotTurn() {
		return nil
	}

	if that.settings.BotDelay > 0 {
		select {
		case <-ctx.Done():
			return fmt.Errorf("bot move cancelled: %w", ctx.Err())
		case <-time.After(that.settings.BotDelay):
		}
	}

	at, err := that.bot.SelectMove(game.State.Board, game.BotPlayer, game.Difficulty)
	if err != nil {
		return fmt.Errorf("failed to select bot move: %w", err)
	}

	if err = gomoku.ApplyMove(game.State, at); err != nil {
		return fmt.Errorf("failed to apply bot move: %w", err)
	}

	that.finish(ctx, game)

	return that.updateGame(ctx, game)
}

// finish reports a terminal outcome to the leaderboard, once per session.
func (that *GameManager) finish(ctx context.Context, game *entity.Game) {
	game.Touch()

	if !game.IsFinished() || game.Recorded {
		return
	}

	log := that.logger.With("method", "finish", "game_id", game.ID)
	log.Info("game finished", "outcome", game.State.Outcome(), "moves", game.State.MoveCount())

	if err := that.leaderboard.RecordOutcome(ctx, game); err != nil {
		log.Error("failed to record outcome", "error", err)
		return
	}

	game.Recorded = true
}

// lock takes the per-game lock. The entry is dropped once nobody holds or waits for it.
func (that *GameManager) lock(id string) func() {
	that.mu.Lock()
	entry, ok := that.locks[id]
	if !ok {
		entry = &gameLock{}
		that.locks[id] = entry
	}
	entry.refs++
	that.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		that.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(that.locks, id)
		}
		that.mu.Unlock()
	}
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrGameNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return existingGame, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
