package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/bot"
	"github.com/rocketscienceinc/gomoku-backend/internal/config"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository/storage"
	"github.com/rocketscienceinc/gomoku-backend/internal/usecase"
	"github.com/rocketscienceinc/gomoku-backend/transport/rest"
	"github.com/rocketscienceinc/gomoku-backend/transport/websocket"
)

const shutdownTimeout = 5 * time.Second

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	settings, err := engineSettings(conf.Engine)
	if err != nil {
		return err
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString, conf.Redis.DB)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err := sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not migrate sqlite storage: %w", err)
	}

	gameRepo := repository.NewGameRepository(redisStorage.Connection, conf.Redis.SessionTTL)
	saveRepo := repository.NewSaveRepository(redisStorage.Connection)
	nameRepo := repository.NewNameRepository(redisStorage.Connection)
	playerRepo := repository.NewPlayerRepository(sqliteStorage.Connection)

	seed := conf.Engine.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("bot ready", "seed", seed)

	leaderboardUseCase := usecase.NewLeaderboardUseCase(logger, playerRepo)
	nameUseCase := usecase.NewNameUseCase(nameRepo)
	gameManager := usecase.NewGameManager(logger, settings, gameRepo, bot.NewFromSeed(seed), leaderboardUseCase, nameUseCase)
	saveUseCase := usecase.NewSaveUseCase(logger, gameRepo, saveRepo, gameManager)

	httpServer := rest.New(logger, conf.HTTPPort, gameManager, leaderboardUseCase, saveUseCase, nameUseCase)
	wsServer := websocket.New(logger, conf.SocketPort, gameManager)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		if httpErr := httpServer.Start(); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		if wsErr := wsServer.Start(); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		err = fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		err = fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
		log.Error("could not stop HTTP server", "error", shutdownErr)
	}

	if shutdownErr := wsServer.Shutdown(shutdownCtx); shutdownErr != nil {
		log.Error("could not stop WebSocket server", "error", shutdownErr)
	}

	return err
}

func engineSettings(conf config.Engine) (usecase.Settings, error) {
	difficulty, err := entity.ParseDifficulty(conf.DefaultDifficulty)
	if err != nil {
		return usecase.Settings{}, fmt.Errorf("invalid engine config: %w", err)
	}

	if conf.BoardSize < usecase.MinBoardSize || conf.BoardSize > usecase.MaxBoardSize {
		return usecase.Settings{}, fmt.Errorf("invalid engine config: %w: %d", entity.ErrInvalidBoard, conf.BoardSize)
	}

	return usecase.Settings{
		BoardSize:         conf.BoardSize,
		DefaultDifficulty: difficulty,
		BotDelay:          conf.BotDelay,
	}, nil
}
