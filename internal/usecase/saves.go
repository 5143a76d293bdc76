package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type saveRepo interface {
	Create(ctx context.Context, save *entity.Save) error
	List(ctx context.Context) ([]*entity.Save, error)
	GetByTimestamp(ctx context.Context, timestamp int64) (*entity.Save, error)
	DeleteByTimestamp(ctx context.Context, timestamp int64) error
}

type gameRestorer interface {
	Restore(ctx context.Context, game *entity.Game) error
}

type SaveUseCase interface {
	SaveGame(ctx context.Context, gameID, name string) (*entity.Save, error)
	ListSaves(ctx context.Context) ([]*entity.Save, error)
	LoadSave(ctx context.Context, timestamp int64) (*entity.Game, error)
	DeleteSave(ctx context.Context, timestamp int64) error
}

type saveUseCase struct {
	logger   *slog.Logger
	gameRepo gameRepo
	saveRepo saveRepo
	restorer gameRestorer
	now      func() time.Time
}

func NewSaveUseCase(logger *slog.Logger, gameRepo gameRepo, saveRepo saveRepo, restorer gameRestorer) SaveUseCase {
	return &saveUseCase{
		logger:   logger.With("component", "saves"),
		gameRepo: gameRepo,
		saveRepo: saveRepo,
		restorer: restorer,
		now:      time.Now,
	}
}

// SaveGame stores a copy of the session. An empty name defaults to the save time.
func (that *saveUseCase) SaveGame(ctx context.Context, gameID, name string) (*entity.Save, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	save := entity.NewSave(strings.TrimSpace(name), game, that.now())
	if err = that.saveRepo.Create(ctx, save); err != nil {
		return nil, fmt.Errorf("failed to create save: %w", err)
	}

	that.logger.Info("game saved", "game_id", gameID, "timestamp", save.Timestamp)

	return save, nil
}

func (that *saveUseCase) ListSaves(ctx context.Context) ([]*entity.Save, error) {
	saves, err := that.saveRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}

	return saves, nil
}

// LoadSave restores the saved session under its original ID, replacing any live one.
func (that *saveUseCase) LoadSave(ctx context.Context, timestamp int64) (*entity.Game, error) {
	save, err := that.saveRepo.GetByTimestamp(ctx, timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to get save: %w", err)
	}

	// goes through the manager so a concurrent move on the same ID cannot interleave
	if err = that.restorer.Restore(ctx, save.Game); err != nil {
		return nil, fmt.Errorf("failed to restore game: %w", err)
	}

	that.logger.Info("save loaded", "game_id", save.Game.ID, "timestamp", timestamp)

	return save.Game, nil
}

func (that *saveUseCase) DeleteSave(ctx context.Context, timestamp int64) error {
	if err := that.saveRepo.DeleteByTimestamp(ctx, timestamp); err != nil {
		return fmt.Errorf("failed to delete save: %w", err)
	}

	return nil
}
