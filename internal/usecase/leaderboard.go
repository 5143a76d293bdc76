package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type playerRepo interface {
	AddResults(ctx context.Context, results []entity.PlayerResult) error
	GetByName(ctx context.Context, name string) (*entity.PlayerRecord, error)
	List(ctx context.Context, limit int) ([]*entity.PlayerRecord, error)
}

type LeaderboardUseCase interface {
	RecordOutcome(ctx context.Context, game *entity.Game) error
	Leaderboard(ctx context.Context, limit int) ([]*entity.PlayerRecord, error)
	GetRecord(ctx context.Context, name string) (*entity.PlayerRecord, error)
}

type leaderboardUseCase struct {
	logger *slog.Logger
	repo   playerRepo
}

func NewLeaderboardUseCase(logger *slog.Logger, repo playerRepo) LeaderboardUseCase {
	return &leaderboardUseCase{
		logger: logger.With("component", "leaderboard"),
		repo:   repo,
	}
}

// RecordOutcome credits the human sides of a finished game together. Unfinished games are ignored.
func (that *leaderboardUseCase) RecordOutcome(ctx context.Context, game *entity.Game) error {
	results := resultsOf(game)
	if len(results) == 0 {
		return nil
	}

	if err := that.repo.AddResults(ctx, results); err != nil {
		return fmt.Errorf("failed to record outcome of %s: %w", game.ID, err)
	}

	that.logger.Debug("outcome recorded", "game_id", game.ID, "outcome", game.State.Outcome())

	return nil
}

func (that *leaderboardUseCase) Leaderboard(ctx context.Context, limit int) ([]*entity.PlayerRecord, error) {
	records, err := that.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	return records, nil
}

func (that *leaderboardUseCase) GetRecord(ctx context.Context, name string) (*entity.PlayerRecord, error) {
	cleaned, err := CleanName(name)
	if err != nil {
		return nil, err
	}

	record, err := that.repo.GetByName(ctx, cleaned)
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	return record, nil
}

func resultsOf(game *entity.Game) []entity.PlayerResult {
	var resultA, resultB entity.Result

	switch game.State.Outcome() {
	case entity.OutcomePlayerAWins:
		resultA, resultB = entity.ResultWin, entity.ResultLoss
	case entity.OutcomePlayerBWins:
		resultA, resultB = entity.ResultLoss, entity.ResultWin
	case entity.OutcomeDraw:
		resultA, resultB = entity.ResultDraw, entity.ResultDraw
	default:
		return nil
	}

	var results []entity.PlayerResult
	if !game.IsWithBot() || game.BotPlayer != entity.PlayerA {
		results = append(results, entity.PlayerResult{Name: game.Players.A, Result: resultA})
	}
	if !game.IsWithBot() || game.BotPlayer != entity.PlayerB {
		results = append(results, entity.PlayerResult{Name: game.Players.B, Result: resultB})
	}

	return results
}
