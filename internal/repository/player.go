package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// PlayerRepository persists leaderboard rows.
type PlayerRepository interface {
	AddResults(ctx context.Context, results []entity.PlayerResult) error
	GetByName(ctx context.Context, name string) (*entity.PlayerRecord, error)
	List(ctx context.Context, limit int) ([]*entity.PlayerRecord, error)
}

type dbPlayer struct {
	conn *sql.DB
}

func NewPlayerRepository(conn *sql.DB) PlayerRepository {
	return &dbPlayer{
		conn: conn,
	}
}

// AddResults credits every result in one transaction: either all rows change or none do.
func (that *dbPlayer) AddResults(ctx context.Context, results []entity.PlayerResult) error {
	if len(results) == 0 {
		return nil
	}

	tx, err := that.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't start transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	updatedAt := time.Now().UTC().UnixMilli()
	for _, result := range results {
		if err = addResult(ctx, tx, result, updatedAt); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit results: %w", err)
	}

	return nil
}

func addResult(ctx context.Context, tx *sql.Tx, result entity.PlayerResult, updatedAt int64) error {
	var wins, losses, draws int
	switch result.Result {
	case entity.ResultWin:
		wins = 1
	case entity.ResultLoss:
		losses = 1
	case entity.ResultDraw:
		draws = 1
	default:
		return fmt.Errorf("unknown result %q", result.Result)
	}

	query := `
INSERT INTO player_records (name, score, wins, losses, draws, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (name) DO UPDATE SET
    score = score + excluded.score,
    wins = wins + excluded.wins,
    losses = losses + excluded.losses,
    draws = draws + excluded.draws,
    updated_at = excluded.updated_at`

	_, err := tx.ExecContext(ctx, query, result.Name, result.Result.Points(), wins, losses, draws, updatedAt)
	if err != nil {
		return fmt.Errorf("can't add result for %s: %w", result.Name, err)
	}

	return nil
}

// GetByName returns a zero record for a name that never finished a game.
func (that *dbPlayer) GetByName(ctx context.Context, name string) (*entity.PlayerRecord, error) {
	query := `SELECT name, score, wins, losses, draws FROM player_records WHERE name = ?`

	record := &entity.PlayerRecord{}

	err := that.conn.QueryRowContext(ctx, query, name).Scan(&record.Name, &record.Score, &record.Wins, &record.Losses, &record.Draws)
	if errors.Is(err, sql.ErrNoRows) {
		return &entity.PlayerRecord{Name: name}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can't find player: %w", err)
	}

	return record, nil
}

// List returns records by score descending, then name; limit <= 0 returns all of them.
func (that *dbPlayer) List(ctx context.Context, limit int) ([]*entity.PlayerRecord, error) {
	if limit <= 0 {
		limit = -1
	}

	query := `SELECT name, score, wins, losses, draws FROM player_records ORDER BY score DESC, name ASC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("can't list players: %w", err)
	}
	defer rows.Close()

	records := []*entity.PlayerRecord{}
	for rows.Next() {
		record := &entity.PlayerRecord{}
		if err = rows.Scan(&record.Name, &record.Score, &record.Wins, &record.Losses, &record.Draws); err != nil {
			return nil, fmt.Errorf("can't scan player: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't list players: %w", err)
	}

	return records, nil
}
