package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const savesKey = "saves"

// SaveRepository keeps save slots in one sorted set scored by their timestamp.
type SaveRepository interface {
	Create(ctx context.Context, save *entity.Save) error
	List(ctx context.Context) ([]*entity.Save, error)
	GetByTimestamp(ctx context.Context, timestamp int64) (*entity.Save, error)
	DeleteByTimestamp(ctx context.Context, timestamp int64) error
}

type dbSave struct {
	client *redis.Client
}

func NewSaveRepository(client *redis.Client) SaveRepository {
	return &dbSave{
		client: client,
	}
}

func (that *dbSave) Create(ctx context.Context, save *entity.Save) error {
	saveJSON, err := json.Marshal(save)
	if err != nil {
		return fmt.Errorf("could not marshal save: %w", err)
	}

	// a slot is identified by its timestamp, so an older one with the same timestamp is replaced
	pipe := that.client.TxPipeline()
	score := strconv.FormatInt(save.Timestamp, 10)
	pipe.ZRemRangeByScore(ctx, savesKey, score, score)
	pipe.ZAdd(ctx, savesKey, redis.Z{Score: float64(save.Timestamp), Member: saveJSON})

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add save: %w", err)
	}

	return nil
}

// List returns every save, newest first.
func (that *dbSave) List(ctx context.Context) ([]*entity.Save, error) {
	members, err := that.client.ZRevRange(ctx, savesKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}

	saves := make([]*entity.Save, 0, len(members))
	for _, member := range members {
		save, err := decodeSave(member)
		if err != nil {
			return nil, err
		}
		saves = append(saves, save)
	}

	return saves, nil
}

func (that *dbSave) GetByTimestamp(ctx context.Context, timestamp int64) (*entity.Save, error) {
	score := strconv.FormatInt(timestamp, 10)

	members, err := that.client.ZRangeByScore(ctx, savesKey, &redis.ZRangeBy{Min: score, Max: score}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get save: %w", err)
	}

	if len(members) == 0 {
		return nil, apperror.ErrSaveNotFound
	}

	return decodeSave(members[0])
}

func (that *dbSave) DeleteByTimestamp(ctx context.Context, timestamp int64) error {
	score := strconv.FormatInt(timestamp, 10)

	removed, err := that.client.ZRemRangeByScore(ctx, savesKey, score, score).Result()
	if err != nil {
		return fmt.Errorf("failed to delete save: %w", err)
	}

	if removed == 0 {
		return apperror.ErrSaveNotFound
	}

	return nil
}

func decodeSave(member string) (*entity.Save, error) {
	var save entity.Save
	if err := json.Unmarshal([]byte(member), &save); err != nil {
		return nil, fmt.Errorf("failed to unmarshal save: %w", err)
	}

	return &save, nil
}
