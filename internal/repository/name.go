package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	namesKey = "names"

	// MaxNames is the length of the name history.
	MaxNames = 20
)

// NameRepository keeps recently used player names, most recent first, without duplicates.
type NameRepository interface {
	Remember(ctx context.Context, name string) error
	List(ctx context.Context) ([]string, error)
	Forget(ctx context.Context, name string) error
}

type dbName struct {
	client *redis.Client
}

func NewNameRepository(client *redis.Client) NameRepository {
	return &dbName{
		client: client,
	}
}

func (that *dbName) Remember(ctx context.Context, name string) error {
	pipe := that.client.TxPipeline()
	pipe.LRem(ctx, namesKey, 0, name)
	pipe.LPush(ctx, namesKey, name)
	pipe.LTrim(ctx, namesKey, 0, MaxNames-1)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to remember name: %w", err)
	}

	return nil
}

func (that *dbName) List(ctx context.Context) ([]string, error) {
	names, err := that.client.LRange(ctx, namesKey, 0, MaxNames-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list names: %w", err)
	}

	return names, nil
}

func (that *dbName) Forget(ctx context.Context, name string) error {
	if err := that.client.LRem(ctx, namesKey, 0, name).Err(); err != nil {
		return fmt.Errorf("failed to forget name: %w", err)
	}

	return nil
}
