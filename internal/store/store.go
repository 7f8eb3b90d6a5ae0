// Package store keeps jots. The memory variant is the default; the redis
// variant survives restarts. Both are selected through config.StoreConfig.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/duccv/jotspot/config"
	"github.com/duccv/jotspot/internal/model"
	"github.com/duccv/jotspot/pkg/cache"
	"github.com/google/uuid"
)

const (
	TypeMemory = "memory"
	TypeRedis  = "redis"
)

var (
	ErrDuplicateID      = errors.New("store: jot id already exists")
	ErrUnsupportedStore = errors.New("store: unsupported store type")
)

// JotStore is the only owner of jot records. Implementations are safe for
// concurrent use; returned jots are copies.
type JotStore interface {
	// GetAll returns a snapshot in insertion order.
	GetAll(ctx context.Context) ([]model.Jot, error)
	// Add inserts a jot whose id the caller generated.
	Add(ctx context.Context, jot model.Jot) error
	GetByID(ctx context.Context, id uuid.UUID) (model.Jot, bool, error)
	// Update applies mutate to the stored jot atomically. The id is kept even if mutate changes it.
	Update(ctx context.Context, id uuid.UUID, mutate func(*model.Jot)) (model.Jot, bool, error)
	// Delete reports whether a record was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Close() error
}

// New builds the store named by cfg.Type; an empty type means memory.
func New(ctx context.Context, cfg config.StoreConfig, redisCfg config.RedisConfig) (JotStore, error) {
	switch cfg.Type {
	case "", TypeMemory:
		return NewMemoryStore(), nil
	case TypeRedis:
		client, err := cache.NewRedisClient(ctx, redisCfg)
		if err != nil {
			return nil, fmt.Errorf("redis store: %w", err)
		}
		return NewRedisStore(client, redisCfg.KeyPrefix), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedStore, cfg.Type)
	}
}
