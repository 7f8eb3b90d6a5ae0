package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/duccv/jotspot/internal/model"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const maxUpdateAttempts = 3

// RedisStore keeps jots as JSON in the hash <prefix>:data and their insertion
// order in the list <prefix>:index.
type RedisStore struct {
	client   *redis.Client
	dataKey  string
	indexKey string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "jots"
	}
	return &RedisStore{
		client:   client,
		dataKey:  prefix + ":data",
		indexKey: prefix + ":index",
	}
}

func (s *RedisStore) GetAll(ctx context.Context) ([]model.Jot, error) {
	ids, err := s.client.LRange(ctx, s.indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list jot ids: %w", err)
	}
	if len(ids) == 0 {
		return []model.Jot{}, nil
	}

	values, err := s.client.HMGet(ctx, s.dataKey, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("load jots: %w", err)
	}

	jots := make([]model.Jot, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// index entry without data, left behind by a concurrent delete
			continue
		}
		var jot model.Jot
		if err := json.Unmarshal([]byte(raw), &jot); err != nil {
			return nil, fmt.Errorf("decode jot %s: %w", ids[i], err)
		}
		jots = append(jots, jot)
	}
	return jots, nil
}

func (s *RedisStore) Add(ctx context.Context, jot model.Jot) error {
	raw, err := json.Marshal(jot)
	if err != nil {
		return fmt.Errorf("encode jot: %w", err)
	}
	id := jot.ID.String()

	return s.client.Watch(ctx, func(tx *redis.Tx) error {
		exists, err := tx.HExists(ctx, s.dataKey, id).Result()
		if err != nil {
			return fmt.Errorf("check jot %s: %w", id, err)
		}
		if exists {
			return ErrDuplicateID
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, s.dataKey, id, raw)
			pipe.RPush(ctx, s.indexKey, id)
			return nil
		})
		return err
	}, s.dataKey)
}

func (s *RedisStore) GetByID(ctx context.Context, id uuid.UUID) (model.Jot, bool, error) {
	raw, err := s.client.HGet(ctx, s.dataKey, id.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Jot{}, false, nil
	}
	if err != nil {
		return model.Jot{}, false, fmt.Errorf("load jot %s: %w", id, err)
	}

	var jot model.Jot
	if err := json.Unmarshal(raw, &jot); err != nil {
		return model.Jot{}, false, fmt.Errorf("decode jot %s: %w", id, err)
	}
	return jot, true, nil
}

// Update retries only when another writer touched the hash between read and write.
func (s *RedisStore) Update(ctx context.Context, id uuid.UUID, mutate func(*model.Jot)) (model.Jot, bool, error) {
	var (
		updated model.Jot
		found   bool
	)
	field := id.String()

	txf := func(tx *redis.Tx) error {
		raw, err := tx.HGet(ctx, s.dataKey, field).Bytes()
		if errors.Is(err, redis.Nil) {
			found = false
			return nil
		}
		if err != nil {
			return err
		}

		var jot model.Jot
		if err := json.Unmarshal(raw, &jot); err != nil {
			return fmt.Errorf("decode jot %s: %w", id, err)
		}
		mutate(&jot)
		jot.ID = id

		encoded, err := json.Marshal(jot)
		if err != nil {
			return fmt.Errorf("encode jot %s: %w", id, err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, s.dataKey, field, encoded)
			return nil
		})
		if err != nil {
			return err
		}
		updated, found = jot, true
		return nil
	}

	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		err := s.client.Watch(ctx, txf, s.dataKey)
		if errors.Is(err, redis.TxFailedErr) {
			zap.L().Debug("Jot update conflicted", zap.String("id", field), zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return model.Jot{}, false, fmt.Errorf("update jot %s: %w", id, err)
		}
		return updated, found, nil
	}
	return model.Jot{}, false, fmt.Errorf("update jot %s: %w", id, redis.TxFailedErr)
}

func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	field := id.String()

	var removed *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		removed = pipe.HDel(ctx, s.dataKey, field)
		pipe.LRem(ctx, s.indexKey, 0, field)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete jot %s: %w", id, err)
	}
	return removed.Val() > 0, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
