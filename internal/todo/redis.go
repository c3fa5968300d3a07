package todo

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-todo-list/internal/logger"
)

const maxWatchRetries = 5

// RedisStore keeps each todo in a hash, ordered by a sorted set of ids.
// Ids come from an INCR counter and are never reused.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisStore creates a RedisStore whose keys start with prefix.
func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "todo"
	}
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (s *RedisStore) counterKey() string { return s.prefix + ":next_id" }
func (s *RedisStore) indexKey() string   { return s.prefix + ":index" }
func (s *RedisStore) itemKey(id int64) string {
	return s.prefix + ":item:" + strconv.FormatInt(id, 10)
}

func (s *RedisStore) Get(ctx context.Context, id int64) (Todo, error) {
	fields, err := s.rdb.HGetAll(ctx, s.itemKey(id)).Result()
	logger.Log.Debugw("redis", "cmd", "HGETALL", "key", s.itemKey(id), "error", err)
	if err != nil {
		return Todo{}, fmt.Errorf("get todo %d: %w", id, err)
	}
	if len(fields) == 0 {
		return Todo{}, ErrNotFound
	}
	return decodeTodo(id, fields), nil
}

func (s *RedisStore) List(ctx context.Context) ([]Todo, error) {
	members, err := s.rdb.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list todo ids: %w", err)
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			logger.Log.Warnw("skipping malformed todo id", "member", m)
			continue
		}
		ids = append(ids, id)
	}

	cmds := make([]*redis.MapStringStringCmd, len(ids))
	_, err = s.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = pipe.HGetAll(ctx, s.itemKey(id))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	out := make([]Todo, 0, len(ids))
	for i, id := range ids {
		fields := cmds[i].Val()
		if len(fields) == 0 {
			continue
		}
		out = append(out, decodeTodo(id, fields))
	}
	return out, nil
}

func (s *RedisStore) Insert(ctx context.Context, title, description string) (Todo, error) {
	id, err := s.rdb.Incr(ctx, s.counterKey()).Result()
	if err != nil {
		return Todo{}, fmt.Errorf("allocate todo id: %w", err)
	}

	t := Todo{ID: id, Title: title, Description: description}
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, s.itemKey(id), encodeTodo(t))
		pipe.ZAdd(ctx, s.indexKey(), redis.Z{Score: float64(id), Member: id})
		return nil
	})
	logger.Log.Debugw("redis", "cmd", "INSERT", "key", s.itemKey(id), "error", err)
	if err != nil {
		return Todo{}, fmt.Errorf("insert todo %d: %w", id, err)
	}
	return t, nil
}

func (s *RedisStore) Update(ctx context.Context, t Todo) error {
	key := s.itemKey(t.ID)
	return s.watch(ctx, key, func(tx *redis.Tx) error {
		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, encodeTodo(t))
			return nil
		})
		return err
	})
}

func (s *RedisStore) Delete(ctx context.Context, id int64) error {
	key := s.itemKey(id)
	return s.watch(ctx, key, func(tx *redis.Tx) error {
		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			pipe.ZRem(ctx, s.indexKey(), id)
			return nil
		})
		return err
	})
}

// watch runs fn in an optimistic transaction on key after checking that
// key exists, retrying when another client modifies it concurrently.
func (s *RedisStore) watch(ctx context.Context, key string, fn func(tx *redis.Tx) error) error {
	txf := func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return fn(tx)
	}

	for i := 0; i < maxWatchRetries; i++ {
		err := s.rdb.Watch(ctx, txf, key)
		logger.Log.Debugw("redis", "cmd", "WATCH", "key", key, "attempt", i+1, "error", err)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("update %s: %w", key, redis.TxFailedErr)
}

func encodeTodo(t Todo) map[string]any {
	return map[string]any{
		"title":       t.Title,
		"description": t.Description,
		"completed":   strconv.FormatBool(t.Completed),
	}
}

func decodeTodo(id int64, fields map[string]string) Todo {
	completed, _ := strconv.ParseBool(fields["completed"])
	return Todo{
		ID:          id,
		Title:       fields["title"],
		Description: fields["description"],
		Completed:   completed,
	}
}
