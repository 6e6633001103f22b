package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ykvlv/pomodoro-bot/internal/domain"
)

// DefaultRedisPrefix namespaces timer keys, one key per user.
const DefaultRedisPrefix = "apomodoros:user:"

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// RedisRepo implements Repo with one JSON value per user key.
type RedisRepo struct {
	client *redis.Client
	prefix string
}

// redisTimer is the stored JSON shape. Start time is unix milliseconds.
type redisTimer struct {
	User          string  `json:"user"`
	StartedAt     int64   `json:"started"`
	LengthMinutes float64 `json:"len"`
	NotifyTarget  string  `json:"envelope"`
}

// OpenRedis connects to Redis and verifies the connection.
func OpenRedis(ctx context.Context, cfg RedisConfig) (*RedisRepo, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisRepo{client: client, prefix: prefix}, nil
}

func (r *RedisRepo) key(user string) string {
	return r.prefix + user
}

func (r *RedisRepo) Get(ctx context.Context, user string) (*domain.Timer, error) {
	data, err := r.client.Get(ctx, r.key(user)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get timer %s: %w", user, err)
	}
	t := decodeTimer(user, data)
	return &t, nil
}

func (r *RedisRepo) Set(ctx context.Context, user string, t *domain.Timer) error {
	if t == nil {
		if err := r.client.Del(ctx, r.key(user)).Err(); err != nil {
			return fmt.Errorf("delete timer %s: %w", user, err)
		}
		return nil
	}
	rt := redisTimer{
		User:          user,
		LengthMinutes: t.LengthMinutes,
		NotifyTarget:  t.NotifyTarget,
	}
	if !t.StartedAt.IsZero() {
		rt.StartedAt = t.StartedAt.UnixMilli()
	}
	data, err := json.Marshal(rt)
	if err != nil {
		return fmt.Errorf("marshal timer: %w", err)
	}
	if err := r.client.Set(ctx, r.key(user), data, 0).Err(); err != nil {
		return fmt.Errorf("set timer %s: %w", user, err)
	}
	return nil
}

func (r *RedisRepo) List(ctx context.Context) ([]domain.Timer, error) {
	var (
		res    []domain.Timer
		cursor uint64
	)
	for {
		keys, next, err := r.client.Scan(ctx, cursor, r.prefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("scan keys: %w", err)
		}
		for _, key := range keys {
			data, err := r.client.Get(ctx, key).Bytes()
			if errors.Is(err, redis.Nil) {
				continue // deleted between SCAN and GET
			}
			if err != nil {
				return nil, fmt.Errorf("get %s: %w", key, err)
			}
			res = append(res, decodeTimer(strings.TrimPrefix(key, r.prefix), data))
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].User < res[j].User })
	return res, nil
}

func (r *RedisRepo) Close() error {
	return r.client.Close()
}

// decodeTimer never fails: an undecodable value becomes a malformed timer so
// the poller can discard it.
func decodeTimer(user string, data []byte) domain.Timer {
	var rt redisTimer
	if err := json.Unmarshal(data, &rt); err != nil {
		return domain.Timer{User: user}
	}
	t := domain.Timer{
		User:          user,
		LengthMinutes: rt.LengthMinutes,
		NotifyTarget:  rt.NotifyTarget,
	}
	if rt.StartedAt != 0 {
		t.StartedAt = time.UnixMilli(rt.StartedAt)
	}
	return t
}
