package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is the durable boundary for the three-part snapshot. Load returns
// (nil, nil) when no snapshot exists.
type Store interface {
	Save(ctx context.Context, rec *Record) error
	Load(ctx context.Context) (*Record, error)
	Clear(ctx context.Context) error
	Close() error
}

// RedisStore keeps the snapshot in Redis under <prefix>:board, <prefix>:turn
// and <prefix>:captures. A missing key means no saved game.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration // 0 = no expiry
}

// NewRedisStore connects to redisURL and pings before returning.
func NewRedisStore(redisURL, prefix string, ttl time.Duration) (*RedisStore, error) {
	if strings.TrimSpace(redisURL) == "" {
		return nil, fmt.Errorf("redis URL required")
	}
	opts, err := parseRedisURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	if strings.TrimSpace(prefix) == "" {
		prefix = "chessboard"
	}
	return &RedisStore{rdb: rdb, prefix: prefix, ttl: ttl}, nil
}

func (s *RedisStore) keyBoard() string    { return s.prefix + ":board" }
func (s *RedisStore) keyTurn() string     { return s.prefix + ":turn" }
func (s *RedisStore) keyCaptures() string { return s.prefix + ":captures" }

func (s *RedisStore) Save(ctx context.Context, rec *Record) error {
	if rec == nil {
		return fmt.Errorf("nil snapshot record")
	}
	boardRaw, err := json.Marshal(rec.Board)
	if err != nil {
		return fmt.Errorf("marshal board: %w", err)
	}
	captures := rec.Captures
	if captures == nil {
		captures = []string{}
	}
	capturesRaw, err := json.Marshal(captures)
	if err != nil {
		return fmt.Errorf("marshal captures: %w", err)
	}
	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, s.keyBoard(), boardRaw, s.ttl)
	pipe.Set(ctx, s.keyTurn(), rec.Turn, s.ttl)
	pipe.Set(ctx, s.keyCaptures(), capturesRaw, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context) (*Record, error) {
	boardRaw, err := s.rdb.Get(ctx, s.keyBoard()).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	turn, err := s.rdb.Get(ctx, s.keyTurn()).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	capturesRaw, err := s.rdb.Get(ctx, s.keyCaptures()).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rec Record
	rec.Turn = turn
	if jerr := json.Unmarshal(boardRaw, &rec.Board); jerr != nil {
		// Malformed snapshot degrades to "no saved game".
		return nil, nil
	}
	if jerr := json.Unmarshal(capturesRaw, &rec.Captures); jerr != nil {
		return nil, nil
	}
	return &rec, nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.rdb.Del(ctx, s.keyBoard(), s.keyTurn(), s.keyCaptures()).Err()
}

func (s *RedisStore) Close() error {
	if s == nil || s.rdb == nil {
		return nil
	}
	return s.rdb.Close()
}

func parseRedisURL(raw string) (*redis.Options, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "redis" && u.Scheme != "rediss" {
		return nil, fmt.Errorf("unsupported scheme: %s", u.Scheme)
	}
	db := 0
	if p := strings.TrimPrefix(u.Path, "/"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			db = n
		}
	}
	pass, _ := u.User.Password()
	return &redis.Options{Addr: u.Host, Password: pass, DB: db}, nil
}
