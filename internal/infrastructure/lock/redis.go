package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/seriea-gateway/internal/platform/id"
	"github.com/riskibarqy/seriea-gateway/internal/platform/logging"
	"github.com/riskibarqy/seriea-gateway/internal/usecase"
)

const (
	defaultRedisLockPrefix = "seriea:lock:"
	defaultRedisLockTTL    = 30 * time.Second
	defaultRedisLockPoll   = 50 * time.Millisecond
)

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

var (
	_ usecase.KeyLocker = (*RedisLocker)(nil)
	_ usecase.KeyLocker = (*MemoryLocker)(nil)
)

type redisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	redis.Scripter
}

type RedisLockerConfig struct {
	Prefix       string
	TTL          time.Duration
	PollInterval time.Duration
	Tokens       id.Generator
	Logger       *logging.Logger
}

// RedisLocker is a cross-instance key lock. The TTL bounds how long a crashed
// holder can keep the key.
type RedisLocker struct {
	client redisClient
	prefix string
	ttl    time.Duration
	poll   time.Duration
	tokens id.Generator
	logger *logging.Logger
}

func NewRedisLocker(client redisClient, cfg RedisLockerConfig) *RedisLocker {
	if cfg.Prefix == "" {
		cfg.Prefix = defaultRedisLockPrefix
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultRedisLockTTL
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultRedisLockPoll
	}
	if cfg.Tokens == nil {
		cfg.Tokens = id.NewRandomGenerator()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}

	return &RedisLocker{
		client: client,
		prefix: cfg.Prefix,
		ttl:    cfg.TTL,
		poll:   cfg.PollInterval,
		tokens: cfg.Tokens,
		logger: cfg.Logger,
	}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	token, err := l.tokens.NewID()
	if err != nil {
		return nil, fmt.Errorf("%w: lock token: %w", usecase.ErrDependencyUnavailable, err)
	}
	redisKey := l.prefix + key

	ticker := time.NewTicker(l.poll)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("%w: acquire lock %s: %w", usecase.ErrDependencyUnavailable, key, err)
		}
		if ok {
			return l.releaser(redisKey, token), nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (l *RedisLocker) releaser(redisKey, token string) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := releaseScript.Run(ctx, l.client, []string{redisKey}, token).Err(); err != nil {
			l.logger.Warn("release redis lock failed", "key", redisKey, "error", err)
		}
	}
}
