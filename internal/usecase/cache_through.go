package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/seriea-gateway/internal/domain/clubalias"
	"github.com/riskibarqy/seriea-gateway/internal/domain/naturalkey"
	"github.com/riskibarqy/seriea-gateway/internal/platform/logging"
	"github.com/riskibarqy/seriea-gateway/internal/platform/resilience"
	"go.opentelemetry.io/otel/attribute"
)

// populateTimeout bounds a shared populate, which no single caller can cancel.
const populateTimeout = 30 * time.Second

// cacheThroughSource binds one record kind to its store and upstream.
type cacheThroughSource[T any] struct {
	Kind string
	// Lookup reads the stored record for a normalized key.
	Lookup func(ctx context.Context, key string) (T, bool, error)
	// Fetch obtains the record from upstream; name is the display form.
	Fetch func(ctx context.Context, name string) (T, error)
	// Insert persists a fetched record. It must be a no-op when the record
	// already exists.
	Insert func(ctx context.Context, item T) error
	// ReadBack reads the stored copy of a fetched record.
	ReadBack func(ctx context.Context, item T) (T, bool, error)
	// RecordKey returns the key a stored record is looked up by.
	RecordKey func(item T) string
}

// CacheThrough returns stored records and populates the store from upstream on
// a miss. Concurrent misses for one key share a single fetch and insert.
//
// Upstream may name a club differently from the request ("milan" returns
// "AC Milan"). The request key is then saved as an alias of the stored key so
// the next request hits the store.
type CacheThrough[T any] struct {
	src     cacheThroughSource[T]
	aliases clubalias.Repository
	locker  KeyLocker
	flight  resilience.SingleFlight[T]
	logger  *logging.Logger
	timeout time.Duration
}

func newCacheThrough[T any](src cacheThroughSource[T], aliases clubalias.Repository, locker KeyLocker, logger *logging.Logger) *CacheThrough[T] {
	if logger == nil {
		logger = logging.Default()
	}
	if aliases == nil {
		aliases = noAliases{}
	}
	return &CacheThrough[T]{
		src:     src,
		aliases: aliases,
		locker:  locker,
		logger:  logger.With("kind", src.Kind),
		timeout: populateTimeout,
	}
}

func (c *CacheThrough[T]) FetchOrPopulate(ctx context.Context, rawKey string) (T, error) {
	var zero T
	key := naturalkey.Key(rawKey)
	if key == "" {
		return zero, fmt.Errorf("%w: %s key is required", ErrInvalidInput, c.src.Kind)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.CacheThrough.FetchOrPopulate",
		attribute.String("record.kind", c.src.Kind),
		attribute.String("record.key", key),
	)
	defer span.End()

	item, found, err := c.lookup(ctx, key)
	if err != nil {
		recordSpanError(span, err)
		return zero, err
	}
	if found {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return item, nil
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	name := naturalkey.Display(rawKey)
	item, err, shared := c.flight.DoContext(ctx, c.src.Kind+":"+key, func() (T, error) {
		popCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()
		return c.populate(popCtx, key, name)
	})
	if err != nil {
		recordSpanError(span, err)
		return zero, err
	}
	if shared {
		c.logger.DebugContext(ctx, "cache-through miss shared", "key", key)
	}
	return item, nil
}

// lookup reads the record for key, following a saved alias first.
func (c *CacheThrough[T]) lookup(ctx context.Context, key string) (T, bool, error) {
	var zero T
	lookupKey := key
	target, aliased, err := c.aliases.Resolve(ctx, key)
	if err != nil {
		return zero, false, fmt.Errorf("resolve %s alias %q: %w", c.src.Kind, key, err)
	}
	if aliased {
		lookupKey = target
	}

	item, found, err := c.src.Lookup(ctx, lookupKey)
	if err != nil {
		return zero, false, fmt.Errorf("lookup %s %q: %w", c.src.Kind, lookupKey, err)
	}
	return item, found, nil
}

func (c *CacheThrough[T]) populate(ctx context.Context, key, name string) (T, error) {
	var zero T
	lockKey := c.src.Kind + ":" + key

	release, err := c.locker.Acquire(ctx, lockKey)
	if err != nil {
		return zero, fmt.Errorf("acquire %s lock: %w", lockKey, err)
	}
	defer release()

	// Another replica may have populated the key while we waited.
	if item, found, err := c.lookup(ctx, key); err != nil {
		return zero, err
	} else if found {
		return item, nil
	}

	fetched, err := c.src.Fetch(ctx, name)
	if err != nil {
		return zero, fmt.Errorf("fetch %s %q: %w", c.src.Kind, name, err)
	}
	if err := c.src.Insert(ctx, fetched); err != nil {
		return zero, fmt.Errorf("insert %s %q: %w", c.src.Kind, key, err)
	}

	stored, found, err := c.src.ReadBack(ctx, fetched)
	if err != nil {
		return zero, fmt.Errorf("read back %s %q: %w", c.src.Kind, key, err)
	}
	if !found {
		return zero, fmt.Errorf("%w: %s %q missing after insert", ErrStore, c.src.Kind, key)
	}

	if recordKey := c.src.RecordKey(stored); recordKey != "" && recordKey != key {
		// The record is already stored; a lost alias only costs a refetch.
		if err := c.aliases.Save(ctx, key, recordKey); err != nil {
			c.logger.WarnContext(ctx, "save alias failed", "key", key, "record_key", recordKey, "error", err)
		}
	}

	c.logger.InfoContext(ctx, "cache-through populated", "key", key)
	return stored, nil
}

// noAliases is used when no alias store is configured. Every request key is
// then looked up as given.
type noAliases struct{}

func (noAliases) Resolve(context.Context, string) (string, bool, error) { return "", false, nil }
func (noAliases) Save(context.Context, string, string) error           { return nil }
func (noAliases) Repoint(context.Context, string, string) (int, error)  { return 0, nil }
