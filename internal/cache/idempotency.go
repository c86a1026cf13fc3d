package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Jorgemunera/payment-notification-service/internal/models"
)

const (
	lockKeyPrefix        = "lock:"
	idempotencyKeyPrefix = "idempotency:"

	// Poll interval while waiting for a contended lock.
	lockRetryInterval = 100 * time.Millisecond
)

// IdempotencyStore provides the two coordination primitives of the
// admission path: a TTL-based mutex per idempotency key and a cache of the
// externally visible result of a successful admission. The two are
// independent: the lock serializes concurrent requests, the cache absorbs
// later duplicates.
type IdempotencyStore struct {
	rdb    *redis.Client
	locker *redislock.Client
	ttl    time.Duration
	log    *logrus.Entry
}

func NewIdempotencyStore(rdb *redis.Client, resultTTL time.Duration) *IdempotencyStore {
	return &IdempotencyStore{
		rdb:    rdb,
		locker: redislock.New(rdb),
		ttl:    resultTTL,
		log:    logrus.WithField("component", "idempotency-store"),
	}
}

// WithLock runs fn while holding the named lock. Acquisition polls every
// 100ms until maxWait elapses, then fails with LockAcquisitionTimeout. The
// lock is always released, also when fn returns an error.
func (s *IdempotencyStore) WithLock(ctx context.Context, name string, ttl, maxWait time.Duration, fn func(ctx context.Context) error) error {
	waitCtx, cancel := context.WithTimeout(ctx, maxWait)
	defer cancel()

	lock, err := s.locker.Obtain(waitCtx, lockKeyPrefix+name, ttl, &redislock.Options{
		RetryStrategy: redislock.LinearBackoff(lockRetryInterval),
	})
	if errors.Is(err, redislock.ErrNotObtained) || errors.Is(err, context.DeadlineExceeded) {
		s.log.WithField("lock", name).Warn("lock not acquired within max wait")
		return models.LockAcquisitionTimeout(name)
	}
	if err != nil {
		return err
	}
	defer func() {
		releaseCtx, releaseCancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer releaseCancel()
		if err := lock.Release(releaseCtx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			s.log.WithField("lock", name).WithError(err).Warn("failed to release lock")
		}
	}()

	return fn(ctx)
}

// GetResult loads a cached admission result into dest. The boolean reports
// whether the key was present.
func (s *IdempotencyStore) GetResult(ctx context.Context, key string, dest any) (bool, error) {
	val, err := s.rdb.Get(ctx, idempotencyKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetResult caches the externally visible result of an admission under the
// caller supplied idempotency key.
func (s *IdempotencyStore) SetResult(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, idempotencyKeyPrefix+key, data, s.ttl).Err()
}

// HealthCheck pings redis.
func (s *IdempotencyStore) HealthCheck(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}
