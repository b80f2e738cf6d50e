package redis

import (
	"errors"
	"time"

	"github.com/bidhaus/goapi/base/ctx"
)

// Forever means the key has no associated expire
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("key not found")

	// ErrNoTTL is returned when the key exists but has no associated expire
	ErrNoTTL = errors.New("key has no ttl")

	// ErrGapTime is returned when no pool is available for the command
	ErrGapTime = errors.New("in gap time, no available pool")
)

// Service abstracts the redis layer
type Service interface {
	// Get returns value of key, ErrNotFound if key does not exist
	Get(context ctx.Ctx, key string) (val []byte, err error)

	// Set sets value of key with expire, use Forever to skip expire
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error

	// Del deletes keys and returns the number of keys removed
	Del(context ctx.Ctx, ks ...string) (int, error)

	// TTL returns remaining ttl of key in seconds.
	// Returns ErrNotFound if key does not exist, ErrNoTTL if key has no expire.
	TTL(context ctx.Ctx, key string) (int, error)

	// Exists checks if key exists
	Exists(context ctx.Ctx, key string) (bool, error)

	// Incrby increments the number stored at key by val
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
}
