package filekv

import (
	"context"
	"time"
)

const (
	// DefaultTimeout is the timeout applied by Wait callers that do not
	// have a better deadline of their own.
	DefaultTimeout = 5 * time.Minute

	// NoTimeout makes Wait block until every key is observed, however
	// long that takes.
	NoTimeout = time.Duration(0)
)

// Store is the capability set shared by every backend. All methods are safe
// for concurrent use from any number of goroutines and, for backends with
// shared state such as the file driver, from any number of processes.
//
// Values are raw byte strings; the store never interprets them, with the
// single exception of Add, which treats a value as the decimal text of an
// integer counter.
type Store interface {
	// Set durably publishes a key/value pair. Setting the same key again
	// is allowed; the latest write is authoritative for subsequent reads.
	Set(ctx context.Context, key, value []byte) error

	// Get blocks until the key has been observed at least once, then
	// returns its latest known value. Get has no timeout of its own;
	// cancel ctx to abandon the wait.
	Get(ctx context.Context, key []byte) ([]byte, error)

	// Add atomically adds delta to the integer counter stored under key
	// (absent keys count from zero) and returns the new value. Concurrent
	// Add calls never lose an update.
	Add(ctx context.Context, key []byte, delta int64) (int64, error)

	// Check reports whether every key has been observed at least once.
	// It refreshes the backend's view first and never blocks on missing
	// keys.
	Check(ctx context.Context, keys [][]byte) (bool, error)

	// Wait blocks until Check(keys) is true or timeout elapses. A finite
	// timeout produces a WaitTimeoutError; NoTimeout waits forever.
	Wait(ctx context.Context, keys [][]byte, timeout time.Duration) error
}
