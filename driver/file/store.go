// Package file implements the file-backed coordination store.
//
// Any number of Store instances, in the same or different processes, may be
// opened against one path. The file is an append-only log of key/value
// records; writers append under an exclusive flock(2) lock, readers replay
// new records under a shared lock into a private per-instance cache. Blocked
// reads poll on a short fixed interval rather than relying on filesystem
// change notifications, which are unreliable on shared filesystems such as
// NFS. POSIX only.
package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/tarantool/go-option"
	"go.uber.org/zap"

	"github.com/filekv/go-filekv"
	"github.com/filekv/go-filekv/internal/flock"
	"github.com/filekv/go-filekv/kv"
	"github.com/filekv/go-filekv/logrec"
)

// Store is a file-backed implementation of the filekv.Store contract.
//
// The cache and read cursor are private to the instance; a fresh instance
// rebuilds them by replaying the shared log. The internal mutex makes one
// instance safe to share across goroutines, but cross-process consistency
// comes solely from the file locks.
type Store struct {
	path string
	opts storeOptions

	mu    sync.Mutex
	pos   int64 // log offset replayed so far, always on a record boundary
	cache map[string][]byte
}

var _ filekv.Store = (*Store)(nil)

// New creates a Store against path. The file is created lazily by the first
// Set or Add and is never deleted by the store.
func New(path string, opts ...Option) *Store {
	return &Store{
		path:  path,
		opts:  applyOptions(opts),
		cache: make(map[string][]byte),
	}
}

// Set implements the filekv.Store interface.
func (s *Store) Set(_ context.Context, key, value []byte) error {
	f, err := open(s.path, os.O_RDWR|os.O_CREATE, s.opts.fileMode)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	lock, err := flock.Acquire(f, flock.Exclusive)
	if err != nil {
		return err
	}
	defer lock.Release()

	if err := appendRecord(f, kv.KeyValue{Key: key, Value: value}); err != nil {
		return err
	}

	s.opts.logger.Debug("set",
		zap.ByteString("key", key),
		zap.Int("value_len", len(value)))

	return nil
}

// Get implements the filekv.Store interface. It polls the shared log until
// the key has been observed; cancel ctx to abandon the wait.
func (s *Store) Get(ctx context.Context, key []byte) ([]byte, error) {
	for {
		value, found, err := s.lookup(key)
		if err != nil {
			return nil, err
		}

		if found {
			return value, nil
		}

		if err := sleep(ctx, s.opts.pollInterval); err != nil {
			return nil, err
		}
	}
}

// Add implements the filekv.Store interface. The whole read-modify-append
// sequence runs under one exclusive lock acquisition, which is what makes
// concurrent increments from any number of processes lose nothing.
func (s *Store) Add(_ context.Context, key []byte, delta int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := open(s.path, os.O_RDWR|os.O_CREATE, s.opts.fileMode)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	lock, err := flock.Acquire(f, flock.Exclusive)
	if err != nil {
		return 0, err
	}
	defer lock.Release()

	// Observe every prior write, including other instances' recent adds,
	// before computing the new value.
	if err := s.replay(f); err != nil {
		return 0, err
	}

	next := parseCounter(s.cache[string(key)]) + delta

	if err := appendRecord(f, kv.KeyValue{
		Key:   key,
		Value: []byte(strconv.FormatInt(next, 10)),
	}); err != nil {
		return 0, err
	}

	s.opts.logger.Debug("add",
		zap.ByteString("key", key),
		zap.Int64("delta", delta),
		zap.Int64("value", next))

	return next, nil
}

// Check implements the filekv.Store interface.
func (s *Store) Check(_ context.Context, keys [][]byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refresh(); err != nil {
		return false, err
	}

	for _, key := range keys {
		if _, ok := s.cache[string(key)]; !ok {
			return false, nil
		}
	}

	return true, nil
}

// Wait implements the filekv.Store interface.
func (s *Store) Wait(ctx context.Context, keys [][]byte, timeout time.Duration) error {
	deadline := option.None[time.Time]()
	if timeout != filekv.NoTimeout {
		deadline = option.Some(time.Now().Add(timeout))
	}

	for {
		ok, err := s.Check(ctx, keys)
		if err != nil {
			return err
		}

		if ok {
			return nil
		}

		if deadline.IsSome() && time.Now().After(deadline.UnwrapOr(time.Time{})) {
			return filekv.WaitTimeoutError{Keys: keys, Timeout: timeout}
		}

		if err := sleep(ctx, s.opts.pollInterval); err != nil {
			return err
		}
	}
}

// lookup refreshes the cache and reports whether key has been observed.
func (s *Store) lookup(key []byte) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refresh(); err != nil {
		return nil, false, err
	}

	value, ok := s.cache[string(key)]

	return value, ok, nil
}

// refresh opens the log read-only and replays any records appended since
// this instance's last observation, under a shared lock. A log file that
// does not exist yet is an empty log, not an error. Callers hold s.mu.
func (s *Store) refresh() error {
	f, err := open(s.path, os.O_RDONLY, 0)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	lock, err := flock.Acquire(f, flock.Shared)
	if err != nil {
		return err
	}
	defer lock.Release()

	return s.replay(f)
}

// replay decodes records from the read cursor to the end of the log into
// the cache, last record per key winning. Callers hold s.mu and a lock on f.
func (s *Store) replay(f *os.File) error {
	size, err := fileSize(f)
	if err != nil {
		return fmt.Errorf("failed to size %s: %w", s.path, err)
	}

	if s.pos >= size {
		return nil
	}

	if _, err := f.Seek(s.pos, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to offset %d: %w", s.pos, err)
	}

	replayed := 0

	for s.pos < size {
		rec, err := logrec.ReadRecord(f)
		if err != nil {
			return fmt.Errorf("failed to replay %s at offset %d: %w", s.path, s.pos, err)
		}

		s.cache[string(rec.Key)] = rec.Value

		// The cursor only ever lands on record boundaries.
		pos, err := f.Seek(0, io.SeekCurrent)
		if err != nil {
			return fmt.Errorf("failed to read offset: %w", err)
		}

		s.pos = pos
		replayed++
	}

	s.opts.logger.Debug("replayed log records",
		zap.Int("records", replayed),
		zap.Int64("pos", s.pos))

	return nil
}

// appendRecord writes rec at the end of the log. Callers hold an exclusive
// lock on f.
func appendRecord(f *os.File, rec kv.KeyValue) error {
	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("failed to seek to end: %w", err)
	}

	if err := logrec.WriteRecord(f, rec); err != nil {
		return fmt.Errorf("failed to append record: %w", err)
	}

	return nil
}

// parseCounter interprets a cached value as a decimal counter. An absent or
// non-numeric value counts from zero so the first Add on a key behaves like
// an increment of a fresh counter.
func parseCounter(value []byte) int64 {
	i, err := strconv.ParseInt(string(value), 10, 64)
	if err != nil {
		return 0
	}

	return i
}

// sleep waits one poll interval or until ctx is canceled.
func sleep(ctx context.Context, interval time.Duration) error {
	timer := time.NewTimer(interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
