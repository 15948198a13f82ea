// Package mem implements the coordination store contract in process memory.
//
// It carries no cross-process guarantees; it exists as a fast backend for
// tests and for callers whose participants all live in one process. Blocked
// reads are woken by a broadcast instead of polling.
package mem

import (
	"bytes"
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/filekv/go-filekv"
)

// Store is an in-memory implementation of the filekv.Store contract.
// It is safe for concurrent use from any number of goroutines.
type Store struct {
	mu      sync.Mutex
	data    map[string][]byte
	updated chan struct{} // closed and replaced on every mutation
}

var _ filekv.Store = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		data:    make(map[string][]byte),
		updated: make(chan struct{}),
	}
}

// Set implements the filekv.Store interface.
func (s *Store) Set(_ context.Context, key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[string(key)] = bytes.Clone(value)
	s.broadcastLocked()

	return nil
}

// Get implements the filekv.Store interface. It blocks until the key is set;
// cancel ctx to abandon the wait.
func (s *Store) Get(ctx context.Context, key []byte) ([]byte, error) {
	for {
		s.mu.Lock()
		value, ok := s.data[string(key)]
		updated := s.updated
		s.mu.Unlock()

		if ok {
			return bytes.Clone(value), nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-updated:
		}
	}
}

// Add implements the filekv.Store interface. An absent or non-numeric value
// counts from zero, matching the file backend.
func (s *Store) Add(_ context.Context, key []byte, delta int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, _ := strconv.ParseInt(string(s.data[string(key)]), 10, 64)
	next := current + delta

	s.data[string(key)] = []byte(strconv.FormatInt(next, 10))
	s.broadcastLocked()

	return next, nil
}

// Check implements the filekv.Store interface.
func (s *Store) Check(_ context.Context, keys [][]byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.checkLocked(keys), nil
}

// Wait implements the filekv.Store interface.
func (s *Store) Wait(ctx context.Context, keys [][]byte, timeout time.Duration) error {
	var expired <-chan time.Time

	if timeout != filekv.NoTimeout {
		timer := time.NewTimer(timeout)
		defer timer.Stop()

		expired = timer.C
	}

	for {
		s.mu.Lock()
		done := s.checkLocked(keys)
		updated := s.updated
		s.mu.Unlock()

		if done {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-expired:
			return filekv.WaitTimeoutError{Keys: keys, Timeout: timeout}
		case <-updated:
		}
	}
}

func (s *Store) checkLocked(keys [][]byte) bool {
	for _, key := range keys {
		if _, ok := s.data[string(key)]; !ok {
			return false
		}
	}

	return true
}

// broadcastLocked wakes every blocked Get and Wait. Callers hold s.mu.
func (s *Store) broadcastLocked() {
	close(s.updated)
	s.updated = make(chan struct{})
}
