// Package typed layers typed values over the byte-oriented store contract.
//
// The underlying store still only ever sees raw byte strings; this wrapper
// marshals on the way in and unmarshals on the way out, so any backend of
// the contract works unchanged underneath it.
package typed

import (
	"context"
	"fmt"
	"time"

	"github.com/filekv/go-filekv"
	"github.com/filekv/go-filekv/marshaller"
)

// Store provides typed Set/Get over a byte-oriented backend. Add is
// deliberately absent: counters are a byte-contract concern, use the base
// store for them.
type Store[T any] struct {
	base filekv.Store
	m    marshaller.TypedMarshaller[T]
}

// New creates a typed wrapper around base using m for value serialization.
func New[T any](base filekv.Store, m marshaller.TypedMarshaller[T]) *Store[T] {
	return &Store[T]{base: base, m: m}
}

// Set marshals value and publishes it under key.
func (s *Store[T]) Set(ctx context.Context, key []byte, value T) error {
	data, err := s.m.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for %q: %w", key, err)
	}

	if err := s.base.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}

	return nil
}

// Get blocks until key has been observed, then unmarshals its latest value.
func (s *Store[T]) Get(ctx context.Context, key []byte) (T, error) {
	var out T

	data, err := s.base.Get(ctx, key)
	if err != nil {
		return out, fmt.Errorf("failed to get %q: %w", key, err)
	}

	out, err = s.m.Unmarshal(data)
	if err != nil {
		return out, fmt.Errorf("failed to unmarshal value of %q: %w", key, err)
	}

	return out, nil
}

// Check reports whether every key has been observed at least once.
func (s *Store[T]) Check(ctx context.Context, keys [][]byte) (bool, error) {
	return s.base.Check(ctx, keys)
}

// Wait blocks until Check(keys) is true or timeout elapses.
func (s *Store[T]) Wait(ctx context.Context, keys [][]byte, timeout time.Duration) error {
	return s.base.Wait(ctx, keys, timeout)
}
