// Package rendezvous implements the barrier pattern the store exists for:
// every participant publishes a small payload under its rank, then blocks
// until all ranks have done the same, and leaves with everyone's payloads.
//
// It only uses the store contract, so any backend works: the file backend
// for independent processes sharing a filesystem, the memory backend for
// participants in one process.
package rendezvous

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/filekv/go-filekv"
)

var (
	// ErrInvalidName is returned for group names the key scheme cannot hold.
	ErrInvalidName = errors.New("invalid group name")
	// ErrInvalidSize is returned for non-positive group sizes.
	ErrInvalidSize = errors.New("group size must be positive")
	// ErrInvalidRank is returned when a rank is outside [0, size).
	ErrInvalidRank = errors.New("rank out of range")
)

// Group is a named barrier over a store, joined by exactly size participants.
type Group struct {
	store   filekv.Store
	name    string
	size    int
	timeout time.Duration
}

// Option is a function that configures a Group.
type Option func(*Group)

// WithTimeout bounds how long Join waits for the stragglers. The default is
// filekv.DefaultTimeout; pass filekv.NoTimeout to wait forever.
func WithTimeout(timeout time.Duration) Option {
	return func(g *Group) {
		g.timeout = timeout
	}
}

// NewGroup creates a barrier group of the given name and size over store.
// Names must be non-empty and must not contain '/', which separates the
// segments of the keys the group claims under "<name>/".
func NewGroup(store filekv.Store, name string, size int, opts ...Option) (*Group, error) {
	if name == "" || strings.Contains(name, "/") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	g := &Group{
		store:   store,
		name:    name,
		size:    size,
		timeout: filekv.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Join publishes payload under rank, waits until every rank of the group has
// published, and returns all payloads indexed by rank. Joining the same rank
// twice is allowed; the latest payload wins.
func (g *Group) Join(ctx context.Context, rank int, payload []byte) ([][]byte, error) {
	if rank < 0 || rank >= g.size {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidRank, rank, g.size)
	}

	if err := g.store.Set(ctx, g.rankKey(rank), payload); err != nil {
		return nil, fmt.Errorf("failed to publish rank %d: %w", rank, err)
	}

	// Arrival accounting; lets stragglers and observers see progress.
	if _, err := g.store.Add(ctx, g.arrivedKey(), 1); err != nil {
		return nil, fmt.Errorf("failed to count arrival of rank %d: %w", rank, err)
	}

	keys := make([][]byte, 0, g.size)
	for r := range g.size {
		keys = append(keys, g.rankKey(r))
	}

	if err := g.store.Wait(ctx, keys, g.timeout); err != nil {
		return nil, fmt.Errorf("failed to assemble group %q: %w", g.name, err)
	}

	payloads := make([][]byte, g.size)

	for r := range g.size {
		value, err := g.store.Get(ctx, keys[r])
		if err != nil {
			return nil, fmt.Errorf("failed to collect rank %d: %w", r, err)
		}

		payloads[r] = value
	}

	return payloads, nil
}

// Arrived reports how many Join calls have reached the barrier so far.
func (g *Group) Arrived(ctx context.Context) (int64, error) {
	n, err := g.store.Add(ctx, g.arrivedKey(), 0)
	if err != nil {
		return 0, fmt.Errorf("failed to read arrivals: %w", err)
	}

	return n, nil
}

// Size returns the number of participants the group waits for.
func (g *Group) Size() int {
	return g.size
}

func (g *Group) rankKey(rank int) []byte {
	return fmt.Appendf(nil, "%s/rank/%d", g.name, rank)
}

func (g *Group) arrivedKey() []byte {
	return []byte(g.name + "/arrived")
}
