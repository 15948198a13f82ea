package rendezvous_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filekv/go-filekv"
	"github.com/filekv/go-filekv/driver/file"
	"github.com/filekv/go-filekv/driver/mem"
	"github.com/filekv/go-filekv/internal/mocks"
	"github.com/filekv/go-filekv/rendezvous"
)

func TestNewGroup_Validation(t *testing.T) {
	t.Parallel()

	store := mem.New()

	tests := []struct {
		name      string
		groupName string
		size      int
		wantErr   error
	}{
		{name: "empty name", groupName: "", size: 2, wantErr: rendezvous.ErrInvalidName},
		{name: "slash in name", groupName: "a/b", size: 2, wantErr: rendezvous.ErrInvalidName},
		{name: "zero size", groupName: "workers", size: 0, wantErr: rendezvous.ErrInvalidSize},
		{name: "negative size", groupName: "workers", size: -1, wantErr: rendezvous.ErrInvalidSize},
		{name: "valid", groupName: "workers", size: 2, wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g, err := rendezvous.NewGroup(store, tt.groupName, tt.size)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.size, g.Size())
		})
	}
}

func TestGroup_Join_InvalidRank(t *testing.T) {
	t.Parallel()

	g, err := rendezvous.NewGroup(mem.New(), "workers", 2)
	require.NoError(t, err)

	_, err = g.Join(context.Background(), 2, []byte("late"))
	assert.ErrorIs(t, err, rendezvous.ErrInvalidRank)

	_, err = g.Join(context.Background(), -1, []byte("early"))
	assert.ErrorIs(t, err, rendezvous.ErrInvalidRank)
}

func TestGroup_Join_Memory(t *testing.T) {
	t.Parallel()

	const size = 4

	ctx := context.Background()
	store := mem.New()

	var wg sync.WaitGroup

	results := make([][][]byte, size)

	for rank := range size {
		wg.Add(1)

		go func() {
			defer wg.Done()

			g, err := rendezvous.NewGroup(store, "workers", size)
			require.NoError(t, err)

			payloads, err := g.Join(ctx, rank, fmt.Appendf(nil, "endpoint-%d", rank))
			assert.NoError(t, err)

			results[rank] = payloads
		}()
	}

	wg.Wait()

	for rank := range size {
		require.Len(t, results[rank], size)

		for peer := range size {
			assert.Equal(t, fmt.Sprintf("endpoint-%d", peer), string(results[rank][peer]))
		}
	}

	g, err := rendezvous.NewGroup(store, "workers", size)
	require.NoError(t, err)

	arrived, err := g.Arrived(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(size), arrived)
}

func TestGroup_Join_File(t *testing.T) {
	t.Parallel()

	const size = 2

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "rendezvous.log")

	var wg sync.WaitGroup

	for rank := range size {
		wg.Add(1)

		// Each participant opens its own instance, as separate processes would.
		go func() {
			defer wg.Done()

			store := file.New(path, file.WithPollInterval(time.Millisecond))

			g, err := rendezvous.NewGroup(store, "workers", size,
				rendezvous.WithTimeout(10*time.Second))
			require.NoError(t, err)

			payloads, err := g.Join(ctx, rank, fmt.Appendf(nil, "endpoint-%d", rank))
			assert.NoError(t, err)
			assert.Len(t, payloads, size)
		}()
	}

	wg.Wait()
}

func TestGroup_Join_PublishFails(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("disk gone")

	store := mocks.NewStoreMock(t)
	store.SetMock.Return(errBoom)

	g, err := rendezvous.NewGroup(store, "workers", 2)
	require.NoError(t, err)

	_, err = g.Join(context.Background(), 0, []byte("payload"))
	assert.ErrorIs(t, err, errBoom)
}

func TestGroup_Join_TimeoutPropagates(t *testing.T) {
	t.Parallel()

	const timeout = 50 * time.Millisecond

	store := mocks.NewStoreMock(t)
	store.SetMock.Return(nil)
	store.AddMock.Return(1, nil)
	store.WaitMock.Return(filekv.WaitTimeoutError{Timeout: timeout})

	g, err := rendezvous.NewGroup(store, "workers", 2, rendezvous.WithTimeout(timeout))
	require.NoError(t, err)

	_, err = g.Join(context.Background(), 0, []byte("payload"))
	assert.ErrorIs(t, err, filekv.ErrWaitTimeout)
}
