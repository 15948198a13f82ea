package mem_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filekv/go-filekv"
	"github.com/filekv/go-filekv/driver/mem"
)

func TestStore_SetGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := mem.New()

	require.NoError(t, store.Set(ctx, []byte("key"), []byte("v1")))
	require.NoError(t, store.Set(ctx, []byte("key"), []byte("v2")))

	value, err := store.Get(ctx, []byte("key"))
	require.NoError(t, err)
	assert.Equal(t, "v2", string(value))
}

func TestStore_Get_BlocksUntilSet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := mem.New()

	got := make(chan []byte, 1)

	go func() {
		value, err := store.Get(ctx, []byte("key"))
		assert.NoError(t, err)
		got <- value
	}()

	time.Sleep(20 * time.Millisecond)

	select {
	case <-got:
		t.Fatal("get returned before the key was set")
	default:
	}

	require.NoError(t, store.Set(ctx, []byte("key"), []byte("value")))

	select {
	case value := <-got:
		assert.Equal(t, "value", string(value))
	case <-time.After(5 * time.Second):
		t.Fatal("get did not unblock after set")
	}
}

func TestStore_Get_ContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	store := mem.New()

	done := make(chan error, 1)

	go func() {
		_, err := store.Get(ctx, []byte("never-set"))
		done <- err
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("get did not observe cancellation")
	}
}

func TestStore_Add(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := mem.New()

	n, err := store.Add(ctx, []byte("counter"), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	require.NoError(t, store.Set(ctx, []byte("other"), []byte("not a number")))

	n, err = store.Add(ctx, []byte("other"), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n, "non-numeric values count from zero")
}

func TestStore_Add_Hammer(t *testing.T) {
	t.Parallel()

	const (
		workers    = 4
		iterations = 100
	)

	ctx := context.Background()
	store := mem.New()

	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range iterations {
				_, err := store.Add(ctx, []byte("counter"), 1)
				assert.NoError(t, err)
			}
		}()
	}

	wg.Wait()

	value, err := store.Get(ctx, []byte("counter"))
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprint(workers*iterations), string(value))
}

func TestStore_Check(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := mem.New()

	ok, err := store.Check(ctx, [][]byte{[]byte("key")})
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, []byte("key"), []byte("value")))

	ok, err = store.Check(ctx, [][]byte{[]byte("key")})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Check(ctx, nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStore_Wait(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := mem.New()

	unblocked := make(chan error, 1)

	go func() {
		unblocked <- store.Wait(ctx, [][]byte{[]byte("a"), []byte("b")}, filekv.NoTimeout)
	}()

	require.NoError(t, store.Set(ctx, []byte("a"), []byte("1")))

	time.Sleep(20 * time.Millisecond)

	select {
	case err := <-unblocked:
		t.Fatalf("wait returned with one key still missing: %v", err)
	default:
	}

	require.NoError(t, store.Set(ctx, []byte("b"), []byte("2")))

	select {
	case err := <-unblocked:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("wait did not unblock")
	}
}

func TestStore_Wait_Timeout(t *testing.T) {
	t.Parallel()

	const timeout = 100 * time.Millisecond

	ctx := context.Background()
	store := mem.New()

	start := time.Now()
	err := store.Wait(ctx, [][]byte{[]byte("missing")}, timeout)

	require.Error(t, err)
	assert.ErrorIs(t, err, filekv.ErrWaitTimeout)
	assert.GreaterOrEqual(t, time.Since(start), timeout)
}

func TestStore_ValueIsolation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := mem.New()

	value := []byte("original")
	require.NoError(t, store.Set(ctx, []byte("key"), value))

	value[0] = 'X'

	got, err := store.Get(ctx, []byte("key"))
	require.NoError(t, err)
	assert.Equal(t, "original", string(got), "stored values must not alias caller buffers")

	got[0] = 'Y'

	again, err := store.Get(ctx, []byte("key"))
	require.NoError(t, err)
	assert.Equal(t, "original", string(again))
}
