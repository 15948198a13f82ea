//go:build !windows

package flock_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filekv/go-filekv/internal/flock"
)

func openTestFile(t *testing.T) (*os.File, *os.File) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "lock.dat")

	first, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	require.NoError(t, err)
	t.Cleanup(func() { first.Close() })

	second, err := os.OpenFile(path, os.O_RDWR, 0o644)
	require.NoError(t, err)
	t.Cleanup(func() { second.Close() })

	return first, second
}

func TestAcquire_SharedAllowsSharers(t *testing.T) {
	t.Parallel()

	first, second := openTestFile(t)

	lock1, err := flock.Acquire(first, flock.Shared)
	require.NoError(t, err)
	defer lock1.Release()

	// A second shared holder on an independent handle must not block.
	done := make(chan struct{})

	go func() {
		defer close(done)

		lock2, err := flock.Acquire(second, flock.Shared)
		assert.NoError(t, err)
		lock2.Release()
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("second shared lock did not get granted")
	}
}

func TestAcquire_ExclusiveExcludes(t *testing.T) {
	t.Parallel()

	first, second := openTestFile(t)

	lock1, err := flock.Acquire(first, flock.Exclusive)
	require.NoError(t, err)

	acquired := make(chan time.Time, 1)

	go func() {
		lock2, err := flock.Acquire(second, flock.Shared)
		assert.NoError(t, err)

		acquired <- time.Now()

		lock2.Release()
	}()

	const holdFor = 100 * time.Millisecond

	releasedAt := time.Now().Add(holdFor)
	time.Sleep(holdFor)
	lock1.Release()

	select {
	case grantedAt := <-acquired:
		assert.False(t, grantedAt.Before(releasedAt.Add(-10*time.Millisecond)),
			"shared lock was granted while the exclusive lock was held")
	case <-time.After(5 * time.Second):
		t.Fatal("shared lock was never granted after release")
	}
}

func TestRelease_Idempotent(t *testing.T) {
	t.Parallel()

	first, _ := openTestFile(t)

	lock, err := flock.Acquire(first, flock.Exclusive)
	require.NoError(t, err)

	lock.Release()
	lock.Release()
}

func TestMode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "shared", flock.Shared.String())
	assert.Equal(t, "exclusive", flock.Exclusive.String())
	assert.Equal(t, "unknown", flock.Mode(0).String())
}
