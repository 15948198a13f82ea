//go:build !windows

// Package flock provides scoped advisory whole-file locks over flock(2).
//
// flock is preferred over fcntl byte-range locks here: the store always
// locks whole files, and flock locks belong to the open file description
// rather than the process, so independent handles within one process still
// exclude each other correctly.
package flock

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Mode selects reader/writer semantics for a lock: any number of concurrent
// Shared holders, at most one Exclusive holder, Exclusive excludes Shared.
type Mode int

const (
	// Shared is a read lock.
	Shared Mode = unix.LOCK_SH
	// Exclusive is a write lock.
	Exclusive Mode = unix.LOCK_EX
)

func (m Mode) String() string {
	switch m {
	case Shared:
		return "shared"
	case Exclusive:
		return "exclusive"
	default:
		return "unknown"
	}
}

// Lock is a held advisory lock. Release it with Release; a Lock is not
// released by garbage collection.
type Lock struct {
	f *os.File
}

// Acquire blocks until the advisory lock on f is granted. Interrupted
// syscalls are retried transparently; any other failure is returned.
//
// The lock is advisory: only processes that also acquire it are excluded.
func Acquire(f *os.File, mode Mode) (*Lock, error) {
	if err := flock(int(f.Fd()), int(mode)); err != nil {
		return nil, fmt.Errorf("failed to acquire %s lock on %s: %w", mode, f.Name(), err)
	}

	return &Lock{f: f}, nil
}

// Release drops the lock. Releasing an already released lock is a no-op.
// Closing the underlying file also drops the lock, so Release never fails
// in a way the caller could act on; errors are discarded.
func (l *Lock) Release() {
	if l.f == nil {
		return
	}

	_ = flock(int(l.f.Fd()), unix.LOCK_UN)
	l.f = nil
}

// flock retries flock(2) while the syscall is interrupted by a signal.
func flock(fd, how int) error {
	for {
		err := unix.Flock(fd, how)
		if !errors.Is(err, unix.EINTR) {
			return err
		}
	}
}
