package filekv

import (
	"errors"
	"fmt"
	"time"
)

// ErrWaitTimeout is matched (via errors.Is) by every WaitTimeoutError.
var ErrWaitTimeout = errors.New("wait timeout")

// WaitTimeoutError is returned by Wait when the deadline elapses before all
// requested keys have been observed. It is distinct from I/O failures: the
// store itself is healthy, the data simply never arrived.
type WaitTimeoutError struct {
	Keys    [][]byte
	Timeout time.Duration
}

// Error returns a string representation of the timeout error.
func (e WaitTimeoutError) Error() string {
	return fmt.Sprintf("wait timeout after %s waiting for %d key(s)", e.Timeout, len(e.Keys))
}

// Is reports whether target is ErrWaitTimeout.
func (e WaitTimeoutError) Is(target error) bool {
	return target == ErrWaitTimeout
}
