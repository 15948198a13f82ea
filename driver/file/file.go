package file

import (
	"errors"
	"io"
	"os"
	"syscall"
)

// open retries the open syscall when it is interrupted by a signal.
// Everything else, including a missing file, is returned to the caller.
func open(path string, flag int, mode os.FileMode) (*os.File, error) {
	for {
		f, err := os.OpenFile(path, flag, mode)
		if err != nil && errors.Is(err, syscall.EINTR) {
			continue
		}

		return f, err
	}
}

// fileSize reports the size of f without disturbing its offset.
func fileSize(f *os.File) (int64, error) {
	pos, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}

	if _, err := f.Seek(pos, io.SeekStart); err != nil {
		return 0, err
	}

	return size, nil
}
