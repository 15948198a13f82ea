// Package logrec encodes and decodes the append-only log record format used
// by the file-backed store.
//
// The log has no header, footer or record count; it is a plain sequence of
// records, and end-of-file is the only terminator:
//
//	File   := Record*
//	Record := KeyStr ValueStr
//	Str    := uint32(length) byte[length]
//
// A file that ends in the middle of a record is corrupt, never "empty".
package logrec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/filekv/go-filekv/kv"
)

// ErrTruncated is returned when the log ends mid-record: a length prefix
// without enough trailing bytes, or a key without its value.
var ErrTruncated = errors.New("log truncated mid-record")

// byteOrder is fixed so that readers and writers agree even across
// architectures sharing one filesystem.
var byteOrder = binary.LittleEndian

const lenSize = 4

// WriteRecord appends the encoded (key, value) pair to w.
// A short write is reported as an error by the underlying writer.
func WriteRecord(w io.Writer, rec kv.KeyValue) error {
	if err := writeString(w, rec.Key); err != nil {
		return fmt.Errorf("failed to write key: %w", err)
	}

	if err := writeString(w, rec.Value); err != nil {
		return fmt.Errorf("failed to write value: %w", err)
	}

	return nil
}

// ReadRecord decodes the next (key, value) pair from r.
// It returns io.EOF only on a clean record boundary; a record cut short
// produces an error wrapping ErrTruncated.
func ReadRecord(r io.Reader) (kv.KeyValue, error) {
	key, err := readString(r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return kv.KeyValue{}, io.EOF
		}

		return kv.KeyValue{}, fmt.Errorf("failed to read key: %w", err)
	}

	value, err := readString(r)
	if err != nil {
		// EOF between the key and its value is not a record boundary.
		if errors.Is(err, io.EOF) {
			err = ErrTruncated
		}

		return kv.KeyValue{}, fmt.Errorf("failed to read value: %w", err)
	}

	return kv.KeyValue{Key: key, Value: value}, nil
}

func writeString(w io.Writer, b []byte) error {
	var lenBuf [lenSize]byte

	byteOrder.PutUint32(lenBuf[:], uint32(len(b)))

	if _, err := w.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("failed to write length prefix: %w", err)
	}

	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("failed to write %d bytes: %w", len(b), err)
	}

	return nil
}

func readString(r io.Reader) ([]byte, error) {
	var lenBuf [lenSize]byte

	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrTruncated
		}

		return nil, err
	}

	buf := make([]byte, byteOrder.Uint32(lenBuf[:]))
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrTruncated
		}

		return nil, err
	}

	return buf, nil
}
