package logrec_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filekv/go-filekv/kv"
	"github.com/filekv/go-filekv/logrec"
)

func TestWriteReadRecord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rec  kv.KeyValue
	}{
		{
			name: "simple pair",
			rec:  kv.KeyValue{Key: []byte("rank/0"), Value: []byte("10.0.0.1:29500")},
		},
		{
			name: "empty value",
			rec:  kv.KeyValue{Key: []byte("barrier"), Value: []byte{}},
		},
		{
			name: "empty key",
			rec:  kv.KeyValue{Key: []byte{}, Value: []byte("value")},
		},
		{
			name: "binary bytes",
			rec:  kv.KeyValue{Key: []byte{0x00, 0xff, 0x10}, Value: []byte{0xde, 0xad, 0xbe, 0xef}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			require.NoError(t, logrec.WriteRecord(&buf, tt.rec))

			got, err := logrec.ReadRecord(&buf)
			require.NoError(t, err)
			assert.Equal(t, tt.rec.Key, got.Key)
			assert.Equal(t, tt.rec.Value, got.Value)
		})
	}
}

func TestReadRecord_Sequence(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	recs := []kv.KeyValue{
		{Key: []byte("a"), Value: []byte("1")},
		{Key: []byte("b"), Value: []byte("2")},
		{Key: []byte("a"), Value: []byte("3")},
	}
	for _, rec := range recs {
		require.NoError(t, logrec.WriteRecord(&buf, rec))
	}

	for _, want := range recs {
		got, err := logrec.ReadRecord(&buf)
		require.NoError(t, err)
		assert.Equal(t, want.Key, got.Key)
		assert.Equal(t, want.Value, got.Value)
	}

	_, err := logrec.ReadRecord(&buf)
	assert.Equal(t, io.EOF, err, "a clean record boundary reads as EOF")
}

func TestReadRecord_Truncated(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, logrec.WriteRecord(&buf, kv.KeyValue{
		Key:   []byte("endpoint"),
		Value: []byte("10.0.0.1:29500"),
	}))

	full := buf.Bytes()

	// Every proper prefix that is not empty and not the full record must
	// decode as corruption, never as "no more records".
	for cut := 1; cut < len(full); cut++ {
		_, err := logrec.ReadRecord(bytes.NewReader(full[:cut]))
		require.Error(t, err, "cut at %d bytes", cut)
		assert.ErrorIs(t, err, logrec.ErrTruncated, "cut at %d bytes", cut)
	}
}

func TestReadRecord_LengthWithoutBody(t *testing.T) {
	t.Parallel()

	// A bare length prefix declaring 100 bytes that never arrive.
	_, err := logrec.ReadRecord(bytes.NewReader([]byte{100, 0, 0, 0}))
	assert.ErrorIs(t, err, logrec.ErrTruncated)
}
