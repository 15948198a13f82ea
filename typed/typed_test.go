package typed_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filekv/go-filekv"
	"github.com/filekv/go-filekv/driver/mem"
	"github.com/filekv/go-filekv/marshaller"
	"github.com/filekv/go-filekv/typed"
)

type endpoint struct {
	Host string
	Port int
	Rank int
}

func TestStore_SetGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := typed.New(mem.New(), marshaller.NewTypedMsgpackMarshaller[endpoint]())

	want := endpoint{Host: "10.0.0.1", Port: 29500, Rank: 0}

	require.NoError(t, store.Set(ctx, []byte("rank/0"), want))

	got, err := store.Get(ctx, []byte("rank/0"))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_Yaml(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	base := mem.New()
	store := typed.New(base, marshaller.NewTypedYamlMarshaller[endpoint]())

	want := endpoint{Host: "10.0.0.2", Port: 29501, Rank: 1}

	require.NoError(t, store.Set(ctx, []byte("rank/1"), want))

	// The stored bytes are plain YAML, inspectable on the base store.
	raw, err := base.Get(ctx, []byte("rank/1"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "host: 10.0.0.2")

	got, err := store.Get(ctx, []byte("rank/1"))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_Get_UnmarshalError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	base := mem.New()
	store := typed.New(base, marshaller.NewTypedMsgpackMarshaller[endpoint]())

	require.NoError(t, base.Set(ctx, []byte("rank/0"), []byte("\xc1not msgpack")))

	_, err := store.Get(ctx, []byte("rank/0"))
	require.Error(t, err)

	var unmarshalErr marshaller.UnmarshalError

	assert.ErrorAs(t, err, &unmarshalErr)
}

func TestStore_CheckWait(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := typed.New(mem.New(), marshaller.NewTypedMsgpackMarshaller[endpoint]())

	ok, err := store.Check(ctx, [][]byte{[]byte("rank/0")})
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, []byte("rank/0"), endpoint{Rank: 0}))

	require.NoError(t, store.Wait(ctx, [][]byte{[]byte("rank/0")}, time.Second))

	err = store.Wait(ctx, [][]byte{[]byte("rank/1")}, 20*time.Millisecond)
	assert.ErrorIs(t, err, filekv.ErrWaitTimeout)
}
