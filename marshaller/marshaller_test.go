package marshaller_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filekv/go-filekv/marshaller"
)

type payload struct {
	Name  string
	Count int
	Tags  []string
}

func TestTypedMsgpackMarshaller_RoundTrip(t *testing.T) {
	t.Parallel()

	m := marshaller.NewTypedMsgpackMarshaller[payload]()

	want := payload{Name: "worker", Count: 3, Tags: []string{"a", "b"}}

	data, err := m.Marshal(want)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	got, err := m.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTypedMsgpackMarshaller_UnmarshalError(t *testing.T) {
	t.Parallel()

	m := marshaller.NewTypedMsgpackMarshaller[payload]()

	_, err := m.Unmarshal([]byte("\xc1garbage"))
	require.Error(t, err)

	var unmarshalErr marshaller.UnmarshalError

	assert.ErrorAs(t, err, &unmarshalErr)
}

func TestTypedYamlMarshaller_RoundTrip(t *testing.T) {
	t.Parallel()

	m := marshaller.NewTypedYamlMarshaller[payload]()

	want := payload{Name: "worker", Count: 3, Tags: []string{"a", "b"}}

	data, err := m.Marshal(want)
	require.NoError(t, err)

	got, err := m.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTypedYamlMarshaller_UnmarshalError(t *testing.T) {
	t.Parallel()

	m := marshaller.NewTypedYamlMarshaller[payload]()

	_, err := m.Unmarshal([]byte("\t: not yaml"))
	require.Error(t, err)

	var unmarshalErr marshaller.UnmarshalError

	assert.ErrorAs(t, err, &unmarshalErr)
}
