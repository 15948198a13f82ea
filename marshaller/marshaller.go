// Package marshaller defines the value serialization used by typed wrappers
// over the byte-oriented store contract. The store itself only ever moves
// raw byte strings; marshalling is strictly a caller-side concern.
package marshaller

// Marshaller serializes arbitrary values; implement once per format.
type Marshaller interface {
	Marshal(data any) ([]byte, error)
	Unmarshal(data []byte, out any) error
}

// TypedMarshaller is a generic interface for typed marshalling operations.
type TypedMarshaller[T any] interface {
	Marshal(data T) ([]byte, error)
	Unmarshal(data []byte) (T, error)
}

func zero[T any]() T {
	var out T

	return out
}
