// Package kv provides key-value data structures shared by the storage
// backends and the log codec.
package kv

// KeyValue represents a single key-value record.
// Records are immutable once written to a backend.
type KeyValue struct {
	// Key is the raw key bytes.
	Key []byte
	// Value is the raw value bytes.
	Value []byte
}
