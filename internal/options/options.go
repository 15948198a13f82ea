// Package options implements the functional option plumbing shared by the
// storage backends.
package options

// Constructor builds the default value of an option struct.
type Constructor[T any] func() T

// Callback mutates an option struct in place.
type Callback[T any] func(*T)

// Apply builds an option struct: defaults from the constructor (zero value
// if nil), then every callback in order.
func Apply[T any](constructor Constructor[T], cbs []Callback[T]) T {
	var opts T

	if constructor != nil {
		opts = constructor()
	}

	for _, cb := range cbs {
		cb(&opts)
	}

	return opts
}
