// Package zero provides the zero value of a generic type parameter.
package zero

// Value returns the zero value for type T. Stores return it alongside
// found=false when a key is missing.
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}
