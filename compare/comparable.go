// Package compare defines equality for key types that cannot rely on ==.
package compare

// Comparable is implemented by key types that decide equality themselves.
// Hash-backed stores call Equals to tell a genuine key match apart from a
// hash collision between two different keys.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals reports whether a and b are equal according to a's Equals method.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}
