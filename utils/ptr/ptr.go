// Package ptr contains helpers for working with pointers to values.
package ptr

// To returns a pointer to v.
func To[T any](v T) *T {
	return &v
}

// Deref returns the value p points to, or the zero value if p is nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
