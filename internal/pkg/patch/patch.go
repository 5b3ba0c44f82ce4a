// Package patch helps with optional request fields.
package patch

// Coalesce dereferences ptr, or yields fallback when the field was omitted.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Ptr sets an optional field explicitly.
func Ptr[T any](v T) *T {
	return &v
}
