// Package ptr provides helper functions for working with pointers to primitive types.
package ptr

// Deref returns the value s points to, or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
