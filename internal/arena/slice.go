package arena

import "unsafe"

// Make allocates a slice of n zeroed T values from a, the analogue of
// the C source's aven_arena_create_array(t, arena, n) macro. This is the
// one place in the module that reaches for unsafe, mirroring how the
// arena is the one place the original C does raw pointer arithmetic.
func Make[T any](a *Arena, n int) []T {
	if n == 0 {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	align := int(unsafe.Alignof(zero))
	buf := a.Alloc(size*n, align)
	return unsafe.Slice((*T)(unsafe.Pointer(&buf[0])), n)
}

// MakeOne allocates a single zeroed T from a.
func MakeOne[T any](a *Arena) *T {
	s := Make[T](a, 1)
	return &s[0]
}
