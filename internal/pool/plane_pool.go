// Package pool provides pooled scratch buffers for channel passes.
package pool

import "sync"

// planePool holds de-interleaved channel planes between passes.
var planePool = sync.Pool{
	New: func() any { return &[]byte{} },
}

// GetPlane retrieves and resizes a byte slice from the pool.
//
// The returned slice has length size; its contents are unspecified. The caller
// must call the returned cleanup function, typically with defer, once the plane
// is no longer referenced.
//
// Example:
//
//	plane, cleanup := pool.GetPlane(width * height)
//	defer cleanup()
func GetPlane(size int) ([]byte, func()) {
	ptr, _ := planePool.Get().(*[]byte)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]byte, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { planePool.Put(ptr) }
}
