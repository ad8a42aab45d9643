// Package hash fingerprints rasters with xxHash64.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Raster fingerprints interleaved pixel data together with its geometry, so that
// identical bytes laid out with a different width or channel count differ.
func Raster(pix []byte, width, channels int) uint64 {
	d := xxhash.New()
	var header [16]byte
	binary.LittleEndian.PutUint64(header[:8], uint64(width))
	binary.LittleEndian.PutUint64(header[8:], uint64(channels))
	_, _ = d.Write(header[:])
	_, _ = d.Write(pix)

	return d.Sum64()
}
