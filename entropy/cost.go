// Package entropy estimates how many bytes a zero-order entropy coder would need
// for a symbol frequency distribution.
//
// The estimate assumes each symbol costs -log2(p) bits where p is its observed
// relative frequency. The bit total is converted to bytes, rounded up to whole
// 4-byte blocks and charged a fixed 8-byte header, so every result r satisfies
// r >= 8 and (r-8)%4 == 0.
package entropy

import (
	"math"

	"github.com/TradeIdeasPhilip/entropic-qoi/histogram"
)

const (
	// HeaderBytes is the fixed framing overhead added to every estimate.
	HeaderBytes = 8
	// BlockBytes is the output alignment of an estimate.
	BlockBytes = 4
)

// CostInBits returns the ideal code length in bits of a symbol with probability p.
//
// p must be in (0, 1].
func CostInBits(p float64) float64 {
	return -math.Log2(p)
}

// BitsToBytes converts a bit count to an estimated encoded size in bytes,
// including block alignment and the fixed header.
func BitsToBytes(bits float64) int {
	bytes := bits / 8
	blocks := math.Ceil(bytes / BlockBytes)

	return int(blocks)*BlockBytes + HeaderBytes
}

// CostFromMap returns the estimated encoded size in bytes of the observations in m.
func CostFromMap(m *histogram.Map) int {
	return BitsToBytes(Bits(m))
}

// Bits returns the zero-order entropy of the observations in m, in bits.
// Symbols with a zero count contribute nothing.
func Bits(m *histogram.Map) float64 {
	total := m.Total()
	if total == 0 {
		return 0
	}
	bits := 0.0
	for _, c := range m.All() {
		bits += symbolBits(c, total)
	}

	return bits
}

// CostFromCounts is CostFromMap for a bare count table.
func CostFromCounts(counts []int64) int {
	var total int64
	for _, c := range counts {
		total += c
	}
	bits := 0.0
	for _, c := range counts {
		bits += symbolBits(c, total)
	}

	return BitsToBytes(bits)
}

func symbolBits(count, total int64) float64 {
	if count <= 0 {
		return 0
	}
	p := float64(count) / float64(total)

	return float64(count) * CostInBits(p)
}
