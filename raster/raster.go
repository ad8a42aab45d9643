// Package raster holds interleaved multi-channel sample data and decodes it from
// image files.
//
// Samples are stored row-major with the channels of one pixel adjacent, the
// layout of a canvas ImageData buffer:
//
//	r0 g0 b0 a0 r1 g1 b1 a1 ...
package raster

import (
	"errors"
	"fmt"

	"github.com/TradeIdeasPhilip/entropic-qoi/internal/hash"
)

// ErrInvalidGeometry is returned when a buffer does not hold a whole number of
// rows for the given width and channel count.
var ErrInvalidGeometry = errors.New("invalid raster geometry")

// Raster is an immutable interleaved sample buffer.
type Raster struct {
	pix      []byte
	width    int
	channels int
}

// New wraps pix as a raster of the given width and channel count.
//
// pix is not copied and must not be modified afterwards.
func New(pix []byte, width, channels int) (*Raster, error) {
	if width <= 0 || channels <= 0 {
		return nil, fmt.Errorf("%w: width %d, channels %d", ErrInvalidGeometry, width, channels)
	}
	if len(pix)%(width*channels) != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d×%d",
			ErrInvalidGeometry, len(pix), width, channels)
	}

	return &Raster{pix: pix, width: width, channels: channels}, nil
}

// Width returns the number of pixels per row.
func (r *Raster) Width() int { return r.width }

// Height returns the number of rows.
func (r *Raster) Height() int { return len(r.pix) / (r.width * r.channels) }

// Channels returns the number of interleaved channels.
func (r *Raster) Channels() int { return r.channels }

// Samples returns the number of samples in one channel.
func (r *Raster) Samples() int { return len(r.pix) / r.channels }

// Size returns the uncompressed size in bytes.
func (r *Raster) Size() int { return len(r.pix) }

// Bytes returns the interleaved buffer. It must not be modified.
func (r *Raster) Bytes() []byte { return r.pix }

// Plane copies channel's samples in raster order into dst, which must hold at
// least Samples() bytes, and returns dst[:Samples()].
func (r *Raster) Plane(channel int, dst []byte) []byte {
	n := r.Samples()
	dst = dst[:n]
	for i, j := 0, channel; i < n; i, j = i+1, j+r.channels {
		dst[i] = r.pix[j]
	}

	return dst
}

// Fingerprint returns an xxHash64 of the samples and geometry.
func (r *Raster) Fingerprint() uint64 {
	return hash.Raster(r.pix, r.width, r.channels)
}

// ChannelNames returns display names for the channels of a raster with the
// given channel count.
func ChannelNames(channels int) []string {
	switch channels {
	case 1:
		return []string{"gray"}
	case 2:
		return []string{"gray", "alpha"}
	case 3:
		return []string{"red", "green", "blue"}
	case 4:
		return []string{"red", "green", "blue", "alpha"}
	}
	names := make([]string, channels)
	for i := range names {
		names[i] = fmt.Sprintf("channel %d", i)
	}

	return names
}
