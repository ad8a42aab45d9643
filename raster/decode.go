package raster

import (
	"fmt"
	"image"
	"image/draw"
	"io"

	// Registered decoders for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/TradeIdeasPhilip/entropic-qoi/internal/options"
)

// DecodeConfig controls how an image is turned into a raster.
type DecodeConfig struct {
	// Channels selects the sample layout: 1 (gray), 2 (gray+alpha), 3 (RGB)
	// or 4 (RGBA, the default).
	Channels int
}

// DecodeOption is a functional option for Decode.
type DecodeOption = options.Option[*DecodeConfig]

// WithChannels sets the number of channels extracted from the image.
func WithChannels(n int) DecodeOption {
	return options.New(func(cfg *DecodeConfig) error {
		if n < 1 || n > 4 {
			return fmt.Errorf("%w: unsupported channel count %d", ErrInvalidGeometry, n)
		}
		cfg.Channels = n

		return nil
	})
}

// Decode reads an image in any registered format (PNG, GIF, JPEG, BMP, TIFF,
// WebP) and returns its samples along with the format name.
func Decode(rd io.Reader, opts ...DecodeOption) (*Raster, string, error) {
	cfg := &DecodeConfig{Channels: 4}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, "", err
	}

	img, format, err := image.Decode(rd)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	r, err := FromImage(img, cfg.Channels)
	if err != nil {
		return nil, "", err
	}

	return r, format, nil
}

// FromImage converts img to non-premultiplied samples with the given channel count.
func FromImage(img image.Image, channels int) (*Raster, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidGeometry)
	}

	nrgba := toNRGBA(img)

	var pix []byte
	switch channels {
	case 4:
		pix = nrgba.Pix
	case 3:
		pix = pick(nrgba.Pix, 0, 1, 2)
	case 2, 1:
		gray := image.NewGray(nrgba.Bounds())
		draw.Draw(gray, gray.Bounds(), nrgba, image.Point{}, draw.Src)
		if channels == 1 {
			pix = gray.Pix
		} else {
			pix = make([]byte, 0, 2*w*h)
			for i, y := range gray.Pix {
				pix = append(pix, y, nrgba.Pix[4*i+3])
			}
		}
	default:
		return nil, fmt.Errorf("%w: unsupported channel count %d", ErrInvalidGeometry, channels)
	}

	return New(pix, w, channels)
}

// toNRGBA rebases img to the origin with straight alpha. NRGBA sources are
// copied row by row; going through premultiplied color would round low-alpha
// samples.
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if src, ok := img.(*image.NRGBA); ok {
		for y := range b.Dy() {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:(y+1)*dst.Stride], src.Pix[off:off+dst.Stride])
		}

		return dst
	}
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

	return dst
}

// pick extracts the listed byte offsets of every RGBA pixel.
func pick(rgba []byte, offsets ...int) []byte {
	out := make([]byte, 0, len(rgba)/4*len(offsets))
	for i := 0; i < len(rgba); i += 4 {
		for _, o := range offsets {
			out = append(out, rgba[i+o])
		}
	}

	return out
}
