// Package entropic estimates how compactly an ideal entropy coder could store a
// raster image under several predictive transforms.
//
// Every channel is fed through one pass that counts raw samples, first
// differences, 2D double differences, zero-difference run lengths and the
// move-to-front ranks of each. The Shannon cost of each frequency map, rounded to
// whole 32-bit blocks plus a fixed header, is the estimate for that strategy.
//
// # Basic Usage
//
//	res, err := entropic.AnalyzeFile("photo.png", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Report.Best(), res.Report.Total(res.Report.Best()))
//
// By default the estimates are compared against the size of the source file.
// Use stats.WithReferenceCodec to compare against a general-purpose compressor
// run over the raw samples instead.
//
// # Package Structure
//
// This package wraps the decode and analyze steps for the common cases. The
// building blocks live in their own packages:
//
//   - histogram: frequency maps over a fixed symbol domain
//   - entropy: the cost model
//   - mtf: move-to-front rank lists
//   - accumulator: the single-channel statistics pass
//   - raster, stats, report: decoding, whole-image aggregation and output
package entropic

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/TradeIdeasPhilip/entropic-qoi/raster"
	"github.com/TradeIdeasPhilip/entropic-qoi/stats"
)

// Result is the outcome of AnalyzeFile.
type Result struct {
	// Format is the decoder name reported by the image package, e.g. "png".
	Format string
	Report *stats.Report
}

// AnalyzeFile decodes the image at path and analyzes it.
//
// The reference size defaults to the file's size on disk, labelled with the
// upper-cased format name. Any reference option in opts replaces it.
func AnalyzeFile(path string, decodeOpts []raster.DecodeOption, opts ...stats.Option) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	r, format, err := raster.Decode(f, decodeOpts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	all := make([]stats.Option, 0, len(opts)+1)
	all = append(all, stats.WithReferenceSize(info.Size(), strings.ToUpper(format)))
	all = append(all, opts...)

	rep, err := stats.Analyze(r, all...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &Result{Format: format, Report: rep}, nil
}

// AnalyzeImage analyzes an already decoded image using the given channel layout
// (1 gray, 2 gray+alpha, 3 RGB, 4 RGBA).
func AnalyzeImage(img image.Image, channels int, opts ...stats.Option) (*stats.Report, error) {
	r, err := raster.FromImage(img, channels)
	if err != nil {
		return nil, err
	}

	return stats.Analyze(r, opts...)
}

// AnalyzeSamples analyzes interleaved 8-bit samples laid out row by row.
func AnalyzeSamples(pix []byte, width, channels int, opts ...stats.Option) (*stats.Report, error) {
	r, err := raster.New(pix, width, channels)
	if err != nil {
		return nil, err
	}

	return stats.Analyze(r, opts...)
}
