// Package compress measures real general-purpose compressors against the
// entropy estimates.
//
// The estimates produced by the stats package are only meaningful next to a
// reference: the size of the source file, or the size a production compressor
// achieves on the same raw samples. This package wraps the latter:
//   - None: the raw size, useful as a baseline
//   - Zstd: klauspost/compress zstd (or valyala/gozstd when built with the
//     gozstd tag and cgo enabled)
//   - S2: klauspost/compress s2 block format
//   - LZ4: pierrec/lz4 block format
//
// Example:
//
//	size, err := compress.ReferenceSize(format.CompressionZstd, r.Bytes())
//	if err != nil {
//	    return err
//	}
//
// All codecs are safe for concurrent use; internal encoders are pooled.
package compress
