package compress

import (
	"fmt"

	"github.com/TradeIdeasPhilip/entropic-qoi/format"
)

// Compressor compresses a complete buffer in one call.
type Compressor interface {
	// Compress returns a newly allocated compressed copy of data. data is not
	// modified. Empty input yields nil.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
type Decompressor interface {
	// Decompress returns the original bytes, or an error if data is corrupted
	// or was produced by a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// ReferenceSize returns the number of bytes compressionType needs for data.
func ReferenceSize(compressionType format.CompressionType, data []byte) (int64, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return 0, err
	}
	compressed, err := codec.Compress(data)
	if err != nil {
		return 0, fmt.Errorf("%s reference compression: %w", compressionType, err)
	}

	return int64(len(compressed)), nil
}
