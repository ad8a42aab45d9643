package compress

// ZstdCompressor provides Zstandard compression at the default level.
//
// Zstd is the strongest of the reference codecs and the closest stand-in for
// a real image container's deflate/entropy stage.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
