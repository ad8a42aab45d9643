package stats

import (
	"errors"

	"github.com/TradeIdeasPhilip/entropic-qoi/format"
	"github.com/TradeIdeasPhilip/entropic-qoi/internal/options"
)

// AnalyzeConfig holds the settings of one Analyze call.
type AnalyzeConfig struct {
	ReferenceSize  int64
	ReferenceLabel string
	ReferenceCodec format.CompressionType
	Parallel       bool
	ChannelNames   []string
}

func defaultAnalyzeConfig() AnalyzeConfig {
	return AnalyzeConfig{Parallel: true}
}

// Option is a functional option for Analyze.
type Option = options.Option[*AnalyzeConfig]

// WithReferenceSize compares every estimate against an externally known
// compressed size, typically the size of the source image file.
func WithReferenceSize(size int64, label string) Option {
	return options.New(func(cfg *AnalyzeConfig) error {
		if size < 0 {
			return errors.New("reference size cannot be negative")
		}
		cfg.ReferenceSize = size
		cfg.ReferenceLabel = label
		cfg.ReferenceCodec = 0

		return nil
	})
}

// WithReferenceCodec computes the reference size by compressing the raw samples
// with the given codec.
func WithReferenceCodec(ct format.CompressionType) Option {
	return options.NoError(func(cfg *AnalyzeConfig) {
		cfg.ReferenceCodec = ct
		cfg.ReferenceSize = 0
		cfg.ReferenceLabel = ct.String()
	})
}

// WithParallel toggles running channel passes on separate goroutines.
// Results are identical either way.
func WithParallel(enabled bool) Option {
	return options.NoError(func(cfg *AnalyzeConfig) {
		cfg.Parallel = enabled
	})
}

// WithChannelNames overrides the default channel names.
func WithChannelNames(names ...string) Option {
	return options.NoError(func(cfg *AnalyzeConfig) {
		cfg.ChannelNames = names
	})
}
