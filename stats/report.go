package stats

import (
	"github.com/TradeIdeasPhilip/entropic-qoi/format"
	"github.com/TradeIdeasPhilip/entropic-qoi/histogram"
)

// Maps groups the frozen frequency maps of one channel. They must not be modified.
type Maps struct {
	Bytes               *histogram.Map
	Differences         *histogram.Map
	DoubleDifferences   *histogram.Map
	OptimisticRLE       *histogram.Map // Differences with the zero bin forced to 0.
	DifferencesAfterRLE *histogram.Map
	RunLengths          *histogram.Map

	ByteRanks             *histogram.Map
	DifferenceRanks       *histogram.Map
	DoubleDifferenceRanks *histogram.Map
}

// ChannelResult holds the statistics and estimated costs of one channel.
type ChannelResult struct {
	Index   int
	Name    string
	Samples int64
	Maps    Maps
	// Costs holds the estimated size in bytes of each strategy.
	Costs map[format.Strategy]int
	// RunLengthCost is the share of StrategyRLE spent on run lengths.
	RunLengthCost int
}

// Map returns the frequency map a strategy is costed from. For StrategyRLE this
// is the leftover difference map; the run lengths are in Maps.RunLengths.
func (c *ChannelResult) Map(s format.Strategy) *histogram.Map {
	switch s {
	case format.StrategyBytes:
		return c.Maps.Bytes
	case format.StrategyDifferences:
		return c.Maps.Differences
	case format.StrategyDoubleDifferences:
		return c.Maps.DoubleDifferences
	case format.StrategyOptimisticRLE:
		return c.Maps.OptimisticRLE
	case format.StrategyLessOptimisticRLE, format.StrategyRLE:
		return c.Maps.DifferencesAfterRLE
	case format.StrategyMTFBytes:
		return c.Maps.ByteRanks
	case format.StrategyMTFDifferences:
		return c.Maps.DifferenceRanks
	case format.StrategyMTFDoubleDifferences:
		return c.Maps.DoubleDifferenceRanks
	default:
		return nil
	}
}

// Report compares the aggregate estimate of every strategy across channels.
type Report struct {
	Width       int
	Height      int
	Fingerprint uint64

	// UncompressedSize is channels × samples per channel.
	UncompressedSize int64
	// ReferenceSize is the compressed size estimates are compared against;
	// zero when no reference was configured.
	ReferenceSize  int64
	ReferenceLabel string

	Channels []*ChannelResult
	// Totals sums each strategy's cost over all channels.
	Totals map[format.Strategy]int64
}

// Total returns the aggregate estimated size of strategy s.
func (r *Report) Total(s format.Strategy) int64 {
	return r.Totals[s]
}

// PercentOfUncompressed returns Total(s) as a percentage of the raw size.
func (r *Report) PercentOfUncompressed(s format.Strategy) float64 {
	return percent(r.Total(s), r.UncompressedSize)
}

// PercentOfReference returns Total(s) as a percentage of the reference size.
// The second result is false when there is no reference.
func (r *Report) PercentOfReference(s format.Strategy) (float64, bool) {
	if r.ReferenceSize <= 0 {
		return 0, false
	}

	return percent(r.Total(s), r.ReferenceSize), true
}

// ReferencePercent returns the reference size as a percentage of the raw size.
func (r *Report) ReferencePercent() float64 {
	return percent(r.ReferenceSize, r.UncompressedSize)
}

// Best returns the strategy with the smallest aggregate estimate. Ties go to
// the strategy listed first in format.Strategies.
func (r *Report) Best() format.Strategy {
	best := format.Strategies[0]
	for _, s := range format.Strategies[1:] {
		if r.Total(s) < r.Total(best) {
			best = s
		}
	}

	return best
}

func percent(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}

	return float64(part) / float64(whole) * 100
}
