package stats

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/TradeIdeasPhilip/entropic-qoi/accumulator"
	"github.com/TradeIdeasPhilip/entropic-qoi/compress"
	"github.com/TradeIdeasPhilip/entropic-qoi/entropy"
	"github.com/TradeIdeasPhilip/entropic-qoi/format"
	"github.com/TradeIdeasPhilip/entropic-qoi/internal/options"
	"github.com/TradeIdeasPhilip/entropic-qoi/internal/pool"
	"github.com/TradeIdeasPhilip/entropic-qoi/raster"
)

// ErrNoChannels is returned when there is nothing to analyze.
var ErrNoChannels = errors.New("raster has no channels")

// Analyze runs one accumulator per channel of r and compares the estimated
// size of every strategy against the raw size and the configured reference.
//
// Channels share no state. With parallel passes enabled (the default) each
// channel runs on its own goroutine; the report is the same either way.
func Analyze(r *raster.Raster, opts ...Option) (*Report, error) {
	if r == nil || r.Channels() == 0 {
		return nil, ErrNoChannels
	}
	cfg := defaultAnalyzeConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	names := cfg.ChannelNames
	if len(names) != r.Channels() {
		names = raster.ChannelNames(r.Channels())
	}

	results := make([]*ChannelResult, r.Channels())
	errs := make([]error, r.Channels())
	run := func(ch int) {
		results[ch], errs[ch] = analyzeChannel(r, ch)
		if results[ch] != nil {
			results[ch].Name = names[ch]
		}
	}

	if cfg.Parallel {
		var wg sync.WaitGroup
		for ch := range r.Channels() {
			wg.Add(1)
			go func() {
				defer wg.Done()
				run(ch)
			}()
		}
		wg.Wait()
	} else {
		for ch := range r.Channels() {
			run(ch)
		}
	}

	var merr *multierror.Error
	for ch, err := range errs {
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("channel %d (%s): %w", ch, names[ch], err))
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	report := &Report{
		Width:            r.Width(),
		Height:           r.Height(),
		Fingerprint:      r.Fingerprint(),
		UncompressedSize: int64(r.Size()),
		ReferenceSize:    cfg.ReferenceSize,
		ReferenceLabel:   cfg.ReferenceLabel,
		Channels:         results,
		Totals:           make(map[format.Strategy]int64, len(format.Strategies)),
	}
	if cfg.ReferenceCodec != 0 {
		size, err := compress.ReferenceSize(cfg.ReferenceCodec, r.Bytes())
		if err != nil {
			return nil, err
		}
		report.ReferenceSize = size
	}
	for _, res := range results {
		for _, s := range format.Strategies {
			report.Totals[s] += int64(res.Costs[s])
		}
	}

	return report, nil
}

// analyzeChannel feeds channel ch of r through a fresh accumulator, pairing each
// sample after the first scanline with the sample directly above it.
func analyzeChannel(r *raster.Raster, ch int) (*ChannelResult, error) {
	plane, cleanup := pool.GetPlane(r.Samples())
	defer cleanup()
	plane = r.Plane(ch, plane)

	acc := accumulator.New()
	width := r.Width()
	for i, b := range plane {
		var err error
		if i >= width {
			err = acc.AddWithAbove(b, plane[i-width])
		} else {
			err = acc.Add(b)
		}
		if err != nil {
			return nil, err
		}
	}

	return newChannelResult(ch, acc)
}

func newChannelResult(ch int, acc *accumulator.Accumulator) (*ChannelResult, error) {
	optimistic := acc.Differences().Clone()
	if err := optimistic.Set(0, 0); err != nil {
		return nil, err
	}

	res := &ChannelResult{
		Index:   ch,
		Samples: acc.Count(),
		Maps: Maps{
			Bytes:                 acc.Bytes(),
			Differences:           acc.Differences(),
			DoubleDifferences:     acc.DoubleDifferences(),
			OptimisticRLE:         optimistic,
			DifferencesAfterRLE:   acc.DifferencesAfterRLE(),
			RunLengths:            acc.RunLengths(),
			ByteRanks:             acc.ByteRanks(),
			DifferenceRanks:       acc.DifferenceRanks(),
			DoubleDifferenceRanks: acc.DoubleDifferenceRanks(),
		},
		Costs: make(map[format.Strategy]int, len(format.Strategies)),
	}

	m := &res.Maps
	res.RunLengthCost = entropy.CostFromMap(m.RunLengths)
	res.Costs[format.StrategyBytes] = entropy.CostFromMap(m.Bytes)
	res.Costs[format.StrategyDifferences] = entropy.CostFromMap(m.Differences)
	res.Costs[format.StrategyDoubleDifferences] = entropy.CostFromMap(m.DoubleDifferences)
	res.Costs[format.StrategyOptimisticRLE] = entropy.CostFromMap(m.OptimisticRLE)
	res.Costs[format.StrategyLessOptimisticRLE] = entropy.CostFromMap(m.DifferencesAfterRLE)
	res.Costs[format.StrategyRLE] = res.Costs[format.StrategyLessOptimisticRLE] + res.RunLengthCost
	res.Costs[format.StrategyMTFBytes] = entropy.CostFromMap(m.ByteRanks)
	res.Costs[format.StrategyMTFDifferences] = entropy.CostFromMap(m.DifferenceRanks)
	res.Costs[format.StrategyMTFDoubleDifferences] = entropy.CostFromMap(m.DoubleDifferenceRanks)

	return res, nil
}
