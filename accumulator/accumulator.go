// Package accumulator gathers the per-channel symbol statistics used to compare
// predictive transforms.
//
// An Accumulator consumes one channel's samples in raster order and maintains a
// frequency map for each transform: raw values, first differences, 2D-predicted
// double differences, run lengths, differences left after run removal, and the
// move-to-front ranks of the first three. All state is scoped to one channel pass.
package accumulator

import (
	"fmt"

	"github.com/TradeIdeasPhilip/entropic-qoi/histogram"
	"github.com/TradeIdeasPhilip/entropic-qoi/mtf"
)

// Accumulator holds the state of one channel pass.
//
// The previous sample and the current run length carry across scanlines: the
// channel is differenced as one continuous sequence even though the double
// difference predictor looks at the row above.
//
// An Accumulator is not safe for concurrent use. Separate channels need separate
// accumulators, which share nothing.
type Accumulator struct {
	previous    int
	hasPrevious bool
	runLength   int
	count       int64

	bytes               *histogram.Map
	differences         *histogram.Map
	doubleDifferences   *histogram.Map
	runLengths          *histogram.Map
	differencesAfterRLE *histogram.Map

	byteRanks             *histogram.Map
	differenceRanks       *histogram.Map
	doubleDifferenceRanks *histogram.Map

	mruBytes             *mtf.List
	mruDifferences       *mtf.List
	mruDoubleDifferences *mtf.List
}

// New creates an empty accumulator.
func New() *Accumulator {
	return &Accumulator{
		bytes:                 histogram.New(histogram.Bytes),
		differences:           histogram.New(histogram.Differences),
		doubleDifferences:     histogram.New(histogram.Differences),
		runLengths:            histogram.New(histogram.RunLengths),
		differencesAfterRLE:   histogram.New(histogram.Differences),
		byteRanks:             histogram.New(histogram.ByteRanks),
		differenceRanks:       histogram.New(histogram.DifferenceRanks),
		doubleDifferenceRanks: histogram.New(histogram.DifferenceRanks),
		mruBytes:              mtf.NewByteList(),
		mruDifferences:        mtf.NewDiffList(),
		mruDoubleDifferences:  mtf.NewDiffList(),
	}
}

// Add records sample b without row-above context.
func (a *Accumulator) Add(b byte) error {
	return a.add(b, 0, false)
}

// AddWithAbove records sample b whose same-channel neighbour one scanline up is above.
func (a *Accumulator) AddWithAbove(b, above byte) error {
	return a.add(b, int(above), true)
}

func (a *Accumulator) add(b byte, above int, hasAbove bool) error {
	value := int(b)
	if err := a.bytes.Increment(value); err != nil {
		return err
	}
	if err := countRank(a.mruBytes, a.byteRanks, value); err != nil {
		return fmt.Errorf("byte: %w", err)
	}

	if a.hasPrevious {
		diff := value - a.previous
		if err := a.differences.Increment(diff); err != nil {
			return err
		}
		if err := countRank(a.mruDifferences, a.differenceRanks, diff); err != nil {
			return fmt.Errorf("difference: %w", err)
		}

		if err := a.trackRun(diff); err != nil {
			return err
		}
		if a.runLength < 2 {
			if err := a.differencesAfterRLE.Increment(diff); err != nil {
				return err
			}
		}

		predicted := a.previous
		if hasAbove {
			predicted = (a.previous + above) / 2
		}
		doubleDiff := value - predicted
		if err := a.doubleDifferences.Increment(doubleDiff); err != nil {
			return err
		}
		if err := countRank(a.mruDoubleDifferences, a.doubleDifferenceRanks, doubleDiff); err != nil {
			return fmt.Errorf("double difference: %w", err)
		}
	}

	a.previous = value
	a.hasPrevious = true
	a.count++

	return nil
}

// trackRun counts every maximal run of zero differences once, under its final length.
// Extending a run moves its single count from the old length to the new one.
func (a *Accumulator) trackRun(diff int) error {
	if diff != 0 {
		a.runLength = 0
		return nil
	}
	if a.runLength > 0 {
		if err := a.runLengths.Decrement(a.runLength); err != nil {
			return err
		}
	}
	a.runLength++

	return a.runLengths.Increment(a.runLength)
}

func countRank(list *mtf.List, ranks *histogram.Map, v int) error {
	rank, err := list.Encode(v)
	if err != nil {
		return err
	}

	return ranks.Increment(rank)
}

// Count returns the number of samples recorded.
func (a *Accumulator) Count() int64 { return a.count }

// ZeroDifferences returns how many zero differences were recorded.
func (a *Accumulator) ZeroDifferences() int64 { return a.differences.Count(0) }

// The maps below are owned by the accumulator and must not be modified.

// Bytes returns the raw sample frequencies.
func (a *Accumulator) Bytes() *histogram.Map { return a.bytes }

// Differences returns the first difference frequencies.
func (a *Accumulator) Differences() *histogram.Map { return a.differences }

// DoubleDifferences returns the 2D prediction residual frequencies.
func (a *Accumulator) DoubleDifferences() *histogram.Map { return a.doubleDifferences }

// RunLengths returns how many runs of zero differences ended at each length.
func (a *Accumulator) RunLengths() *histogram.Map { return a.runLengths }

// DifferencesAfterRLE returns the difference frequencies with run continuations removed.
// The first zero of a run is kept; later zeros are left to the run length stream.
func (a *Accumulator) DifferencesAfterRLE() *histogram.Map { return a.differencesAfterRLE }

// ByteRanks returns move-to-front rank frequencies of raw samples.
func (a *Accumulator) ByteRanks() *histogram.Map { return a.byteRanks }

// DifferenceRanks returns move-to-front rank frequencies of first differences.
func (a *Accumulator) DifferenceRanks() *histogram.Map { return a.differenceRanks }

// DoubleDifferenceRanks returns move-to-front rank frequencies of double differences.
func (a *Accumulator) DoubleDifferenceRanks() *histogram.Map { return a.doubleDifferenceRanks }
