package stats

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TradeIdeasPhilip/entropic-qoi/accumulator"
	"github.com/TradeIdeasPhilip/entropic-qoi/compress"
	"github.com/TradeIdeasPhilip/entropic-qoi/entropy"
	"github.com/TradeIdeasPhilip/entropic-qoi/format"
	"github.com/TradeIdeasPhilip/entropic-qoi/raster"
)

func mustRaster(t testing.TB, pix []byte, width, channels int) *raster.Raster {
	t.Helper()
	r, err := raster.New(pix, width, channels)
	require.NoError(t, err)

	return r
}

// photo builds a smooth RGBA image with some flat areas and noise.
func photo(width, height int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	pix := make([]byte, 0, width*height*4)
	for y := range height {
		for x := range width {
			noise := rng.Intn(3)
			pix = append(pix,
				byte(x+noise),
				byte(y),
				byte((x*y)>>4),
				255,
			)
		}
	}

	return pix
}

func TestAnalyze_SingleChannelExample(t *testing.T) {
	r := mustRaster(t, []byte{10, 10, 10, 20, 20, 30}, 6, 1)

	report, err := Analyze(r)
	require.NoError(t, err)
	require.Len(t, report.Channels, 1)

	ch := report.Channels[0]
	require.Equal(t, "gray", ch.Name)
	require.Equal(t, int64(6), ch.Samples)
	require.Equal(t, int64(1), ch.Maps.RunLengths.Count(1))
	require.Equal(t, int64(1), ch.Maps.RunLengths.Count(2))

	require.Equal(t, int64(0), ch.Maps.OptimisticRLE.Count(0))
	require.Equal(t, int64(3), ch.Maps.Differences.Count(0), "optimistic map must be a copy")
	require.Equal(t, int64(2), ch.Maps.OptimisticRLE.Total())

	require.Equal(t, entropy.CostFromMap(ch.Maps.Bytes), ch.Costs[format.StrategyBytes])
	require.Equal(t, ch.Costs[format.StrategyLessOptimisticRLE]+ch.RunLengthCost, ch.Costs[format.StrategyRLE])
	// Optimistic RLE leaves only the two 10s: a single symbol costs the header alone.
	require.Equal(t, 8, ch.Costs[format.StrategyOptimisticRLE])

	require.Equal(t, int64(6), report.UncompressedSize)
	for _, s := range format.Strategies {
		require.Equal(t, int64(ch.Costs[s]), report.Total(s), s.String())
		require.GreaterOrEqual(t, ch.Costs[s], 8)
		require.Zero(t, (ch.Costs[s]-8)%4)
	}
}

func TestAnalyze_UsesRowAbove(t *testing.T) {
	// Two rows of width 3, single channel.
	pix := []byte{
		10, 20, 30,
		12, 22, 32,
	}
	report, err := Analyze(mustRaster(t, pix, 3, 1))
	require.NoError(t, err)

	// Reproduce by hand: the first row has no context.
	acc := accumulator.New()
	require.NoError(t, acc.Add(10))
	require.NoError(t, acc.Add(20))
	require.NoError(t, acc.Add(30))
	require.NoError(t, acc.AddWithAbove(12, 10))
	require.NoError(t, acc.AddWithAbove(22, 20))
	require.NoError(t, acc.AddWithAbove(32, 30))

	ch := report.Channels[0]
	require.Equal(t, acc.DoubleDifferences().Counts(), ch.Maps.DoubleDifferences.Counts())
	require.Equal(t, acc.Differences().Counts(), ch.Maps.Differences.Counts())

	// prev=30, above=10 -> predicted 20, residual -8.
	require.Equal(t, int64(1), ch.Maps.DoubleDifferences.Count(-8))
}

func TestAnalyze_ChannelsAreIndependent(t *testing.T) {
	pix := photo(32, 16, 1)
	r := mustRaster(t, pix, 32, 4)

	report, err := Analyze(r)
	require.NoError(t, err)
	require.Len(t, report.Channels, 4)
	require.Equal(t, []string{"red", "green", "blue", "alpha"}, []string{
		report.Channels[0].Name, report.Channels[1].Name, report.Channels[2].Name, report.Channels[3].Name,
	})

	// Analyzing a single plane alone gives the same numbers.
	green := r.Plane(1, make([]byte, r.Samples()))
	alone, err := Analyze(mustRaster(t, green, 32, 1))
	require.NoError(t, err)
	require.Equal(t, alone.Channels[0].Costs, report.Channels[1].Costs)

	// A constant alpha channel is a single symbol everywhere.
	alpha := report.Channels[3]
	require.Equal(t, 8, alpha.Costs[format.StrategyBytes])
	require.Equal(t, 8, alpha.Costs[format.StrategyDifferences])
	require.Equal(t, int64(1), alpha.Maps.RunLengths.Count(int(alpha.Samples-1)))

	var sum int64
	for _, ch := range report.Channels {
		sum += int64(ch.Costs[format.StrategyDoubleDifferences])
	}
	require.Equal(t, sum, report.Total(format.StrategyDoubleDifferences))
	require.Equal(t, int64(len(pix)), report.UncompressedSize)
}

func TestAnalyze_ParallelMatchesSerial(t *testing.T) {
	r := mustRaster(t, photo(64, 48, 7), 64, 4)

	parallel, err := Analyze(r, WithParallel(true))
	require.NoError(t, err)
	serial, err := Analyze(r, WithParallel(false))
	require.NoError(t, err)

	require.Equal(t, serial.Totals, parallel.Totals)
	for i := range serial.Channels {
		require.Equal(t, serial.Channels[i].Costs, parallel.Channels[i].Costs)
		require.Equal(t, serial.Channels[i].Maps.RunLengths.Counts(), parallel.Channels[i].Maps.RunLengths.Counts())
	}
	require.Equal(t, serial.Fingerprint, parallel.Fingerprint)
}

func TestAnalyze_Reference(t *testing.T) {
	pix := photo(64, 64, 3)
	r := mustRaster(t, pix, 64, 4)

	t.Run("no reference", func(t *testing.T) {
		report, err := Analyze(r)
		require.NoError(t, err)
		_, ok := report.PercentOfReference(format.StrategyBytes)
		require.False(t, ok)
	})

	t.Run("external size", func(t *testing.T) {
		report, err := Analyze(r, WithReferenceSize(4096, "PNG"))
		require.NoError(t, err)
		require.Equal(t, int64(4096), report.ReferenceSize)
		require.Equal(t, "PNG", report.ReferenceLabel)

		pct, ok := report.PercentOfReference(format.StrategyBytes)
		require.True(t, ok)
		require.InDelta(t, float64(report.Total(format.StrategyBytes))/4096*100, pct, 1e-9)
		require.InDelta(t, 4096.0/float64(len(pix))*100, report.ReferencePercent(), 1e-9)
	})

	t.Run("codec", func(t *testing.T) {
		report, err := Analyze(r, WithReferenceCodec(format.CompressionZstd))
		require.NoError(t, err)

		expected, err := compress.ReferenceSize(format.CompressionZstd, pix)
		require.NoError(t, err)
		require.Equal(t, expected, report.ReferenceSize)
		require.Equal(t, "Zstd", report.ReferenceLabel)
	})

	t.Run("negative size rejected", func(t *testing.T) {
		_, err := Analyze(r, WithReferenceSize(-1, "x"))
		require.Error(t, err)
	})

	t.Run("unknown codec", func(t *testing.T) {
		_, err := Analyze(r, WithReferenceCodec(format.CompressionType(0x7f)))
		require.Error(t, err)
	})
}

func TestAnalyze_ChannelNames(t *testing.T) {
	r := mustRaster(t, make([]byte, 12), 2, 3)

	report, err := Analyze(r, WithChannelNames("Y", "Cb", "Cr"))
	require.NoError(t, err)
	require.Equal(t, "Cb", report.Channels[1].Name)

	// A mismatched name list falls back to the defaults.
	report, err = Analyze(r, WithChannelNames("only one"))
	require.NoError(t, err)
	require.Equal(t, "green", report.Channels[1].Name)
}

func TestAnalyze_Errors(t *testing.T) {
	_, err := Analyze(nil)
	require.ErrorIs(t, err, ErrNoChannels)
}

func TestAnalyze_EmptyRaster(t *testing.T) {
	report, err := Analyze(mustRaster(t, nil, 4, 4))
	require.NoError(t, err)
	for _, s := range format.Strategies {
		want := int64(4 * 8)
		if s == format.StrategyRLE {
			// Leftover differences and run lengths each pay the header.
			want = 4 * 16
		}
		require.Equal(t, want, report.Total(s), s.String())
	}
	require.Zero(t, report.PercentOfUncompressed(format.StrategyBytes))
}

func TestReport_Best(t *testing.T) {
	report, err := Analyze(mustRaster(t, photo(64, 64, 9), 64, 4))
	require.NoError(t, err)

	best := report.Best()
	for _, s := range format.Strategies {
		require.LessOrEqual(t, report.Total(best), report.Total(s))
	}
}

func TestChannelResult_Map(t *testing.T) {
	report, err := Analyze(mustRaster(t, []byte{1, 1, 2, 3}, 4, 1))
	require.NoError(t, err)
	ch := report.Channels[0]

	for _, s := range format.Strategies {
		require.NotNil(t, ch.Map(s), s.String())
	}
	require.Same(t, ch.Maps.DifferencesAfterRLE, ch.Map(format.StrategyRLE))
	require.Nil(t, ch.Map(format.Strategy(0)))
}

func BenchmarkAnalyze(b *testing.B) {
	r := mustRaster(b, photo(256, 256, 1), 256, 4)

	b.Run("parallel", func(b *testing.B) {
		for b.Loop() {
			_, _ = Analyze(r)
		}
	})
	b.Run("serial", func(b *testing.B) {
		for b.Loop() {
			_, _ = Analyze(r, WithParallel(false))
		}
	})
}
