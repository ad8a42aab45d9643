// Package report renders analysis results as a text summary or CSV tables.
//
// It is a pure sink: nothing here modifies a stats.Report or its maps.
package report

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/TradeIdeasPhilip/entropic-qoi/format"
	"github.com/TradeIdeasPhilip/entropic-qoi/stats"
)

// summaryStrategies are the strategies of the headline summary, in order.
var summaryStrategies = []format.Strategy{
	format.StrategyBytes,
	format.StrategyDifferences,
	format.StrategyOptimisticRLE,
	format.StrategyLessOptimisticRLE,
	format.StrategyRLE,
	format.StrategyDoubleDifferences,
	format.StrategyMTFBytes,
	format.StrategyMTFDifferences,
	format.StrategyMTFDoubleDifferences,
}

// WriteSummary writes a human readable comparison of every strategy, followed
// by per-channel detail.
func WriteSummary(w io.Writer, r *stats.Report) error {
	p := message.NewPrinter(language.English)
	sw := &summaryWriter{w: w, p: p}

	sw.line("Image: %s, %d channels, fingerprint %s.",
		fmt.Sprintf("%d×%d", r.Width, r.Height), len(r.Channels), fmt.Sprintf("%016x", r.Fingerprint))
	sw.line("Uncompressed file size: %d.", r.UncompressedSize)
	if r.ReferenceSize > 0 {
		sw.line("%s size: %d, %.3f%% of uncompressed.",
			referenceName(r), r.ReferenceSize, r.ReferencePercent())
	}
	for _, s := range summaryStrategies {
		line := p.Sprintf("%s compressed size: %d, %.3f%% of uncompressed",
			s, r.Total(s), r.PercentOfUncompressed(s))
		if pct, ok := r.PercentOfReference(s); ok {
			line += p.Sprintf(", %.3f%% of %s", pct, referenceName(r))
		}
		sw.line("%s.", line)
	}
	sw.line("Best strategy: %s.", r.Best())

	for _, ch := range r.Channels {
		sw.line("")
		sw.line("Channel %s:", ch.Name)
		for _, s := range []format.Strategy{
			format.StrategyBytes,
			format.StrategyDifferences,
			format.StrategyOptimisticRLE,
			format.StrategyDoubleDifferences,
			format.StrategyMTFBytes,
			format.StrategyMTFDifferences,
			format.StrategyMTFDoubleDifferences,
		} {
			sw.line("  %s: Number of 0’s: %d. Cost in bytes: %d.",
				s, ch.Map(s).Zeros(), ch.Costs[s])
		}
		sw.line("  RLE: Differences cost: %d, Runs cost: %d, Total cost in bytes: %d.",
			ch.Costs[format.StrategyLessOptimisticRLE], ch.RunLengthCost, ch.Costs[format.StrategyRLE])
	}

	return sw.err
}

func referenceName(r *stats.Report) string {
	if r.ReferenceLabel == "" {
		return "Reference"
	}

	return r.ReferenceLabel
}

// summaryWriter remembers the first write error so callers check once.
type summaryWriter struct {
	w   io.Writer
	p   *message.Printer
	err error
}

func (sw *summaryWriter) line(f string, args ...any) {
	if sw.err != nil {
		return
	}
	_, sw.err = fmt.Fprintln(sw.w, sw.p.Sprintf(f, args...))
}
