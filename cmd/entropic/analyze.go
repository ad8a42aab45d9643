package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	entropic "github.com/TradeIdeasPhilip/entropic-qoi"
	"github.com/TradeIdeasPhilip/entropic-qoi/format"
	"github.com/TradeIdeasPhilip/entropic-qoi/histogram"
	"github.com/TradeIdeasPhilip/entropic-qoi/raster"
	"github.com/TradeIdeasPhilip/entropic-qoi/report"
	"github.com/TradeIdeasPhilip/entropic-qoi/stats"
)

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Print estimated sizes for every strategy",
		ArgsUsage: "IMAGE_FILE",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:  "reference-size",
				Usage: "compressed size to compare against (default: size of IMAGE_FILE)",
			},
			&cli.StringFlag{
				Name:  "reference-codec",
				Usage: "compare against the raw samples compressed with this codec instead",
			},
			&cli.IntFlag{
				Name:  "channels",
				Value: 4,
				Usage: "channels to extract: 1 gray, 2 gray+alpha, 3 RGB, 4 RGBA",
			},
			&cli.StringFlag{
				Name:  "csv",
				Usage: "also write per-strategy results to this CSV file",
			},
			&cli.StringFlag{
				Name:  "histogram-dir",
				Usage: "write every frequency map as CSV into this directory",
			},
			&cli.BoolFlag{
				Name:  "serial",
				Usage: "process channels one at a time",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log progress to stderr",
			},
		},
		Action: analyzeImage,
	}
}

func analyzeImage(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("expected exactly one IMAGE_FILE")
	}
	path := ctx.Args().First()
	verbose := ctx.Bool("verbose")

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	opts := []stats.Option{stats.WithParallel(!ctx.Bool("serial"))}
	switch {
	case ctx.IsSet("reference-codec"):
		ct, ok := format.ParseCompressionType(ctx.String("reference-codec"))
		if !ok {
			return fmt.Errorf("unknown reference codec %q", ctx.String("reference-codec"))
		}
		opts = append(opts, stats.WithReferenceCodec(ct))
	case ctx.IsSet("reference-size"):
		opts = append(opts, stats.WithReferenceSize(ctx.Int64("reference-size"), "reference"))
	}

	if verbose {
		log.Printf("analyzing %s (%d bytes)", path, info.Size())
	}
	res, err := entropic.AnalyzeFile(path,
		[]raster.DecodeOption{raster.WithChannels(ctx.Int("channels"))}, opts...)
	if err != nil {
		return err
	}
	if verbose {
		log.Printf("decoded %s image %d×%d", res.Format, res.Report.Width, res.Report.Height)
	}

	if err := report.WriteSummary(ctx.App.Writer, res.Report); err != nil {
		return err
	}
	if name := ctx.String("csv"); name != "" {
		if err := writeFile(name, func(w io.Writer) error { return report.WriteCSV(w, res.Report) }); err != nil {
			return err
		}
		if verbose {
			log.Printf("wrote %s", name)
		}
	}
	if dir := ctx.String("histogram-dir"); dir != "" {
		if err := writeHistograms(dir, res.Report); err != nil {
			return err
		}
		if verbose {
			log.Printf("wrote histograms to %s", dir)
		}
	}

	return nil
}

// histogramFiles names the per-channel maps written by --histogram-dir.
var histogramFiles = []struct {
	name string
	get  func(m *stats.Maps) *histogram.Map
}{
	{"bytes", func(m *stats.Maps) *histogram.Map { return m.Bytes }},
	{"differences", func(m *stats.Maps) *histogram.Map { return m.Differences }},
	{"double-differences", func(m *stats.Maps) *histogram.Map { return m.DoubleDifferences }},
	{"optimistic-rle", func(m *stats.Maps) *histogram.Map { return m.OptimisticRLE }},
	{"rle-differences", func(m *stats.Maps) *histogram.Map { return m.DifferencesAfterRLE }},
	{"rle-lengths", func(m *stats.Maps) *histogram.Map { return m.RunLengths }},
	{"mtf-bytes", func(m *stats.Maps) *histogram.Map { return m.ByteRanks }},
	{"mtf-differences", func(m *stats.Maps) *histogram.Map { return m.DifferenceRanks }},
	{"mtf-double-differences", func(m *stats.Maps) *histogram.Map { return m.DoubleDifferenceRanks }},
}

func writeHistograms(dir string, r *stats.Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, ch := range r.Channels {
		for _, hf := range histogramFiles {
			m := hf.get(&ch.Maps)
			name := filepath.Join(dir, fmt.Sprintf("%s-%s.csv", ch.Name, hf.name))
			if err := writeFile(name, func(w io.Writer) error { return report.WriteHistogramCSV(w, m) }); err != nil {
				return err
			}
		}
	}

	return nil
}

func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}

	return f.Close()
}

func listCodecs(ctx *cli.Context) error {
	for _, ct := range format.CompressionTypes {
		if _, err := fmt.Fprintln(ctx.App.Writer, strings.ToLower(ct.String())); err != nil {
			return err
		}
	}

	return nil
}
