package report

import (
	"io"

	"github.com/gocarina/gocsv"

	"github.com/TradeIdeasPhilip/entropic-qoi/format"
	"github.com/TradeIdeasPhilip/entropic-qoi/histogram"
	"github.com/TradeIdeasPhilip/entropic-qoi/stats"
)

// AllChannels is the channel name of aggregate rows.
const AllChannels = "all"

// StrategyRow is one line of the strategy CSV.
type StrategyRow struct {
	Channel               string  `csv:"channel"`
	Strategy              string  `csv:"strategy"`
	Bytes                 int64   `csv:"bytes"`
	ZeroBins              int     `csv:"zero_bins"`
	PercentOfUncompressed float64 `csv:"pct_uncompressed"`
	PercentOfReference    float64 `csv:"pct_reference"`
}

// HistogramRow is one line of a histogram CSV.
type HistogramRow struct {
	Symbol int   `csv:"symbol"`
	Count  int64 `csv:"count"`
}

// StrategyRows flattens r into one row per channel and strategy, followed by one
// aggregate row per strategy. PercentOfReference is 0 without a reference.
func StrategyRows(r *stats.Report) []*StrategyRow {
	rows := make([]*StrategyRow, 0, (len(r.Channels)+1)*len(format.Strategies))
	perChannel := r.UncompressedSize
	if len(r.Channels) > 0 {
		perChannel /= int64(len(r.Channels))
	}

	for _, ch := range r.Channels {
		for _, s := range format.Strategies {
			cost := int64(ch.Costs[s])
			rows = append(rows, &StrategyRow{
				Channel:               ch.Name,
				Strategy:              s.String(),
				Bytes:                 cost,
				ZeroBins:              ch.Map(s).Zeros(),
				PercentOfUncompressed: ratio(cost, perChannel),
			})
		}
	}
	for _, s := range format.Strategies {
		pct, _ := r.PercentOfReference(s)
		zeros := 0
		for _, ch := range r.Channels {
			zeros += ch.Map(s).Zeros()
		}
		rows = append(rows, &StrategyRow{
			Channel:               AllChannels,
			Strategy:              s.String(),
			Bytes:                 r.Total(s),
			ZeroBins:              zeros,
			PercentOfUncompressed: r.PercentOfUncompressed(s),
			PercentOfReference:    pct,
		})
	}

	return rows
}

// WriteCSV writes StrategyRows(r) with a header line.
func WriteCSV(w io.Writer, r *stats.Report) error {
	return gocsv.Marshal(StrategyRows(r), w)
}

// WriteHistogramCSV writes every seeded symbol of m with its count, zero counts
// included.
func WriteHistogramCSV(w io.Writer, m *histogram.Map) error {
	rows := make([]*HistogramRow, 0, m.Len())
	for sym, c := range m.All() {
		rows = append(rows, &HistogramRow{Symbol: sym, Count: c})
	}

	return gocsv.Marshal(rows, w)
}

func ratio(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}

	return float64(part) / float64(whole) * 100
}
