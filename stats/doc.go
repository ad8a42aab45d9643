// Package stats aggregates per-channel statistics into a size comparison report.
//
// Analyze runs every channel of a raster through its own accumulator, costs
// each resulting frequency map with the zero-order entropy model and sums the
// costs per strategy:
//
//	report, err := stats.Analyze(r, stats.WithReferenceSize(fileSize, "PNG"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range format.Strategies {
//	    fmt.Printf("%s: %d bytes (%.3f%% of uncompressed)\n",
//	        s, report.Total(s), report.PercentOfUncompressed(s))
//	}
//
// The strategies compared are:
//   - Byte: raw sample values
//   - Difference: sample minus the previous sample of the same channel
//   - Double difference: sample minus the mean of the previous sample and the
//     sample one row up
//   - Optimistic RLE: differences assuming every zero costs nothing
//   - Less optimistic RLE: differences with run continuations removed
//   - RLE: less optimistic RLE plus the cost of the run lengths
//   - MTF variants: move-to-front ranks of bytes, differences and double differences
//
// The report and its maps are read-only; presentation belongs to package report.
package stats
