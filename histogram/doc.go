// Package histogram provides frequency maps over closed integer symbol domains.
//
// A Map is pre-seeded with every legal symbol at count zero, so cost models and
// reports always see the full alphabet:
//
//	m := histogram.New(histogram.Differences)
//	_ = m.Increment(-3)
//	fmt.Println(m.Count(-3), m.Total(), m.Zeros()) // 1 1 510
//
// The run length domain is open-ended; its maps grow to cover the longest run
// observed, keeping every shorter length present with a zero count.
package histogram
