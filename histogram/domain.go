package histogram

import "fmt"

// Domain describes a contiguous integer symbol alphabet [Min, Max].
//
// A closed domain has a fixed upper bound; an open domain (Open == true) grows
// upward on demand and Max is ignored.
type Domain struct {
	// Name identifies the domain in error messages and reports.
	Name string
	// Min is the smallest legal symbol.
	Min int
	// Max is the largest legal symbol for closed domains.
	Max int
	// Open marks a domain without an upper bound.
	Open bool
}

var (
	// Bytes is the raw sample domain [0, 255].
	Bytes = Domain{Name: "byte", Min: 0, Max: 255}
	// Differences is the signed difference domain [-255, 255].
	Differences = Domain{Name: "difference", Min: -255, Max: 255}
	// ByteRanks is the move-to-front rank domain for raw samples [0, 255].
	ByteRanks = Domain{Name: "byte rank", Min: 0, Max: 255}
	// DifferenceRanks is the move-to-front rank domain for differences [0, 510].
	DifferenceRanks = Domain{Name: "difference rank", Min: 0, Max: 510}
	// RunLengths is the open run length domain [1, ∞).
	RunLengths = Domain{Name: "run length", Min: 1, Open: true}
)

// Contains reports whether symbol is legal in the domain.
func (d Domain) Contains(symbol int) bool {
	if symbol < d.Min {
		return false
	}

	return d.Open || symbol <= d.Max
}

// Size returns the number of symbols in a closed domain, or 0 for an open domain.
func (d Domain) Size() int {
	if d.Open {
		return 0
	}

	return d.Max - d.Min + 1
}

func (d Domain) String() string {
	if d.Open {
		return fmt.Sprintf("%s[%d,∞)", d.Name, d.Min)
	}

	return fmt.Sprintf("%s[%d,%d]", d.Name, d.Min, d.Max)
}
