package histogram

import (
	"fmt"
	"iter"
	"slices"
)

// Map counts observations of symbols drawn from a Domain.
//
// Every symbol of a closed domain is present from construction with a count of
// zero. An open domain is seeded from Min up to the largest symbol ever touched,
// so the map never has gaps. The sum of all counts always equals Total.
//
// A Map is not safe for concurrent mutation. Once handed out by an accumulator it
// must be treated as read-only; use Clone to derive a modified copy.
type Map struct {
	domain Domain
	counts []int64
	total  int64
}

// New creates a map over d with every legal symbol seeded at zero.
func New(d Domain) *Map {
	m := &Map{domain: d}
	if !d.Open {
		m.counts = make([]int64, d.Size())
	}

	return m
}

// Domain returns the symbol domain of the map.
func (m *Map) Domain() Domain {
	return m.domain
}

// Increment adds one observation of symbol.
func (m *Map) Increment(symbol int) error {
	idx, err := m.index(symbol)
	if err != nil {
		return err
	}
	m.counts[idx]++
	m.total++

	return nil
}

// Decrement removes one observation of symbol.
//
// Returns ErrNegativeCount if the symbol has no observations to remove; the map is
// left unchanged in that case.
func (m *Map) Decrement(symbol int) error {
	if !m.domain.Contains(symbol) {
		return fmt.Errorf("%w: %d not in %s", ErrInvalidSymbol, symbol, m.domain)
	}
	if m.Count(symbol) == 0 {
		return fmt.Errorf("%w: %s symbol %d", ErrNegativeCount, m.domain.Name, symbol)
	}
	m.counts[symbol-m.domain.Min]--
	m.total--

	return nil
}

// Set overwrites the count of symbol, keeping Total consistent.
func (m *Map) Set(symbol int, count int64) error {
	if count < 0 {
		return fmt.Errorf("%w: %s symbol %d set to %d", ErrNegativeCount, m.domain.Name, symbol, count)
	}
	idx, err := m.index(symbol)
	if err != nil {
		return err
	}
	m.total += count - m.counts[idx]
	m.counts[idx] = count

	return nil
}

// Count returns the number of observations of symbol. Symbols outside the seeded
// range report zero.
func (m *Map) Count(symbol int) int64 {
	idx := symbol - m.domain.Min
	if idx < 0 || idx >= len(m.counts) {
		return 0
	}

	return m.counts[idx]
}

// Total returns the sum of all counts.
func (m *Map) Total() int64 {
	return m.total
}

// Len returns the number of seeded symbols, zero-count symbols included.
func (m *Map) Len() int {
	return len(m.counts)
}

// Zeros returns the number of seeded symbols whose count is zero.
func (m *Map) Zeros() int {
	zeros := 0
	for _, c := range m.counts {
		if c == 0 {
			zeros++
		}
	}

	return zeros
}

// All iterates over every seeded symbol in ascending order with its count.
func (m *Map) All() iter.Seq2[int, int64] {
	return func(yield func(int, int64) bool) {
		for i, c := range m.counts {
			if !yield(i+m.domain.Min, c) {
				return
			}
		}
	}
}

// Counts returns a copy of the dense count table; index 0 holds Domain().Min.
func (m *Map) Counts() []int64 {
	return slices.Clone(m.counts)
}

// Clone returns an independent copy of the map.
func (m *Map) Clone() *Map {
	return &Map{
		domain: m.domain,
		counts: slices.Clone(m.counts),
		total:  m.total,
	}
}

// index returns the slot for symbol, growing open domains as needed.
func (m *Map) index(symbol int) (int, error) {
	if !m.domain.Contains(symbol) {
		return 0, fmt.Errorf("%w: %d not in %s", ErrInvalidSymbol, symbol, m.domain)
	}
	idx := symbol - m.domain.Min
	if idx >= len(m.counts) {
		m.counts = append(m.counts, make([]int64, idx+1-len(m.counts))...)
	}

	return idx, nil
}
