// Package mtf implements the move-to-front rank transform over a closed symbol
// alphabet.
//
// A List holds every legal symbol exactly once, most recently used first. Encoding
// a symbol returns its current rank and promotes it to rank 0, so repeating a
// symbol always encodes as 0 and recently used symbols get small ranks:
//
//	l := mtf.NewByteList()
//	l.Encode(5) // 5
//	l.Encode(5) // 0
//	l.Encode(3) // 4
package mtf

import (
	"errors"
	"fmt"

	"github.com/TradeIdeasPhilip/entropic-qoi/histogram"
)

// ErrInvalidSymbol is returned by Encode for a value outside the list's alphabet.
var ErrInvalidSymbol = histogram.ErrInvalidSymbol

// ErrInvalidRank is returned by Decode for a rank outside [0, Len()).
var ErrInvalidRank = errors.New("invalid rank")

// List is a move-to-front ordering of a closed symbol alphabet.
//
// The zero value is not usable; create lists with New, NewByteList or NewDiffList.
// A List is not safe for concurrent use.
type List struct {
	items []int
	// members[v-min] reports whether v belongs to the alphabet.
	members []bool
	min     int
}

// New creates a list whose initial order is a copy of order.
//
// order must not contain duplicates.
func New(order []int) (*List, error) {
	if len(order) == 0 {
		return nil, errors.New("empty alphabet")
	}
	lo, hi := order[0], order[0]
	for _, v := range order {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	l := &List{
		items:   make([]int, len(order)),
		members: make([]bool, hi-lo+1),
		min:     lo,
	}
	copy(l.items, order)
	for _, v := range order {
		if l.members[v-lo] {
			return nil, fmt.Errorf("duplicate symbol %d in alphabet", v)
		}
		l.members[v-lo] = true
	}

	return l, nil
}

// NewByteList creates a list over [0, 255] in identity order.
func NewByteList() *List {
	return mustNew(IdentityOrder(256))
}

// NewDiffList creates a list over [-255, 255] in zig-zag order 0, 1, -1, 2, -2, ...
func NewDiffList() *List {
	return mustNew(ZigZagOrder(255))
}

// IdentityOrder returns 0, 1, ..., n-1.
func IdentityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	return order
}

// ZigZagOrder returns 0, 1, -1, 2, -2, ..., limit, -limit.
//
// Small magnitudes come first because they dominate after differencing.
func ZigZagOrder(limit int) []int {
	order := make([]int, 0, 2*limit+1)
	order = append(order, 0)
	for i := 1; i <= limit; i++ {
		order = append(order, i, -i)
	}

	return order
}

// Len returns the alphabet size.
func (l *List) Len() int {
	return len(l.items)
}

// Contains reports whether v belongs to the alphabet.
func (l *List) Contains(v int) bool {
	idx := v - l.min

	return idx >= 0 && idx < len(l.members) && l.members[idx]
}

// Encode returns the current rank of v and moves v to the front.
func (l *List) Encode(v int) (int, error) {
	if !l.Contains(v) {
		return 0, fmt.Errorf("%w: %d not in move-to-front alphabet", ErrInvalidSymbol, v)
	}
	rank := 0
	for l.items[rank] != v {
		rank++
	}
	l.promote(rank)

	return rank, nil
}

// Decode returns the symbol at rank and moves it to the front.
func (l *List) Decode(rank int) (int, error) {
	if rank < 0 || rank >= len(l.items) {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidRank, rank, len(l.items))
	}
	v := l.items[rank]
	l.promote(rank)

	return v, nil
}

// Order returns a copy of the current ordering, most recently used first.
func (l *List) Order() []int {
	order := make([]int, len(l.items))
	copy(order, l.items)

	return order
}

// promote moves the item at rank to the front, shifting the items ahead of it back by one.
func (l *List) promote(rank int) {
	if rank == 0 {
		return
	}
	v := l.items[rank]
	copy(l.items[1:rank+1], l.items[:rank])
	l.items[0] = v
}

func mustNew(order []int) *List {
	l, err := New(order)
	if err != nil {
		panic(fmt.Sprintf("mtf: bad built-in alphabet: %v", err))
	}

	return l
}
