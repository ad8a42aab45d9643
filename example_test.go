package entropic_test

import (
	"fmt"

	entropic "github.com/TradeIdeasPhilip/entropic-qoi"
	"github.com/TradeIdeasPhilip/entropic-qoi/format"
)

func ExampleAnalyzeSamples() {
	// One scanline of a single channel.
	pix := []byte{10, 10, 10, 20, 20, 30}

	rep, err := entropic.AnalyzeSamples(pix, len(pix), 1)
	if err != nil {
		panic(err)
	}

	for _, s := range []format.Strategy{format.StrategyBytes, format.StrategyRLE} {
		fmt.Printf("%s: %d bytes\n", s, rep.Total(s))
	}
	fmt.Println("Best:", rep.Best())
	// Output:
	// Byte: 12 bytes
	// RLE: 24 bytes
	// Best: Optimistic RLE
}
