package mtf

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrders(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		order := IdentityOrder(256)
		require.Len(t, order, 256)
		require.Equal(t, 0, order[0])
		require.Equal(t, 255, order[255])
	})

	t.Run("zig-zag", func(t *testing.T) {
		order := ZigZagOrder(255)
		require.Len(t, order, 511)
		require.Equal(t, []int{0, 1, -1, 2, -2, 3, -3}, order[:7])
		require.Equal(t, []int{255, -255}, order[509:])

		sorted := slices.Clone(order)
		slices.Sort(sorted)
		for i, v := range sorted {
			require.Equal(t, i-255, v)
		}
	})
}

func TestEncode_ByteList(t *testing.T) {
	l := NewByteList()

	rank, err := l.Encode(5)
	require.NoError(t, err)
	require.Equal(t, 5, rank)

	rank, err = l.Encode(5)
	require.NoError(t, err)
	require.Equal(t, 0, rank)

	rank, err = l.Encode(3)
	require.NoError(t, err)
	require.Equal(t, 4, rank)

	require.Equal(t, []int{3, 5, 0, 1, 2, 4, 6}, l.Order()[:7])
}

func TestEncode_DiffList(t *testing.T) {
	l := NewDiffList()
	require.Equal(t, 511, l.Len())

	tests := []struct {
		value int
		rank  int
	}{
		{0, 0},
		{-1, 2},
		{-1, 0},
		{0, 1},
		{255, 509},
		{-255, 510},
		{-255, 0},
	}
	for _, tt := range tests {
		rank, err := l.Encode(tt.value)
		require.NoError(t, err)
		require.Equal(t, tt.rank, rank, "encode(%d)", tt.value)
	}
}

func TestEncode_InvalidSymbol(t *testing.T) {
	l := NewByteList()
	before := l.Order()

	_, err := l.Encode(256)
	require.ErrorIs(t, err, ErrInvalidSymbol)
	_, err = l.Encode(-1)
	require.ErrorIs(t, err, ErrInvalidSymbol)

	require.Equal(t, before, l.Order(), "a rejected symbol must not disturb the list")

	d := NewDiffList()
	_, err = d.Encode(256)
	require.ErrorIs(t, err, ErrInvalidSymbol)
}

func TestDecode_InvalidRank(t *testing.T) {
	l := NewByteList()

	_, err := l.Decode(256)
	require.ErrorIs(t, err, ErrInvalidRank)
	_, err = l.Decode(-1)
	require.ErrorIs(t, err, ErrInvalidRank)
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	enc := NewDiffList()
	dec := NewDiffList()

	for range 5000 {
		// Skew toward small values so ranks near the front get exercised.
		v := rng.Intn(21) - 10
		if rng.Intn(10) == 0 {
			v = rng.Intn(511) - 255
		}

		rank, err := enc.Encode(v)
		require.NoError(t, err)
		got, err := dec.Decode(rank)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
	require.Equal(t, enc.Order(), dec.Order())
}

func TestRepeatEncodesAsZero(t *testing.T) {
	l := NewByteList()
	for v := range 256 {
		_, err := l.Encode(v)
		require.NoError(t, err)
		rank, err := l.Encode(v)
		require.NoError(t, err)
		require.Zero(t, rank)
	}
}

func TestListStaysPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	l := NewByteList()
	for range 2000 {
		_, err := l.Encode(rng.Intn(256))
		require.NoError(t, err)
	}

	order := l.Order()
	slices.Sort(order)
	require.Equal(t, IdentityOrder(256), order)
}

func TestNew(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)

	_, err = New([]int{1, 2, 1})
	require.Error(t, err)

	l, err := New([]int{7, -2, 4})
	require.NoError(t, err)
	require.False(t, l.Contains(0))

	rank, err := l.Encode(4)
	require.NoError(t, err)
	require.Equal(t, 2, rank)
	require.Equal(t, []int{4, 7, -2}, l.Order())
}

func BenchmarkEncode(b *testing.B) {
	l := NewDiffList()
	rng := rand.New(rand.NewSource(1))
	values := make([]int, 4096)
	for i := range values {
		values[i] = rng.Intn(511) - 255
	}

	b.ResetTimer()
	i := 0
	for b.Loop() {
		_, _ = l.Encode(values[i&4095])
		i++
	}
}
