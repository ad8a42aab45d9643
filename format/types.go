package format

import "strings"

type (
	Strategy        uint8
	CompressionType uint8
)

const (
	StrategyBytes                Strategy = 0x1 // StrategyBytes costs raw sample values.
	StrategyDifferences          Strategy = 0x2 // StrategyDifferences costs first differences.
	StrategyDoubleDifferences    Strategy = 0x3 // StrategyDoubleDifferences costs 2D prediction residuals.
	StrategyOptimisticRLE        Strategy = 0x4 // StrategyOptimisticRLE costs differences with every zero treated as free.
	StrategyLessOptimisticRLE    Strategy = 0x5 // StrategyLessOptimisticRLE costs differences left over after run removal.
	StrategyRLE                  Strategy = 0x6 // StrategyRLE costs leftover differences plus the run lengths.
	StrategyMTFBytes             Strategy = 0x7 // StrategyMTFBytes costs move-to-front ranks of raw samples.
	StrategyMTFDifferences       Strategy = 0x8 // StrategyMTFDifferences costs move-to-front ranks of differences.
	StrategyMTFDoubleDifferences Strategy = 0x9 // StrategyMTFDoubleDifferences costs move-to-front ranks of residuals.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Strategies lists every strategy in report order.
var Strategies = []Strategy{
	StrategyBytes,
	StrategyDifferences,
	StrategyDoubleDifferences,
	StrategyOptimisticRLE,
	StrategyLessOptimisticRLE,
	StrategyRLE,
	StrategyMTFBytes,
	StrategyMTFDifferences,
	StrategyMTFDoubleDifferences,
}

// CompressionTypes lists every reference compression type.
var CompressionTypes = []CompressionType{
	CompressionNone,
	CompressionZstd,
	CompressionS2,
	CompressionLZ4,
}

func (s Strategy) String() string {
	switch s {
	case StrategyBytes:
		return "Byte"
	case StrategyDifferences:
		return "Difference"
	case StrategyDoubleDifferences:
		return "Double difference"
	case StrategyOptimisticRLE:
		return "Optimistic RLE"
	case StrategyLessOptimisticRLE:
		return "Less optimistic RLE"
	case StrategyRLE:
		return "RLE"
	case StrategyMTFBytes:
		return "MTF byte"
	case StrategyMTFDifferences:
		return "MTF difference"
	case StrategyMTFDoubleDifferences:
		return "MTF double difference"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType returns the compression type named by s, case-insensitively.
// The second result is false for unknown names.
func ParseCompressionType(s string) (CompressionType, bool) {
	for _, c := range CompressionTypes {
		if strings.EqualFold(c.String(), s) {
			return c, true
		}
	}

	return 0, false
}
