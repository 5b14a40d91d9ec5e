package analytics

import "math"

// Accumulation runs at full float64 precision; rounding happens once, on the
// values that leave the engine. Currency gets 2 decimals, percentages get 1.

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
