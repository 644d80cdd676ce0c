package scoring

import "math"

// clampRound rounds a raw factor sum and clamps it into the canonical
// 0-100 score range. Every numeric scorer applies this as its last step.
func clampRound(value float64) int {
	rounded := int(math.Round(value))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

func clampFloat(value float64, min float64, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
