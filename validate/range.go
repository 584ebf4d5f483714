package validate

import "math"

// Finite reports whether value is neither NaN nor infinite.
func Finite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

func Positive(value float64) bool {
	return Finite(value) && value > 0
}

func NonNegative(value float64) bool {
	return Finite(value) && value >= 0
}
