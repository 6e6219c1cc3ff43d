package utils

import "math"

// CalculateEpley1RM estimates the one-rep max of a set. A single rep is
// already a max, anything else goes through Epley and is rounded.
func CalculateEpley1RM(weight float32, reps int) float32 {
	if reps <= 0 {
		return 0
	}
	if reps == 1 {
		return weight
	}

	return float32(math.Round(float64(weight * (1 + float32(reps)/30))))
}
