package utils

import "math"

// Balances are kept in integer minor currency units. Division only happens
// when a remainder is spread across participant weights; every per-member
// amount is rounded half away from zero at that final step.

// RoundShare rounds unitShare * weight to the nearest minor unit.
func RoundShare(unitShare float64, weight int) int64 {
	return int64(math.Round(unitShare * float64(weight)))
}

// UnitShare divides a remainder across a total weight without rounding.
func UnitShare(remainder int64, totalWeight int) float64 {
	return float64(remainder) / float64(totalWeight)
}

// AbsInt64 returns the absolute value of an int64
func AbsInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
