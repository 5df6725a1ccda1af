package services

import "math/rand/v2"

// MaxRandomIncrement is the exclusive upper bound of RandomProgressIncrement.
const MaxRandomIncrement = 10

// ProgressIncrement returns how many percentage points a running trip advances
// on one monitor tick. It must return a value >= 0.
type ProgressIncrement func() int

// RandomProgressIncrement draws uniformly from 0..9.
func RandomProgressIncrement() int {
	return rand.IntN(MaxRandomIncrement) //nolint:gosec // simulation, not security sensitive
}

// FixedProgressIncrement always advances by step.
func FixedProgressIncrement(step int) ProgressIncrement {
	return func() int { return step }
}
