// Package utils holds small helpers shared by game logic.
package utils

import (
	"math/rand/v2"
)

// RandomFloat returns a random float64 in [0.0, 1.0) from the shared,
// concurrency-safe source
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}
