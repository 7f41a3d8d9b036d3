// Package gamemath holds small numeric helpers shared by the simulation.
package gamemath

import "math"

// ClampAbs clamps v to [-limit, limit], keeping its sign.
func ClampAbs(v, limit float64) float64 {
	if math.Abs(v) > limit {
		return math.Copysign(limit, v)
	}
	return v
}

