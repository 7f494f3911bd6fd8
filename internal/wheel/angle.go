// Package wheel computes where the prize wheel stops and how it gets there.
//
// Slices are equal-width wedges numbered in render order starting at angle 0.
// The pointer sits at angle 0, so landing on a slice means rotating the wheel
// by the negative of the slice's center.
package wheel

import "math"

// FullTurn is one revolution in radians
const FullTurn = 2 * math.Pi

// MinExtraTurns is the fewest whole turns a spin makes before landing
const MinExtraTurns = 2

// SliceWidth returns the angular width of one slice
func SliceWidth(total int) float64 {
	if total < 1 {
		return FullTurn
	}
	return FullTurn / float64(total)
}

// TargetAngle returns the wheel angle that centers slice index under the pointer
func TargetAngle(index, total int) float64 {
	slice := SliceWidth(total)
	return -(float64(index)*slice + slice/2)
}

// SliceAt returns the slice sitting under the pointer for a wheel angle
func SliceAt(angle float64, total int) int {
	if total < 1 {
		return 0
	}
	// pointer position in wheel coordinates
	pos := math.Mod(-angle, FullTurn)
	if pos < 0 {
		pos += FullTurn
	}
	idx := int(pos / SliceWidth(total))
	if idx >= total {
		idx = total - 1
	}
	return idx
}

// shortestDelta returns the signed rotation in (-π, π] that brings angle to a
// multiple of a full turn
func shortestDelta(angle float64) float64 {
	d := math.Mod(-angle, FullTurn)
	if d > math.Pi {
		d -= FullTurn
	} else if d <= -math.Pi {
		d += FullTurn
	}
	return d
}
