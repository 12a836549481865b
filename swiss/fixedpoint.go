/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
// Package swiss implements a pragmatic USCF-style Swiss pairing and
// scoring engine. It is a pure function library: it performs no I/O,
// starts no goroutines, and never logs — callers own persistence and
// presentation.
package swiss

import "fmt"

// FixedPoint is a score/tiebreak value scaled by 1000, giving three
// decimal digits of precision without binary-float drift across many
// increments (spec: score precision, §4.1/§9).
type FixedPoint int64

const (
	scale = 1000

	// Zero is the additive identity.
	Zero FixedPoint = 0
	// Half is a drawn result or a half-point bye.
	Half FixedPoint = scale / 2
	// Full is a win or a full-point bye.
	Full FixedPoint = scale
)

// FromFloat converts a float64 score (e.g. 1.5) into a FixedPoint.
func FromFloat(f float64) FixedPoint {
	return FixedPoint(f*scale + sign(f)*0.5)
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}

// Float returns the floating point representation of the value, for
// display or JSON encoding at the package boundary only.
func (f FixedPoint) Float() float64 {
	return float64(f) / scale
}

// String renders the value with up to 3 decimal digits, trimming
// trailing zeros the way a scoreboard would (e.g. "1", "0.5", "2.5").
func (f FixedPoint) String() string {
	whole := int64(f) / scale
	frac := int64(f) % scale
	if frac < 0 {
		frac = -frac
	}
	if frac == 0 {
		return fmt.Sprintf("%d", whole)
	}
	s := fmt.Sprintf("%03d", frac)
	for len(s) > 1 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	return fmt.Sprintf("%d.%s", whole, s)
}

// Add returns f+g.
func (f FixedPoint) Add(g FixedPoint) FixedPoint { return f + g }

// Sub returns f-g.
func (f FixedPoint) Sub(g FixedPoint) FixedPoint { return f - g }

// Mul returns f*g, treating both operands as already scale-shifted
// fixed-point values (used by Sonneborn-Berger: opponent score times the
// [0, Half, Full] fraction earned against them).
func (f FixedPoint) Mul(g FixedPoint) FixedPoint {
	return FixedPoint(int64(f) * int64(g) / scale)
}

// Less reports whether f < g.
func (f FixedPoint) Less(g FixedPoint) bool { return f < g }
