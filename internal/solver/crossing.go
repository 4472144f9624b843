package solver

import (
	"time"
)

// Func is a scalar function of time, e.g. "altitude minus threshold" in
// degrees or "absolute hour angle" in degrees.
type Func func(t time.Time) float64

// Direction describes which way a zero crossing is traversed.
type Direction int

const (
	// RisingEdge means f goes from negative to non-negative (a rise).
	RisingEdge Direction = iota
	// FallingEdge means f goes from non-negative to negative (a set).
	FallingEdge
)

// Crossing is the outcome of a crossing search. OK is false when the
// function never crosses zero in the requested direction; at high latitudes
// that is a normal result, not a failure.
type Crossing struct {
	Time time.Time
	OK   bool
}

// ScanCrossings samples f at fixed steps across [start, end] and locates the
// first rising and the first falling zero crossing in a single pass. Each
// bracketing interval is then refined by bisection with the given iteration
// count. The scan stops early once both crossings have been found.
func ScanCrossings(f Func, start, end time.Time, step time.Duration, iterations int) (rise, set Crossing) {
	if !start.Before(end) || step <= 0 {
		return Crossing{}, Crossing{}
	}

	prevT := start
	prevV := f(prevT)

	for t := start.Add(step); !t.After(end); t = t.Add(step) {
		v := f(t)

		if !rise.OK && prevV < 0 && v >= 0 {
			rise = Crossing{Time: Bisect(f, prevT, t, RisingEdge, iterations), OK: true}
		}
		if !set.OK && prevV >= 0 && v < 0 {
			set = Crossing{Time: Bisect(f, prevT, t, FallingEdge, iterations), OK: true}
		}
		if rise.OK && set.OK {
			break
		}

		prevT, prevV = t, v
	}

	return rise, set
}

// Bisect narrows a bracketing interval [a, b] around a zero crossing of f in
// the given direction, running a fixed number of iterations, and returns the
// midpoint of the final interval.
//
// Invariant: for RisingEdge, f(a) < 0 <= f(b); for FallingEdge,
// f(a) >= 0 > f(b). Each step keeps the half whose endpoint signs still
// bracket the crossing.
func Bisect(f Func, a, b time.Time, dir Direction, iterations int) time.Time {
	for i := 0; i < iterations; i++ {
		mid := a.Add(b.Sub(a) / 2)
		v := f(mid)

		var crossed bool
		switch dir {
		case RisingEdge:
			crossed = v >= 0
		case FallingEdge:
			crossed = v < 0
		}

		if crossed {
			b = mid
		} else {
			a = mid
		}
	}

	return a.Add(b.Sub(a) / 2)
}
