package solver

import (
	"time"
)

// Minimize finds the time in [start, end] at which f attains its smallest
// sampled value, using a coarse scan at `step` followed by a linear re-scan
// at `fineStep` over ±window around the coarse minimizer.
//
// The refinement stays linear rather than derivative-based: the functions
// handled here (absolute hour angle over a day) are smooth and unimodal near
// their minimum, so an exhaustive local scan is robust at a bounded, small
// number of evaluations.
func Minimize(f Func, start, end time.Time, step time.Duration, window, fineStep time.Duration) (time.Time, bool) {
	if !start.Before(end) || step <= 0 || fineStep <= 0 {
		return time.Time{}, false
	}

	bestT := start
	bestV := f(start)
	for t := start.Add(step); !t.After(end); t = t.Add(step) {
		if v := f(t); v < bestV {
			bestT, bestV = t, v
		}
	}

	lo := bestT.Add(-window)
	hi := bestT.Add(window)
	if lo.Before(start) {
		lo = start
	}
	if hi.After(end) {
		hi = end
	}

	for t := lo; !t.After(hi); t = t.Add(fineStep) {
		if v := f(t); v < bestV {
			bestT, bestV = t, v
		}
	}

	return bestT, true
}
