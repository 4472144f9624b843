package sun

import (
	"math"
	"time"

	"github.com/thurmanmarka/sunwheel/internal/solver"
	"github.com/thurmanmarka/sunwheel/internal/timeutil"
)

// HorizonAltitude is the altitude (degrees) of the Sun's center when its
// apparent upper limb touches the horizon under standard conditions:
// -50' ≈ -0.833°, covering atmospheric refraction plus the solar
// semidiameter. This is the canonical rise/set threshold for the package.
const HorizonAltitude = -0.833

const (
	// scanStep is the coarse sampling interval for day scans.
	scanStep = 10 * time.Minute

	// bisectIterations narrows a 10-minute bracket to well under a second,
	// far beyond model accuracy. A fixed count keeps the amount of work
	// per event bounded and deterministic.
	bisectIterations = 14

	// transitWindow / transitStep bound the linear refinement around the
	// coarse hour-angle minimum.
	transitWindow = 15 * time.Minute
	transitStep   = time.Minute
)

// Event is a refined horizon crossing: its UTC instant and the Sun's azimuth
// there, rounded to the nearest integer degree. OK is false when the Sun
// never crosses the target altitude that day (polar day or night); Azimuth
// is 0 in that case.
type Event struct {
	Time    time.Time
	Azimuth int
	OK      bool
}

// RiseSetForDate computes sunrise and sunset for the local calendar day of
// `date` at (lat, lon). The day window [local midnight, +24h) is taken from
// date's Location; times are returned in UTC.
func RiseSetForDate(lat, lon float64, date time.Time) (rise, set Event) {
	return CrossingsForDate(lat, lon, date, HorizonAltitude)
}

// CrossingsForDate finds the times the Sun's altitude crosses targetAlt
// (degrees) during the local calendar day of `date`: the upward crossing
// (rise-like) and the downward crossing (set-like). It scans the day at
// 10-minute steps and refines each bracketed crossing by bisection.
func CrossingsForDate(lat, lon float64, date time.Time, targetAlt float64) (rise, set Event) {
	start, end := dayWindow(date)

	f := func(t time.Time) float64 {
		return AltitudeAt(lat, lon, t) - targetAlt
	}

	up, down := solver.ScanCrossings(f, start, end, scanStep, bisectIterations)

	if up.OK {
		rise = Event{Time: up.Time.UTC(), Azimuth: azimuthAt(lat, lon, up.Time), OK: true}
	}
	if down.OK {
		set = Event{Time: down.Time.UTC(), Azimuth: azimuthAt(lat, lon, down.Time), OK: true}
	}

	return rise, set
}

// TransitForDate returns the time of solar transit (meridian passage, solar
// noon) for the local calendar day of `date`: the minimum of the absolute
// hour angle over the day, located by a 10-minute coarse scan and a 1-minute
// linear refinement over ±15 minutes. The result is independent of any
// altitude threshold. ok comes from the minimizer and is false only for a
// degenerate scan window, which a calendar day never produces.
func TransitForDate(lat, lon float64, date time.Time) (transit time.Time, ok bool) {
	start, end := dayWindow(date)

	f := func(t time.Time) float64 {
		return math.Abs(timeutil.Rad2Deg(HourAngle(t, lon)))
	}

	at, ok := solver.Minimize(f, start, end, scanStep, transitWindow, transitStep)
	if !ok {
		return time.Time{}, false
	}
	return at.UTC(), true
}

// dayWindow resolves [local midnight, +24h) for date in its own Location.
func dayWindow(date time.Time) (start, end time.Time) {
	year, month, day := date.Date()
	start = time.Date(year, month, day, 0, 0, 0, 0, date.Location())
	return start, start.Add(24 * time.Hour)
}

func azimuthAt(lat, lon float64, t time.Time) int {
	azDeg, _ := PositionAt(lat, lon, t)
	return int(math.Round(azDeg)) % 360
}
