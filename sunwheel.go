// Package sunwheel computes the Sun's apparent position in the sky
// (azimuth and altitude) and the horizon events of a day: sunrise, sunset
// and solar transit (solar noon).
//
// The underlying model is a low-order solar ephemeris built on a shared
// sidereal time base. It is accurate to a fraction of a degree, which is
// fine for display and scheduling but not for telescope pointing. Event
// times are found numerically by scanning the local calendar day and then
// refining with bisection (for horizon crossings) or a short linear scan
// (for the transit).
//
// All functions are pure. There is no hidden state and no I/O, so they are
// safe to call concurrently.
package sunwheel

import (
	"errors"
	"time"

	"github.com/thurmanmarka/sunwheel/internal/sun"
)

// TwilightKind identifies the type of twilight based on the Sun's altitude
// below the horizon.
type TwilightKind int

const (
	// TwilightCivil corresponds to the Sun's center at -6 degrees altitude.
	TwilightCivil TwilightKind = iota

	// TwilightNautical corresponds to the Sun's center at -12 degrees altitude.
	TwilightNautical

	// TwilightAstronomical corresponds to the Sun's center at -18 degrees altitude.
	TwilightAstronomical
)

// Coordinates represent an observer's location in degrees.
//
// Values outside [-90,90] latitude or [-180,180] longitude are not
// validated or clamped. The math still works on them, but the result is
// not physically meaningful; callers are responsible for input sanity.
type Coordinates struct {
	Lat float64 // degrees, north positive
	Lon float64 // degrees, east positive (west negative, e.g. -105 for 105°W)
}

// Position is the Sun's location in the observer's sky, in degrees.
type Position struct {
	Azimuth  float64 // [0,360), 0 = North, 90 = East
	Altitude float64 // [-90,90], negative below the horizon
}

// SunEvents holds the horizon crossings of one local calendar day.
// HasRise/HasSet are false when the Sun does not cross the horizon that day
// (polar day or polar night); the corresponding time is the zero value and
// the azimuth is 0. Absence is a normal outcome, not an error.
type SunEvents struct {
	Rise time.Time
	Set  time.Time

	HasRise bool
	HasSet  bool

	// RiseAzimuth / SetAzimuth are the Sun's azimuths at the event times,
	// rounded to the nearest integer degree for display.
	RiseAzimuth int
	SetAzimuth  int
}

// PhaseWindow represents a continuous time interval where the Sun's altitude
// stays within a particular range (e.g. golden hour or blue hour).
type PhaseWindow struct {
	Start time.Time
	End   time.Time
}

// DaylightPhases holds the morning and evening windows for a given phase
// (e.g. golden hour or blue hour).
type DaylightPhases struct {
	Morning PhaseWindow
	Evening PhaseWindow

	// HasMorning / HasEvening indicate whether the corresponding window
	// exists on this date at this location (high latitudes can be weird).
	HasMorning bool
	HasEvening bool
}

// ErrNoCrossing is returned by the convenience wrappers when the Sun never
// crosses the altitude of interest on the requested day.
var ErrNoCrossing = errors.New("sun does not cross this altitude on this date")

// SunPosition returns the Sun's azimuth and altitude for an observer at loc
// at instant t. Idempotent: identical inputs give bit-identical outputs.
func SunPosition(loc Coordinates, t time.Time) Position {
	az, alt := sun.PositionAt(loc.Lat, loc.Lon, t)
	return Position{Azimuth: az, Altitude: alt}
}

// RiseSet computes sunrise and sunset for the local calendar day of `date`
// at loc. The day window [local midnight, +24h) comes from date.Location(),
// so the time zone is an explicit per-call input, never ambient state.
// Returned times are in date's Location.
//
// The horizon threshold is -0.833° (refraction plus solar semidiameter);
// see internal/sun.HorizonAltitude.
func RiseSet(loc Coordinates, date time.Time) SunEvents {
	rise, set := sun.RiseSetForDate(loc.Lat, loc.Lon, date)
	return eventsIn(date.Location(), rise, set)
}

// SolarTransit returns the time of solar transit (solar noon) for the local
// calendar day of `date` at loc: the instant of minimum absolute hour angle,
// independent of any horizon threshold. ok is false only if the day scan
// degenerates, which never happens for a real calendar day; callers should
// still check it rather than assume.
func SolarTransit(loc Coordinates, date time.Time) (transit time.Time, ok bool) {
	at, ok := sun.TransitForDate(loc.Lat, loc.Lon, date)
	if !ok {
		return time.Time{}, false
	}
	return at.In(date.Location()), true
}

// TwilightFor computes twilight times (dawn and dusk) of the given kind for
// a location and local calendar date: Rise is the dawn (upward crossing of
// the twilight altitude), Set is the dusk (downward crossing).
//
// For example, TwilightCivil reports where the Sun's altitude crosses -6°.
// ErrNoCrossing is returned when neither crossing exists on that day.
func TwilightFor(loc Coordinates, date time.Time, kind TwilightKind) (SunEvents, error) {
	var targetAlt float64
	switch kind {
	case TwilightCivil:
		targetAlt = -6.0
	case TwilightNautical:
		targetAlt = -12.0
	case TwilightAstronomical:
		targetAlt = -18.0
	default:
		return SunEvents{}, errors.New("unknown TwilightKind")
	}

	dawn, dusk := sun.CrossingsForDate(loc.Lat, loc.Lon, date, targetAlt)
	if !dawn.OK && !dusk.OK {
		return SunEvents{}, ErrNoCrossing
	}
	return eventsIn(date.Location(), dawn, dusk), nil
}

// DaylightHours calculates the duration of daylight (time between sunrise
// and sunset) at loc on the given date, in hours. If the Sun does not rise
// or does not set that day it returns 0 and ErrNoCrossing.
func DaylightHours(loc Coordinates, date time.Time) (float64, error) {
	ev := RiseSet(loc, date)
	if !ev.HasRise || !ev.HasSet {
		return 0, ErrNoCrossing
	}
	return ev.Set.Sub(ev.Rise).Hours(), nil
}

// GoldenHourFor computes the golden hour intervals for the given local
// calendar date and location: the periods when the Sun's center altitude is
// between -4° and +6°. Morning is the climb through that band after dawn,
// Evening the descent before dusk.
func GoldenHourFor(loc Coordinates, date time.Time) (DaylightPhases, error) {
	return altitudeBand(loc, date, -4.0, 6.0)
}

// BlueHourFor computes the blue hour intervals for the given local calendar
// date and location: the periods when the Sun's center altitude is between
// -6° and -4°.
func BlueHourFor(loc Coordinates, date time.Time) (DaylightPhases, error) {
	return altitudeBand(loc, date, -6.0, -4.0)
}

// altitudeBand finds the morning and evening windows during which the Sun's
// altitude climbs (resp. descends) through [lowAlt, highAlt].
func altitudeBand(loc Coordinates, date time.Time, lowAlt, highAlt float64) (DaylightPhases, error) {
	locTZ := date.Location()

	mLow, eLow := sun.CrossingsForDate(loc.Lat, loc.Lon, date, lowAlt)
	mHigh, eHigh := sun.CrossingsForDate(loc.Lat, loc.Lon, date, highAlt)

	var phases DaylightPhases

	if mLow.OK && mHigh.OK {
		start := mLow.Time.In(locTZ)
		end := mHigh.Time.In(locTZ)
		if end.After(start) {
			phases.Morning = PhaseWindow{Start: start, End: end}
			phases.HasMorning = true
		}
	}

	if eHigh.OK && eLow.OK {
		start := eHigh.Time.In(locTZ)
		end := eLow.Time.In(locTZ)
		if end.After(start) {
			phases.Evening = PhaseWindow{Start: start, End: end}
			phases.HasEvening = true
		}
	}

	if !phases.HasMorning && !phases.HasEvening {
		return DaylightPhases{}, ErrNoCrossing
	}

	return phases, nil
}

// eventsIn converts a pair of internal events into the public SunEvents,
// presenting times in the caller's zone.
func eventsIn(loc *time.Location, rise, set sun.Event) SunEvents {
	var ev SunEvents

	if rise.OK {
		ev.Rise = rise.Time.In(loc)
		ev.HasRise = true
		ev.RiseAzimuth = rise.Azimuth
	}
	if set.OK {
		ev.Set = set.Time.In(loc)
		ev.HasSet = true
		ev.SetAzimuth = set.Azimuth
	}

	return ev
}
