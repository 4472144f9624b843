package sun

import (
	"math"
	"time"

	"github.com/thurmanmarka/sunwheel/internal/timeutil"
)

// Equatorial represents geocentric equatorial coordinates of the Sun.
// Both angles are in radians: RA in [0,2π), Dec in [-π/2,π/2].
type Equatorial struct {
	RA  float64
	Dec float64
}

// Obliquity of the ecliptic, radians. Treated as constant; the secular drift
// is far below this model's accuracy target.
var obliquity = timeutil.Deg2Rad(23.4397)

// perihelion is the argument of perihelion of the Earth, radians.
var perihelion = timeutil.Deg2Rad(102.9372)

// GeocentricEquatorial returns the Sun's RA/Dec at d days since J2000.0.
//
// This is a standard low-precision solar position model: mean anomaly plus
// equation of center, with no nutation or aberration terms. Accuracy is a
// fraction of a degree, which is enough for the horizon-event search built
// on top of it.
func GeocentricEquatorial(d float64) Equatorial {
	// Mean anomaly
	M := timeutil.Deg2Rad(357.5291 + 0.98560028*d)

	// Equation of center
	C := timeutil.Deg2Rad(1.9148)*math.Sin(M) +
		timeutil.Deg2Rad(0.02)*math.Sin(2*M) +
		timeutil.Deg2Rad(0.0003)*math.Sin(3*M)

	// Ecliptic longitude; +π because the model tracks the Earth as seen
	// from the Sun.
	L := M + C + perihelion + math.Pi

	ra := math.Atan2(math.Sin(L)*math.Cos(obliquity), math.Cos(L))
	dec := math.Asin(math.Sin(L) * math.Sin(obliquity))

	return Equatorial{
		RA:  timeutil.Normalize2Pi(ra),
		Dec: dec,
	}
}

// HourAngle returns the Sun's local hour angle at time t for an observer at
// the given longitude (degrees), in radians, normalized to (-π,π].
// Zero means the Sun is on the local meridian.
func HourAngle(t time.Time, lonDeg float64) float64 {
	eq := GeocentricEquatorial(timeutil.DaysSinceJ2000(t))
	lst := timeutil.LocalSiderealTime(t, lonDeg)
	return timeutil.NormalizeSignedPi(lst - eq.RA)
}

// Horizontal converts equatorial coordinates to local horizontal coordinates
// for an observer at (latDeg, lonDeg) at time t. Returns azimuth in [0,2π)
// (0 = North, increasing toward East) and altitude in [-π/2,π/2], radians.
func Horizontal(eq Equatorial, t time.Time, latDeg, lonDeg float64) (az, alt float64) {
	lat := timeutil.Deg2Rad(latDeg)
	lst := timeutil.LocalSiderealTime(t, lonDeg)
	H := timeutil.NormalizeSignedPi(lst - eq.RA)

	sinAlt := math.Sin(lat)*math.Sin(eq.Dec) +
		math.Cos(lat)*math.Cos(eq.Dec)*math.Cos(H)
	alt = math.Asin(sinAlt)

	// atan2 form gives a South-referenced azimuth; the +π shift re-references
	// it to North, increasing toward East.
	az = math.Atan2(math.Sin(H), math.Cos(H)*math.Sin(lat)-math.Tan(eq.Dec)*math.Cos(lat))
	az = timeutil.Normalize2Pi(az + math.Pi)

	return az, alt
}

// PositionAt composes the time base, the equatorial model and the horizon
// transform, returning azimuth [0,360) and altitude [-90,90] in degrees.
func PositionAt(latDeg, lonDeg float64, t time.Time) (azDeg, altDeg float64) {
	eq := GeocentricEquatorial(timeutil.DaysSinceJ2000(t))
	az, alt := Horizontal(eq, t, latDeg, lonDeg)
	return timeutil.Rad2Deg(az), timeutil.Rad2Deg(alt)
}

// AltitudeAt returns the Sun's geometric altitude in degrees at (latDeg,
// lonDeg) at time t. This is the quantity the event solvers sample.
func AltitudeAt(latDeg, lonDeg float64, t time.Time) float64 {
	_, altDeg := PositionAt(latDeg, lonDeg, t)
	return altDeg
}
