package timeutil

import (
	"math"
	"time"
)

// -----------------------------
// Julian Day and time relative to J2000
// -----------------------------

// J2000 is the Julian Day of the J2000.0 epoch (2000-01-01 12:00:00 UTC).
const J2000 = 2451545.0

// JulianDay returns the Julian Day for t, using the classical Gregorian
// calendar formula over the UTC calendar fields of t.
func JulianDay(t time.Time) float64 {
	u := t.UTC()
	year, month, day := u.Date()
	hour := float64(u.Hour()) +
		float64(u.Minute())/60.0 +
		float64(u.Second())/3600.0 +
		float64(u.Nanosecond())/(3600.0*1e9)

	y := year
	m := int(month)

	if m <= 2 {
		y -= 1
		m += 12
	}

	A := y / 100
	B := 2 - A + A/4

	jd := math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + float64(B) - 1524.5 +
		hour/24.0

	return jd
}

// DaysSinceJ2000 returns the number of days since the J2000.0 epoch,
// derived from JulianDay so the whole stack shares one time base.
func DaysSinceJ2000(t time.Time) float64 {
	return JulianDay(t) - J2000
}

// JulianCenturies returns centuries since J2000.0.
func JulianCenturies(t time.Time) float64 {
	return DaysSinceJ2000(t) / 36525.0
}

// -----------------------------
// Sidereal time
// -----------------------------

// GMST returns Greenwich Mean Sidereal Time at t, in degrees [0,360).
//
// The centuries-scale polynomial terms are negligible over a human lifetime
// but are kept for numerical parity with the reference polynomial:
//
//	θ = 280.46061837 + 360.98564736629·d + 0.000387933·T² − T³/38710000
func GMST(t time.Time) float64 {
	d := DaysSinceJ2000(t)
	T := d / 36525.0

	theta := 280.46061837 +
		360.98564736629*d +
		0.000387933*T*T -
		T*T*T/38710000.0

	return Normalize360(theta)
}

// LocalSiderealTime returns the local mean sidereal time in radians [0,2π)
// for an observer at the given longitude (degrees, east positive).
func LocalSiderealTime(t time.Time, lonDeg float64) float64 {
	return Deg2Rad(Normalize360(GMST(t) + lonDeg))
}

// -----------------------------
// Degree/radian helpers and angle normalization.
// -----------------------------

func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180.0
}

func Rad2Deg(r float64) float64 {
	return r * 180.0 / math.Pi
}

// Normalize360 wraps d into [0,360).
func Normalize360(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

// Normalize2Pi wraps r into [0,2π).
func Normalize2Pi(r float64) float64 {
	r = math.Mod(r, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return r
}

// NormalizeSignedPi wraps r into (-π,π].
func NormalizeSignedPi(r float64) float64 {
	for r > math.Pi {
		r -= 2 * math.Pi
	}
	for r <= -math.Pi {
		r += 2 * math.Pi
	}
	return r
}
