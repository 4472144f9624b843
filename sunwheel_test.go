package sunwheel_test

import (
	"math"
	"testing"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/solstice"
	"github.com/nathan-osman/go-sunrise"
	"github.com/sixdouglas/suncalc"

	"github.com/thurmanmarka/sunwheel"
)

// angleDiff returns the absolute circular difference of two angles in degrees.
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 360)
	if d < -180 {
		d += 360
	}
	if d > 180 {
		d -= 360
	}
	return math.Abs(d)
}

func diffMinutes(a, b time.Time) float64 {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d.Minutes()
}

// TestSunPositionAgainstSuncalc cross-checks azimuth/altitude against the
// suncalc port, an independent implementation of the same model family.
// suncalc reports azimuth South-referenced; shift by 180° to compare.
// Its sidereal polynomial is lower order, so allow a degree of slack.
func TestSunPositionAgainstSuncalc(t *testing.T) {
	locations := []sunwheel.Coordinates{
		{Lat: 40.7128, Lon: -74.0060},  // New York
		{Lat: 56.9496, Lon: 24.1052},   // Riga
		{Lat: -33.8688, Lon: 151.2093}, // Sydney
		{Lat: -0.1807, Lon: -78.4678},  // Quito
	}

	times := []time.Time{
		time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC),
		time.Date(2024, time.June, 21, 18, 30, 0, 0, time.UTC),
		time.Date(2024, time.October, 3, 2, 45, 0, 0, time.UTC),
	}

	for _, loc := range locations {
		for _, at := range times {
			got := sunwheel.SunPosition(loc, at)

			ref := suncalc.GetPosition(at, loc.Lat, loc.Lon)
			refAz := math.Mod(ref.Azimuth*180/math.Pi+180+360, 360)
			refAlt := ref.Altitude * 180 / math.Pi

			if d := angleDiff(got.Azimuth, refAz); d > 1.0 {
				t.Errorf("lat=%v lon=%v %v: azimuth %.3f vs suncalc %.3f (diff %.3f)",
					loc.Lat, loc.Lon, at, got.Azimuth, refAz, d)
			}
			if d := math.Abs(got.Altitude - refAlt); d > 1.0 {
				t.Errorf("lat=%v lon=%v %v: altitude %.3f vs suncalc %.3f (diff %.3f)",
					loc.Lat, loc.Lon, at, got.Altitude, refAlt, d)
			}
		}
	}
}

// TestRiseSetAgainstGoSunrise cross-checks rise/set times against the
// NOAA-based go-sunrise used elsewhere for the same job.
func TestRiseSetAgainstGoSunrise(t *testing.T) {
	cases := []struct {
		name string
		loc  sunwheel.Coordinates
		date time.Time
	}{
		{
			name: "New York spring",
			loc:  sunwheel.Coordinates{Lat: 40.7128, Lon: -74.0060},
			date: time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Phoenix winter",
			loc:  sunwheel.Coordinates{Lat: 33.4484, Lon: -112.0740},
			date: time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Sydney summer",
			loc:  sunwheel.Coordinates{Lat: -33.8688, Lon: 151.2093},
			date: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Quito equinox",
			loc:  sunwheel.Coordinates{Lat: -0.1807, Lon: -78.4678},
			date: time.Date(2024, time.September, 22, 0, 0, 0, 0, time.UTC),
		},
	}

	const maxErrMinutes = 5.0

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := sunwheel.RiseSet(tc.loc, tc.date)
			if !ev.HasRise || !ev.HasSet {
				t.Fatalf("expected both events, got rise=%v set=%v", ev.HasRise, ev.HasSet)
			}

			refRise, refSet := sunrise.SunriseSunset(
				tc.loc.Lat, tc.loc.Lon,
				tc.date.Year(), tc.date.Month(), tc.date.Day())

			riseErr := diffMinutes(ev.Rise, refRise)
			setErr := diffMinutes(ev.Set, refSet)

			t.Logf("rise err %.2f min, set err %.2f min", riseErr, setErr)

			if riseErr > maxErrMinutes {
				t.Errorf("rise %v vs reference %v (err %.2f min)", ev.Rise, refRise, riseErr)
			}
			if setErr > maxErrMinutes {
				t.Errorf("set %v vs reference %v (err %.2f min)", ev.Set, refSet, setErr)
			}
		})
	}
}

// TestEquinoxGeometry derives the equinox date from a Meeus-grade source and
// checks the classic geometry: declination near zero means the Sun transits
// almost overhead on the equator and rises/sets nearly due east/west.
func TestEquinoxGeometry(t *testing.T) {
	y, m, d := julian.JDToCalendar(solstice.March(2024))
	date := time.Date(y, time.Month(m), int(d), 0, 0, 0, 0, time.UTC)
	t.Logf("March equinox date: %s", date.Format("2006-01-02"))

	equator := sunwheel.Coordinates{Lat: 0, Lon: 0}

	transit, ok := sunwheel.SolarTransit(equator, date)
	if !ok {
		t.Fatal("SolarTransit reported no result")
	}

	pos := sunwheel.SunPosition(equator, transit)
	if pos.Altitude < 85 {
		t.Errorf("equator transit altitude = %.2f, want > 85", pos.Altitude)
	}

	ev := sunwheel.RiseSet(equator, date)
	if !ev.HasRise || !ev.HasSet {
		t.Fatal("expected rise and set on the equator")
	}
	if angleDiff(float64(ev.RiseAzimuth), 90) > 3 {
		t.Errorf("equinox rise azimuth = %d, want ~90", ev.RiseAzimuth)
	}
	if angleDiff(float64(ev.SetAzimuth), 270) > 3 {
		t.Errorf("equinox set azimuth = %d, want ~270", ev.SetAzimuth)
	}

	// Rise and set azimuths mirror each other about the meridian.
	midLat := sunwheel.Coordinates{Lat: 45, Lon: 0}
	evMid := sunwheel.RiseSet(midLat, date)
	if !evMid.HasRise || !evMid.HasSet {
		t.Fatal("expected rise and set at 45N")
	}
	if sum := float64(evMid.RiseAzimuth + evMid.SetAzimuth); math.Abs(sum-360) > 3 {
		t.Errorf("rise+set azimuths = %v, want ~360 (symmetry about 180)", sum)
	}
}

func TestPolarMidsummer(t *testing.T) {
	// Longyearbyen, well above the Arctic Circle: the Sun neither rises nor
	// sets in late June. This is a normal result, not an error.
	svalbard := sunwheel.Coordinates{Lat: 78.22, Lon: 15.65}
	date := time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC)

	ev := sunwheel.RiseSet(svalbard, date)
	if ev.HasRise || ev.HasSet {
		t.Errorf("expected no events, got rise=%v set=%v", ev.HasRise, ev.HasSet)
	}
	if ev.RiseAzimuth != 0 || ev.SetAzimuth != 0 {
		t.Errorf("absent events must carry azimuth 0, got %d / %d", ev.RiseAzimuth, ev.SetAzimuth)
	}

	if _, err := sunwheel.DaylightHours(svalbard, date); err == nil {
		t.Error("DaylightHours should report ErrNoCrossing during polar day")
	}

	// Transit is still well defined: the hour angle minimum exists every day.
	if _, ok := sunwheel.SolarTransit(svalbard, date); !ok {
		t.Error("SolarTransit should still resolve during polar day")
	}
}

func TestIdempotence(t *testing.T) {
	loc := sunwheel.Coordinates{Lat: 51.5074, Lon: -0.1278}
	at := time.Date(2024, time.August, 5, 14, 30, 0, 0, time.UTC)

	p1 := sunwheel.SunPosition(loc, at)
	p2 := sunwheel.SunPosition(loc, at)
	if p1 != p2 {
		t.Errorf("SunPosition not idempotent: %+v vs %+v", p1, p2)
	}

	e1 := sunwheel.RiseSet(loc, at)
	e2 := sunwheel.RiseSet(loc, at)
	if e1 != e2 {
		t.Errorf("RiseSet not idempotent: %+v vs %+v", e1, e2)
	}

	t1, ok1 := sunwheel.SolarTransit(loc, at)
	t2, ok2 := sunwheel.SolarTransit(loc, at)
	if ok1 != ok2 || !t1.Equal(t2) {
		t.Errorf("SolarTransit not idempotent: %v/%v vs %v/%v", t1, ok1, t2, ok2)
	}
}

func TestLongitudeWrapContinuity(t *testing.T) {
	// 179.9E and -180.1 (unnormalized) name the same meridian; positions
	// must agree to numerical noise once the sidereal sum wraps.
	at := time.Date(2024, time.May, 2, 6, 0, 0, 0, time.UTC)
	lat := 12.0

	a := sunwheel.SunPosition(sunwheel.Coordinates{Lat: lat, Lon: 179.9}, at)
	b := sunwheel.SunPosition(sunwheel.Coordinates{Lat: lat, Lon: -180.1}, at)

	if d := angleDiff(a.Azimuth, b.Azimuth); d > 1e-6 {
		t.Errorf("azimuth discontinuity across the antimeridian: %.9f deg", d)
	}
	if d := math.Abs(a.Altitude - b.Altitude); d > 1e-6 {
		t.Errorf("altitude discontinuity across the antimeridian: %.9f deg", d)
	}
}

func TestRisePrecedesSetAndBracketsTransit(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed to load America/New_York: %v", err)
	}

	loc := sunwheel.Coordinates{Lat: 40.7128, Lon: -74.0060}
	date := time.Date(2025, time.October, 12, 0, 0, 0, 0, ny)

	ev := sunwheel.RiseSet(loc, date)
	if !ev.HasRise || !ev.HasSet {
		t.Fatal("expected both events at mid-latitude")
	}
	if !ev.Rise.Before(ev.Set) {
		t.Errorf("rise %v should precede set %v", ev.Rise, ev.Set)
	}

	transit, ok := sunwheel.SolarTransit(loc, date)
	if !ok {
		t.Fatal("SolarTransit reported no result")
	}
	if transit.Before(ev.Rise) || transit.After(ev.Set) {
		t.Errorf("transit %v not between rise %v and set %v", transit, ev.Rise, ev.Set)
	}

	// Everything lands inside the queried local day.
	dayStart := time.Date(2025, time.October, 12, 0, 0, 0, 0, ny)
	dayEnd := dayStart.Add(24 * time.Hour)
	for _, at := range []time.Time{ev.Rise, ev.Set, transit} {
		if at.Before(dayStart) || !at.Before(dayEnd) {
			t.Errorf("event %v outside local day [%v, %v)", at, dayStart, dayEnd)
		}
	}
}
