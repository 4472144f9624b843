package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/thurmanmarka/sunwheel"
)

func main() {
	log.SetFlags(0)

	// No args or a leading flag runs the default day-table mode; otherwise
	// the first arg is a subcommand (e.g. "position").
	if len(os.Args) < 2 || strings.HasPrefix(os.Args[1], "-") {
		runDay(os.Args[1:])
		return
	}

	switch os.Args[1] {
	case "position", "pos":
		runPosition(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `sunwheel – where the Sun is, and when it comes and goes

Usage:
  sunwheel [flags]            # sunrise / transit / sunset for a day (default)
  sunwheel position [flags]   # azimuth / altitude at an instant

Default mode flags:
  -lat float
        latitude in degrees (north positive)
  -lon float
        longitude in degrees (east positive, west negative)
  -date string
        date in YYYY-MM-DD (optional, defaults to today)
  -tz string
        IANA time zone for the local day window (default "Local")
  -json
        output result as JSON

For position mode:
  sunwheel position -h
`)
}

// ---------------------
// Day table (default) mode
// ---------------------

func runDay(args []string) {
	fs := flag.NewFlagSet("sunwheel", flag.ExitOnError)

	lat := fs.Float64("lat", 0, "latitude in degrees (north positive)")
	lon := fs.Float64("lon", 0, "longitude in degrees (east positive, west negative)")
	dateS := fs.String("date", "", "date in YYYY-MM-DD (optional, defaults to today)")
	tzName := fs.String("tz", "Local", "IANA time zone for the local day window")
	jsonOut := fs.Bool("json", false, "output result as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sunwheel [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	if *lat == 0 && *lon == 0 {
		log.Println("warning: lat=0 lon=0 (Gulf of Guinea). Use -lat and -lon to set a real location.")
	}

	tz, err := time.LoadLocation(*tzName)
	if err != nil {
		log.Fatalf("invalid time zone %q: %v", *tzName, err)
	}

	var date time.Time
	if *dateS == "" {
		now := time.Now().In(tz)
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, tz)
	} else {
		date, err = time.ParseInLocation("2006-01-02", *dateS, tz)
		if err != nil {
			log.Fatalf("invalid -date %q: %v", *dateS, err)
		}
	}

	coords := sunwheel.Coordinates{Lat: *lat, Lon: *lon}

	ev := sunwheel.RiseSet(coords, date)
	transit, okTransit := sunwheel.SolarTransit(coords, date)

	if *jsonOut {
		printDayJSON(coords, date, ev, transit, okTransit)
	} else {
		printDayHuman(coords, date, ev, transit, okTransit)
	}
}

func printDayHuman(coords sunwheel.Coordinates, date time.Time, ev sunwheel.SunEvents, transit time.Time, okTransit bool) {
	fmt.Printf("Sun events for lat=%.6f lon=%.6f\n", coords.Lat, coords.Lon)
	fmt.Printf("Date: %s (%s)\n\n", date.Format("2006-01-02"), date.Location())

	if ev.HasRise {
		fmt.Printf("Rise:    %s  az %3d°\n", ev.Rise.Format(time.RFC3339), ev.RiseAzimuth)
	} else {
		fmt.Printf("Rise:    –\n")
	}
	if okTransit {
		fmt.Printf("Transit: %s\n", transit.Format(time.RFC3339))
	} else {
		fmt.Printf("Transit: –\n")
	}
	if ev.HasSet {
		fmt.Printf("Set:     %s  az %3d°\n", ev.Set.Format(time.RFC3339), ev.SetAzimuth)
	} else {
		fmt.Printf("Set:     –\n")
	}
}

type dayJSON struct {
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	Date        string     `json:"date"` // YYYY-MM-DD
	Timezone    string     `json:"timezone"`
	Rise        *time.Time `json:"rise,omitempty"`
	RiseAzimuth int        `json:"riseAzimuth"`
	Transit     *time.Time `json:"transit,omitempty"`
	Set         *time.Time `json:"set,omitempty"`
	SetAzimuth  int        `json:"setAzimuth"`
}

func printDayJSON(coords sunwheel.Coordinates, date time.Time, ev sunwheel.SunEvents, transit time.Time, okTransit bool) {
	out := dayJSON{
		Latitude:    coords.Lat,
		Longitude:   coords.Lon,
		Date:        date.Format("2006-01-02"),
		Timezone:    date.Location().String(),
		RiseAzimuth: ev.RiseAzimuth,
		SetAzimuth:  ev.SetAzimuth,
	}
	if ev.HasRise {
		out.Rise = &ev.Rise
	}
	if ev.HasSet {
		out.Set = &ev.Set
	}
	if okTransit {
		out.Transit = &transit
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("failed to encode JSON: %v", err)
	}
}

// ---------------------
// Position subcommand
// ---------------------

func runPosition(args []string) {
	fs := flag.NewFlagSet("position", flag.ExitOnError)

	lat := fs.Float64("lat", 0, "latitude in degrees (north positive)")
	lon := fs.Float64("lon", 0, "longitude in degrees (east positive, west negative)")
	tzName := fs.String("tz", "UTC", "IANA time zone name (e.g. America/Phoenix)")
	timeStr := fs.String("time", "", "Time in RFC3339 or 'YYYY-MM-DDTHH:MM' (optional, defaults to now in tz)")
	jsonOut := fs.Bool("json", false, "output result as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sunwheel position [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	tz, err := time.LoadLocation(*tzName)
	if err != nil {
		log.Fatalf("invalid time zone %q: %v", *tzName, err)
	}

	var tLocal time.Time
	if *timeStr == "" {
		tLocal = time.Now().In(tz)
	} else {
		layouts := []string{
			time.RFC3339,
			"2006-01-02T15:04",
			"2006-01-02 15:04",
			"2006-01-02",
		}
		var parseErr error
		for _, layout := range layouts {
			tLocal, parseErr = time.ParseInLocation(layout, *timeStr, tz)
			if parseErr == nil {
				break
			}
		}
		if parseErr != nil {
			log.Fatalf("could not parse -time %q: %v", *timeStr, parseErr)
		}
	}

	pos := sunwheel.SunPosition(sunwheel.Coordinates{Lat: *lat, Lon: *lon}, tLocal)

	if *jsonOut {
		out := struct {
			Time     time.Time `json:"time"`
			Azimuth  float64   `json:"azimuth"`
			Altitude float64   `json:"altitude"`
		}{tLocal, pos.Azimuth, pos.Altitude}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			log.Fatalf("failed to encode JSON: %v", err)
		}
		return
	}

	fmt.Printf("Sun position at %s (%s)\n", tLocal.Format(time.RFC3339), tz.String())
	fmt.Printf("  Azimuth  : %.2f° (needle %d°)\n", pos.Azimuth, int(pos.Azimuth+0.5)%360)
	fmt.Printf("  Altitude : %.2f°\n", pos.Altitude)
	if pos.Altitude >= 0 {
		fmt.Printf("  Above the horizon\n")
	} else {
		fmt.Printf("  Below the horizon\n")
	}
}
