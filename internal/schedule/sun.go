package schedule

import (
	"log"
	"math"
	"sync"
	"time"

	"ai-trip-planner/internal/trip"

	"github.com/ringsaturn/tzf"
)

// SunTimes holds the computed local sunrise and sunset for one location and date.
type SunTimes struct {
	Sunrise trip.TimeOfDay
	Sunset  trip.TimeOfDay
}

var (
	tzOnce   sync.Once
	tzFinder tzf.F
)

// LocationFor resolves the IANA timezone for a coordinate pair. It falls back
// to UTC when the timezone data cannot be resolved, keeping the computation
// deterministic for any input.
func LocationFor(lat, lon float64) *time.Location {
	tzOnce.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			log.Printf("Failed to initialize timezone finder, using UTC: %v", err)
			return
		}
		tzFinder = finder
	})
	if tzFinder == nil {
		return time.UTC
	}

	name := tzFinder.GetTimezoneName(lon, lat)
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SunTimesFor computes local sunrise and sunset for a coordinate and calendar
// date using the standard solar declination and hour angle formulas. It is a
// pure function of its inputs: identical inputs always produce identical
// results to the minute. Polar day and night degenerate to the clamped hour
// angle rather than failing.
func SunTimesFor(lat, lon float64, date time.Time, loc *time.Location) SunTimes {
	const (
		deg = math.Pi / 180
		// Standard zenith correction for refraction and the solar disc.
		altitude = -0.833
	)

	n := float64(date.YearDay())

	// Solar declination, degrees.
	decl := -23.44 * math.Cos(2*math.Pi/365.24*(n+10))

	// Equation of time, minutes.
	b := 2 * math.Pi * (n - 81) / 364
	eot := 9.87*math.Sin(2*b) - 7.53*math.Cos(b) - 1.5*math.Sin(b)

	// Solar noon in minutes UTC: 4 minutes per degree of longitude.
	noon := 12*60 - 4*lon - eot

	cosH := (math.Sin(altitude*deg) - math.Sin(lat*deg)*math.Sin(decl*deg)) /
		(math.Cos(lat*deg) * math.Cos(decl*deg))
	if cosH > 1 {
		cosH = 1
	} else if cosH < -1 {
		cosH = -1
	}
	halfDay := 4 * (math.Acos(cosH) / deg) // minutes

	sunrise := localClock(date, noon-halfDay, loc)
	sunset := localClock(date, noon+halfDay, loc)
	return SunTimes{Sunrise: sunrise, Sunset: sunset}
}

// localClock converts minutes-after-midnight UTC on the given date into the
// local wall-clock time of day, truncated to the minute.
func localClock(date time.Time, utcMinutes float64, loc *time.Location) trip.TimeOfDay {
	t := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC).
		Add(time.Duration(utcMinutes) * time.Minute).
		In(loc)
	return trip.ClockTime(t.Hour(), t.Minute())
}
