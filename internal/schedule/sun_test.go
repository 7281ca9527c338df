package schedule

import (
	"testing"
	"time"

	"ai-trip-planner/internal/trip"
)

func TestSunTimesForDeterminism(t *testing.T) {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	loc := time.UTC

	first := SunTimesFor(12.9716, 77.5946, date, loc)
	for i := 0; i < 10; i++ {
		again := SunTimesFor(12.9716, 77.5946, date, loc)
		if again != first {
			t.Fatalf("SunTimesFor not deterministic: %v vs %v", again, first)
		}
	}
}

func TestSunTimesForPlausibility(t *testing.T) {
	cases := []struct {
		name     string
		lat, lon float64
		date     time.Time
	}{
		{"BangaloreSpring", 12.9716, 77.5946, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"LondonSummer", 51.5074, -0.1278, time.Date(2026, 6, 21, 0, 0, 0, 0, time.UTC)},
		{"SydneyWinter", -33.8688, 151.2093, time.Date(2026, 6, 21, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			loc := LocationFor(tc.lat, tc.lon)
			sun := SunTimesFor(tc.lat, tc.lon, tc.date, loc)

			if sun.Sunrise >= sun.Sunset {
				t.Errorf("sunrise %s not before sunset %s", sun.Sunrise, sun.Sunset)
			}
			if sun.Sunrise < trip.ClockTime(3, 0) || sun.Sunrise > trip.ClockTime(9, 0) {
				t.Errorf("implausible local sunrise %s", sun.Sunrise)
			}
			if sun.Sunset < trip.ClockTime(15, 0) || sun.Sunset > trip.ClockTime(23, 0) {
				t.Errorf("implausible local sunset %s", sun.Sunset)
			}
		})
	}
}

func TestSunTimesForPolarClamping(t *testing.T) {
	// Midsummer above the arctic circle: the hour angle degenerates instead
	// of producing NaN times.
	date := time.Date(2026, 6, 21, 0, 0, 0, 0, time.UTC)
	sun := SunTimesFor(78.2232, 15.6267, date, time.UTC) // Svalbard

	if sun.Sunrise < 0 || sun.Sunrise >= trip.TimeOfDay(24*60) {
		t.Errorf("polar sunrise out of clock range: %d", sun.Sunrise)
	}
	if sun.Sunset < 0 || sun.Sunset >= trip.TimeOfDay(24*60) {
		t.Errorf("polar sunset out of clock range: %d", sun.Sunset)
	}
}
