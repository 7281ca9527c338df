package trip

import (
	"fmt"
	"time"
)

// TimeOfDay is a clock time with no date attached, stored as minutes since
// midnight. POI preferred starts are date-agnostic until the day scheduler
// binds them to a calendar date.
type TimeOfDay int

// ParseTimeOfDay parses "HH:MM" into a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time of day %q: out of range", s)
	}
	return TimeOfDay(h*60 + m), nil
}

// ClockTime builds a TimeOfDay from hours and minutes.
func ClockTime(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// Hour returns the hour component.
func (t TimeOfDay) Hour() int { return int(t) / 60 }

// Minute returns the minute component.
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// String formats the time as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// On binds the time of day to a calendar date in the given location.
// Negative times (a sunrise offset can land before midnight at extreme
// latitudes) are clamped to midnight.
func (t TimeOfDay) On(date time.Time, loc *time.Location) time.Time {
	if t < 0 {
		t = 0
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc)
}

// TimeCategory is the time-of-day band a POI is best visited in.
type TimeCategory string

const (
	TimeSunrise      TimeCategory = "SUNRISE"
	TimeEarlyMorning TimeCategory = "EARLY_MORNING"
	TimeMorning      TimeCategory = "MORNING"
	TimeAfternoon    TimeCategory = "AFTERNOON"
	TimeSunset       TimeCategory = "SUNSET"
	TimeEvening      TimeCategory = "EVENING"
	TimeNight        TimeCategory = "NIGHT"
)

var timeCategoryRank = map[TimeCategory]int{
	TimeSunrise:      0,
	TimeEarlyMorning: 1,
	TimeMorning:      2,
	TimeAfternoon:    3,
	TimeSunset:       4,
	TimeEvening:      5,
	TimeNight:        6,
}

// Rank returns the position of the category in the scheduling order
// SUNRISE < EARLY_MORNING < MORNING < AFTERNOON < SUNSET < EVENING < NIGHT.
// Unknown categories sort after all known ones.
func (c TimeCategory) Rank() int {
	if r, ok := timeCategoryRank[c]; ok {
		return r
	}
	return len(timeCategoryRank)
}

// Valid reports whether the category is one of the defined bands.
func (c TimeCategory) Valid() bool {
	_, ok := timeCategoryRank[c]
	return ok
}
