package schedule

import (
	"testing"
	"time"

	"ai-trip-planner/internal/trip"
)

func mustClock(t *testing.T, s string) trip.TimeOfDay {
	t.Helper()
	tod, err := trip.ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("bad clock %q: %v", s, err)
	}
	return tod
}

func dayDate() time.Time {
	return time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
}

func clockOf(ts time.Time) trip.TimeOfDay {
	return trip.ClockTime(ts.Hour(), ts.Minute())
}

func TestScheduleDayOrderingAndBuffers(t *testing.T) {
	p := DefaultPolicy()

	pois := []trip.POI{
		{ID: "dinner", Name: "Dinner", Category: trip.CategoryRestaurant, EstimatedDuration: 90,
			OptimalTime: trip.TimeEvening, PreferredStart: trip.ClockTime(19, 0)},
		{ID: "sunrise", Name: "Sunrise Point", Category: trip.CategoryScenicSunrise, EstimatedDuration: 100,
			OptimalTime: trip.TimeSunrise, PreferredStart: trip.ClockTime(6, 0)},
		{ID: "museum", Name: "Museum", Category: trip.CategoryMuseum, EstimatedDuration: 150,
			OptimalTime: trip.TimeMorning, PreferredStart: trip.ClockTime(9, 0)},
	}

	items := scheduleDay(p, dayDate(), time.UTC, pois)

	var order []string
	for _, it := range items {
		if !it.IsBreak() {
			order = append(order, it.POIID)
		}
	}
	want := []string{"sunrise", "museum", "dinner"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}

	for i := 1; i < len(items); i++ {
		gap := items[i].Start.Sub(items[i-1].End)
		if gap < time.Duration(p.BufferMinutes)*time.Minute {
			t.Errorf("gap between %q and %q is %v, below the %d-minute buffer",
				items[i-1].Name, items[i].Name, gap, p.BufferMinutes)
		}
	}
}

func TestScheduleDayOffHoursExemption(t *testing.T) {
	p := DefaultPolicy()

	pois := []trip.POI{
		{ID: "sunrise", Name: "Sunrise Hill", Category: trip.CategoryScenicSunrise, EstimatedDuration: 60,
			OptimalTime: trip.TimeSunrise, PreferredStart: trip.ClockTime(5, 45)},
	}

	items := scheduleDay(p, dayDate(), time.UTC, pois)
	if got := clockOf(items[0].Start); got != mustClock(t, "05:45") {
		t.Errorf("SUNRISE item clamped to %s, off-hours categories are exempt from the operating window", got)
	}
}

func TestScheduleDayOperatingWindowClamp(t *testing.T) {
	p := DefaultPolicy()

	pois := []trip.POI{
		{ID: "museum", Name: "Museum", Category: trip.CategoryMuseum, EstimatedDuration: 120,
			OptimalTime: trip.TimeMorning, PreferredStart: trip.ClockTime(8, 0)},
	}

	items := scheduleDay(p, dayDate(), time.UTC, pois)
	if got := clockOf(items[0].Start); got != p.OperatingStart {
		t.Errorf("MORNING item starts %s, want clamp to operating window %s", got, p.OperatingStart)
	}
}

func TestScheduleDayNeverPullsEarlierThanPreferred(t *testing.T) {
	p := DefaultPolicy()

	pois := []trip.POI{
		{ID: "museum", Name: "Museum", Category: trip.CategoryMuseum, EstimatedDuration: 60,
			OptimalTime: trip.TimeMorning, PreferredStart: trip.ClockTime(9, 0)},
		{ID: "dinner", Name: "Dinner", Category: trip.CategoryRestaurant, EstimatedDuration: 90,
			OptimalTime: trip.TimeEvening, PreferredStart: trip.ClockTime(19, 0)},
	}

	items := scheduleDay(p, dayDate(), time.UTC, pois)
	for _, it := range items {
		if it.POIID == "dinner" {
			if got := clockOf(it.Start); got != mustClock(t, "19:00") {
				t.Errorf("dinner starts %s, must not be pulled before its preferred 19:00", got)
			}
		}
	}
}

func TestScheduleDayLunchInsertedWhenNoMeal(t *testing.T) {
	p := DefaultPolicy()

	pois := []trip.POI{
		{ID: "museum", Name: "Museum", Category: trip.CategoryMuseum, EstimatedDuration: 150,
			OptimalTime: trip.TimeMorning, PreferredStart: trip.ClockTime(9, 0)},
		{ID: "mall", Name: "Grand Mall", Category: trip.CategoryShopping, EstimatedDuration: 120,
			OptimalTime: trip.TimeAfternoon, PreferredStart: trip.ClockTime(14, 0)},
	}

	items := scheduleDay(p, dayDate(), time.UTC, pois)

	var lunch *trip.DayItem
	for i := range items {
		if items[i].IsBreak() {
			lunch = &items[i]
		}
	}
	if lunch == nil {
		t.Fatal("expected a lunch break, none inserted")
	}
	if lunch.DurationMinutes != p.LunchMinutes {
		t.Errorf("lunch lasts %d minutes, want %d", lunch.DurationMinutes, p.LunchMinutes)
	}
	winStart := p.LunchWindowStart.On(dayDate(), time.UTC)
	winEnd := p.LunchWindowEnd.On(dayDate(), time.UTC)
	if lunch.Start.Before(winStart) || lunch.End.After(winEnd) {
		t.Errorf("lunch %s-%s outside window %s-%s",
			clockOf(lunch.Start), clockOf(lunch.End), p.LunchWindowStart, p.LunchWindowEnd)
	}
}

func TestScheduleDayNoLunchWhenMealCoversWindow(t *testing.T) {
	p := DefaultPolicy()

	pois := []trip.POI{
		{ID: "bistro", Name: "Bistro", Category: trip.CategoryRestaurant, EstimatedDuration: 90,
			OptimalTime: trip.TimeAfternoon, PreferredStart: trip.ClockTime(12, 30)},
	}

	items := scheduleDay(p, dayDate(), time.UTC, pois)
	for _, it := range items {
		if it.IsBreak() {
			t.Errorf("lunch break inserted although %q covers the lunch window", "Bistro")
		}
	}
}

func TestScheduleDayGapNotes(t *testing.T) {
	p := DefaultPolicy()

	pois := []trip.POI{
		{ID: "temple", Name: "Old Temple", Category: trip.CategoryReligiousSite, EstimatedDuration: 60,
			OptimalTime: trip.TimeEarlyMorning, PreferredStart: trip.ClockTime(6, 0)},
		{ID: "club", Name: "Jazz Club", Category: trip.CategoryNightlife, EstimatedDuration: 120,
			OptimalTime: trip.TimeNight, PreferredStart: trip.ClockTime(21, 0)},
	}

	items := scheduleDay(p, dayDate(), time.UTC, pois)

	var club *trip.DayItem
	for i := range items {
		if items[i].POIID == "club" {
			club = &items[i]
		}
	}
	if club == nil {
		t.Fatal("club item missing")
	}
	if club.Note == "" {
		t.Error("expected a gap note on the item following a long gap")
	}
}

func TestScheduleDayGapNoteSpansLunchBreak(t *testing.T) {
	p := DefaultPolicy()

	// Museum ends 11:00, gallery starts 14:20. Lunch lands 12:00-13:00, so
	// neither adjacent gap crosses the threshold on its own, but the free
	// time between the two visits (200 min minus 60 min lunch) does.
	pois := []trip.POI{
		{ID: "museum", Name: "Museum", Category: trip.CategoryMuseum, EstimatedDuration: 120,
			OptimalTime: trip.TimeMorning, PreferredStart: trip.ClockTime(9, 0)},
		{ID: "gallery", Name: "Gallery", Category: trip.CategoryMuseum, EstimatedDuration: 60,
			OptimalTime: trip.TimeAfternoon, PreferredStart: trip.ClockTime(14, 20)},
	}

	items := scheduleDay(p, dayDate(), time.UTC, pois)

	var gallery *trip.DayItem
	hasLunch := false
	for i := range items {
		if items[i].POIID == "gallery" {
			gallery = &items[i]
		}
		if items[i].IsBreak() {
			hasLunch = true
			if items[i].Note != "" {
				t.Errorf("break items should not carry gap notes, got %q", items[i].Note)
			}
		}
	}
	if !hasLunch {
		t.Fatal("expected a lunch break between the visits")
	}
	if gallery == nil {
		t.Fatal("gallery item missing")
	}
	if gallery.Note == "" {
		t.Error("expected a gap note on the visit after the lunch-split gap")
	}
}

func TestScheduleDayEmpty(t *testing.T) {
	items := scheduleDay(DefaultPolicy(), dayDate(), time.UTC, nil)
	if len(items) != 0 {
		t.Errorf("expected no items for an empty day, got %d", len(items))
	}
}
