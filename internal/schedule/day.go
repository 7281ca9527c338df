package schedule

import (
	"fmt"
	"sort"
	"time"

	"ai-trip-planner/internal/trip"
)

const lunchItemName = "Lunch break"

// offHours reports whether a time category is exempt from the daily operating
// window clamp. These bands are deliberately outside normal hours.
func offHours(cat trip.TimeCategory) bool {
	switch cat {
	case trip.TimeSunrise, trip.TimeEarlyMorning, trip.TimeNight:
		return true
	}
	return false
}

// scheduleDay sequences one day's POIs into non-overlapping concrete time
// slots, inserts a lunch break when no meal falls inside the lunch window,
// and annotates long gaps. This is the only place where date-agnostic
// preferred starts become date-and-clock-bound timestamps.
func scheduleDay(p Policy, date time.Time, loc *time.Location, pois []trip.POI) []trip.DayItem {
	if len(pois) == 0 {
		return nil
	}

	ordered := make([]trip.POI, len(pois))
	copy(ordered, pois)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.OptimalTime.Rank() != b.OptimalTime.Rank() {
			return a.OptimalTime.Rank() < b.OptimalTime.Rank()
		}
		if a.PreferredStart != b.PreferredStart {
			return a.PreferredStart < b.PreferredStart
		}
		return a.PriorityScore > b.PriorityScore
	})

	items := make([]trip.DayItem, 0, len(ordered)+1)
	var prevEnd time.Time

	for i, poi := range ordered {
		start := poi.PreferredStart.On(date, loc)
		if i == 0 {
			if !offHours(poi.OptimalTime) {
				open := p.OperatingStart.On(date, loc)
				if start.Before(open) {
					start = open
				}
			}
		} else {
			earliest := prevEnd.Add(time.Duration(p.BufferMinutes) * time.Minute)
			// Never pulled earlier than its semantic preferred time.
			if start.Before(earliest) {
				start = earliest
			}
		}

		end := start.Add(time.Duration(poi.EstimatedDuration) * time.Minute)
		items = append(items, trip.DayItem{
			POIID:           poi.ID,
			Name:            poi.Name,
			Start:           start,
			End:             end,
			DurationMinutes: poi.EstimatedDuration,
		})
		prevEnd = end
	}

	meals := make(map[string]bool)
	for _, poi := range ordered {
		if poi.Category == trip.CategoryRestaurant {
			meals[poi.ID] = true
		}
	}

	items = insertLunch(p, date, loc, items, meals)
	annotateGaps(p, items)
	return items
}

// insertLunch adds a fixed-length lunch break when no meal-category visit
// overlaps the lunch window. The break goes into the first gap that fits it
// (buffers included) inside the window, or right after the last item ending
// before the window opens.
func insertLunch(p Policy, date time.Time, loc *time.Location, items []trip.DayItem, meals map[string]bool) []trip.DayItem {
	winStart := p.LunchWindowStart.On(date, loc)
	winEnd := p.LunchWindowEnd.On(date, loc)

	for _, it := range items {
		if !meals[it.POIID] {
			continue
		}
		if it.Start.Before(winEnd) && it.End.After(winStart) {
			return items
		}
	}

	lunch := time.Duration(p.LunchMinutes) * time.Minute
	buffer := time.Duration(p.BufferMinutes) * time.Minute

	// Candidate gap before the first item.
	if start, ok := lunchFits(winStart, winEnd, winStart, items[0].Start.Add(-buffer), lunch); ok {
		return insertItemAt(items, 0, lunchItem(start, p.LunchMinutes))
	}

	// Gaps between consecutive items.
	for i := 0; i < len(items)-1; i++ {
		lo := items[i].End.Add(buffer)
		hi := items[i+1].Start.Add(-buffer)
		if start, ok := lunchFits(winStart, winEnd, lo, hi, lunch); ok {
			return insertItemAt(items, i+1, lunchItem(start, p.LunchMinutes))
		}
	}

	// Open time after the last item.
	last := items[len(items)-1]
	if start, ok := lunchFits(winStart, winEnd, last.End.Add(buffer), winEnd, lunch); ok {
		return append(items, lunchItem(start, p.LunchMinutes))
	}

	// No gap inside the window: place it right after the last item that ends
	// before the window opens, keeping the inter-item buffer.
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].End.Before(winStart) {
			start := items[i].End.Add(buffer)
			next := i + 1
			if next < len(items) && start.Add(lunch+buffer).After(items[next].Start) {
				return items
			}
			return insertItemAt(items, next, lunchItem(start, p.LunchMinutes))
		}
	}

	return items
}

// lunchFits reports whether a lunch of the given length fits between lo and
// hi while staying inside the lunch window, and returns the chosen start.
func lunchFits(winStart, winEnd, lo, hi time.Time, lunch time.Duration) (time.Time, bool) {
	start := lo
	if start.Before(winStart) {
		start = winStart
	}
	end := start.Add(lunch)
	if end.After(winEnd) || end.After(hi) {
		return time.Time{}, false
	}
	return start, true
}

func lunchItem(start time.Time, minutes int) trip.DayItem {
	return trip.DayItem{
		Name:            lunchItemName,
		Start:           start,
		End:             start.Add(time.Duration(minutes) * time.Minute),
		DurationMinutes: minutes,
	}
}

func insertItemAt(items []trip.DayItem, idx int, it trip.DayItem) []trip.DayItem {
	items = append(items, trip.DayItem{})
	copy(items[idx+1:], items[idx:])
	items[idx] = it
	return items
}

// annotateGaps attaches an explanatory note to any visit that follows a long
// stretch of free time. Breaks between two visits are part of the stretch,
// not idle time, so their duration is subtracted from it.
func annotateGaps(p Policy, items []trip.DayItem) {
	threshold := time.Duration(p.GapNoteMinutes) * time.Minute
	prev := -1
	for i := range items {
		if items[i].IsBreak() {
			continue
		}
		if prev >= 0 {
			free := items[i].Start.Sub(items[prev].End)
			for j := prev + 1; j < i; j++ {
				free -= items[j].End.Sub(items[j].Start)
			}
			if free > threshold {
				items[i].Note = fmt.Sprintf("Free time before this: about %d minutes for travel and rest", int(free.Minutes()))
			}
		}
		prev = i
	}
}
