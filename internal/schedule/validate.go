package schedule

import (
	"fmt"
	"sort"

	"ai-trip-planner/internal/trip"
)

// ValidationError reports two overlapping items within one day. Overlaps
// indicate a scheduler defect rather than a data issue, so they abort the
// build instead of degrading.
type ValidationError struct {
	Day   int
	ItemA string
	ItemB string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("schedule invariant violated: day %d items %q and %q overlap", e.Day, e.ItemA, e.ItemB)
}

// validate runs the post-build checks over every day plan. Soft limits add
// warnings (and move count-cap excess into overflow); overlapping items are
// fatal. Already-valid days are never mutated beyond the overflow move.
func validate(p Policy, it *trip.Itinerary, priorities map[string]float64) error {
	for d := range it.Days {
		day := &it.Days[d]

		sort.SliceStable(day.Items, func(i, j int) bool {
			return day.Items[i].Start.Before(day.Items[j].Start)
		})

		for i := 1; i < len(day.Items); i++ {
			if day.Items[i].Start.Before(day.Items[i-1].End) {
				return &ValidationError{Day: d + 1, ItemA: day.Items[i-1].Name, ItemB: day.Items[i].Name}
			}
		}

		if excess := countPOIItems(day.Items) - p.MaxItemsPerDay; excess > 0 {
			it.Warnings = append(it.Warnings,
				fmt.Sprintf("day %d has %d activities, above the cap of %d; moved %d to overflow",
					d+1, countPOIItems(day.Items), p.MaxItemsPerDay, excess))
			moveExcessToOverflow(day, excess, priorities, it)
		}

		total := activeMinutes(p, day.Items)
		if total > p.DayTotalCapMinutes {
			it.Warnings = append(it.Warnings,
				fmt.Sprintf("day %d schedules %d active minutes, above the soft cap of %d",
					d+1, total, p.DayTotalCapMinutes))
		}
	}
	return nil
}

func countPOIItems(items []trip.DayItem) int {
	n := 0
	for _, it := range items {
		if !it.IsBreak() {
			n++
		}
	}
	return n
}

// activeMinutes sums durations plus the inter-item buffers actually implied
// by the sequence (one buffer per adjacent pair), breaks included.
func activeMinutes(p Policy, items []trip.DayItem) int {
	total := 0
	for _, it := range items {
		total += it.DurationMinutes
	}
	if len(items) > 1 {
		total += (len(items) - 1) * p.BufferMinutes
	}
	return total
}

// moveExcessToOverflow removes the lowest-priority POI items from the day and
// records their identities in the itinerary overflow list.
func moveExcessToOverflow(day *trip.DayPlan, excess int, priorities map[string]float64, it *trip.Itinerary) {
	type ranked struct {
		idx      int
		priority float64
	}
	var candidates []ranked
	for i, item := range day.Items {
		if item.IsBreak() {
			continue
		}
		candidates = append(candidates, ranked{idx: i, priority: priorities[item.POIID]})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].priority < candidates[j].priority
	})

	drop := make(map[int]bool, excess)
	for i := 0; i < excess && i < len(candidates); i++ {
		drop[candidates[i].idx] = true
		it.Overflow = append(it.Overflow, day.Items[candidates[i].idx].POIID)
	}

	kept := day.Items[:0]
	for i, item := range day.Items {
		if !drop[i] {
			kept = append(kept, item)
		}
	}
	day.Items = kept
}
