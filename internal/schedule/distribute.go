package schedule

import (
	"sort"

	"ai-trip-planner/internal/trip"
)

type dayBucket struct {
	minutes       int
	count         int
	hasRestaurant bool
	pois          []trip.POI
}

// lunchReserve is the headroom a day keeps free for the automatic lunch break
// until a restaurant visit lands on it.
func (d *dayBucket) lunchReserve(p Policy) int {
	if d.hasRestaurant {
		return 0
	}
	return p.LunchMinutes
}

// distribute bin-packs the annotated POIs into trip days. POIs are taken in
// descending priority order (stable on discovery order for ties) and placed
// on the earliest calendar day with room under the daily budget and the
// per-day item cap. POIs that fit nowhere end up in overflow, never dropped.
// The function always terminates and never fails.
func distribute(p Policy, pois []trip.POI, days int) (perDay [][]trip.POI, overflow []string) {
	if days <= 0 {
		for _, poi := range pois {
			overflow = append(overflow, poi.ID)
		}
		return nil, overflow
	}

	ordered := make([]trip.POI, len(pois))
	copy(ordered, pois)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].PriorityScore > ordered[j].PriorityScore
	})

	buckets := make([]dayBucket, days)

	for _, poi := range ordered {
		placed := false
		need := poi.EstimatedDuration + p.BufferMinutes
		for d := range buckets {
			b := &buckets[d]
			if b.count >= p.MaxItemsPerDay {
				continue
			}
			if b.minutes+need+b.lunchReserve(p) > p.DailyBudgetMinutes {
				continue
			}
			b.minutes += need
			b.count++
			if poi.Category == trip.CategoryRestaurant {
				b.hasRestaurant = true
			}
			b.pois = append(b.pois, poi)
			placed = true
			break
		}
		if !placed {
			overflow = append(overflow, poi.ID)
		}
	}

	perDay = make([][]trip.POI, days)
	for d := range buckets {
		perDay[d] = buckets[d].pois
	}
	return perDay, overflow
}
