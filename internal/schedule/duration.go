package schedule

import (
	"ai-trip-planner/internal/trip"
)

// EstimateDuration derives the expected visit length in minutes for a POI.
// It always produces a value: unknown categories and groups fall back to
// neutral defaults, the result is clamped to the configured range and rounded
// to the nearest DurationRoundMinutes.
func (p Policy) EstimateDuration(category trip.Category, group trip.GroupType, rating float64) int {
	base, ok := p.BaseDurations[category]
	if !ok {
		base = p.DefaultDuration
	}

	mult, ok := p.GroupMultipliers[group]
	if !ok {
		mult = 1.0
	}

	minutes := float64(base) * mult

	switch {
	case rating >= 4.5:
		minutes *= 1.1
	case rating > 0 && rating < 3.0:
		minutes *= 0.9
	}

	rounded := roundToNearest(int(minutes+0.5), p.DurationRoundMinutes)
	if rounded < p.MinDurationMinutes {
		return p.MinDurationMinutes
	}
	if rounded > p.MaxDurationMinutes {
		return p.MaxDurationMinutes
	}
	return rounded
}

func roundToNearest(v, step int) int {
	if step <= 1 {
		return v
	}
	return ((v + step/2) / step) * step
}
