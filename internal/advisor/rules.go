package advisor

import (
	"context"

	"ai-trip-planner/internal/trip"
)

// Daily highs above this make mornings the safer slot for outdoor categories.
const hotWeatherCelsius = 30.0

// RuleAdvisor is the deterministic, rule-backed TimingAdvisor. It never
// errors and always returns the same reply for the same query, which also
// makes it the fallback when a model-backed advisor is unavailable.
type RuleAdvisor struct{}

// SuggestTiming resolves a timing suggestion from the category rule table.
func (RuleAdvisor) SuggestTiming(_ context.Context, q TimingQuery) (TimingReply, error) {
	cat, start, reason := ruleFor(q)
	return TimingReply{
		TimeCategory: cat,
		StartTime:    start.String(),
		Reasoning:    reason,
	}, nil
}

func ruleFor(q TimingQuery) (trip.TimeCategory, trip.TimeOfDay, string) {
	switch q.Category {
	case trip.CategoryScenicSunrise:
		return trip.TimeSunrise, q.Sunrise - 30, "arrive before sunrise for the view"
	case trip.CategoryReligiousSite:
		return trip.TimeEarlyMorning, trip.ClockTime(6, 0), "quiet early-morning visit"
	case trip.CategoryMuseum:
		return trip.TimeMorning, trip.ClockTime(9, 0), "museums are calmest right after opening"
	case trip.CategoryAttraction:
		return trip.TimeMorning, trip.ClockTime(10, 0), "beat the mid-day crowds"
	case trip.CategoryShopping:
		// Indoor escape from the afternoon sun, so it stays here even in heat.
		return trip.TimeAfternoon, trip.ClockTime(13, 0), "air-conditioned afternoon break"
	case trip.CategoryScenicSunset:
		return trip.TimeSunset, q.Sunset - 60, "arrive an hour before sunset"
	case trip.CategoryRestaurant:
		return trip.TimeEvening, trip.ClockTime(19, 0), "dinner time"
	case trip.CategoryNightlife:
		return trip.TimeNight, trip.ClockTime(20, 0), "venues come alive after dark"
	default:
		// Outdoor and uncategorised places: mornings when the day runs hot,
		// otherwise the afternoon slot.
		if q.Weather != nil && q.Weather.TemperatureHigh <= hotWeatherCelsius {
			return trip.TimeAfternoon, trip.ClockTime(14, 0), "mild afternoon suits outdoor time"
		}
		return trip.TimeMorning, trip.ClockTime(9, 0), "cooler morning hours for outdoor activity"
	}
}
