package schedule

import (
	"context"
	"log"
	"time"

	"ai-trip-planner/internal/advisor"
	"ai-trip-planner/internal/trip"

	"github.com/google/uuid"
)

// Builder runs the full scheduling pipeline: annotate, distribute, sequence,
// validate. A Builder holds no per-build state; every Build call is a pure
// function from its arguments to a fresh Itinerary, so independent builds may
// run concurrently on separate goroutines with no coordination.
type Builder struct {
	policy     Policy
	classifier *Classifier
}

// NewBuilder creates a builder with the given policy and advisory capability.
// A nil advisor selects rule-backed classification only.
func NewBuilder(policy Policy, adv advisor.TimingAdvisor) *Builder {
	return &Builder{
		policy:     policy,
		classifier: NewClassifier(policy, adv),
	}
}

// Policy returns the builder's scheduling policy.
func (b *Builder) Policy() Policy {
	return b.policy
}

// Build assembles a complete itinerary. The inputs are treated as immutable;
// derived POI fields are computed on private copies. Weather entries are
// matched to trip days by position and are optional throughout. The only
// error Build can return besides context cancellation is a fatal scheduling
// invariant violation.
func (b *Builder) Build(ctx context.Context, req trip.TripRequest, pois []trip.POI, weather []trip.WeatherInfo) (*trip.Itinerary, error) {
	loc := LocationFor(req.Coordinates.Latitude, req.Coordinates.Longitude)
	startDate := req.StartDate.In(loc)
	sun := SunTimesFor(req.Coordinates.Latitude, req.Coordinates.Longitude, startDate, loc)

	// Weather for the first day is the only forecast known before POIs are
	// assigned to days, so it drives classification for the whole pool.
	var classifyWeather *trip.WeatherInfo
	if len(weather) > 0 {
		w := weather[0]
		classifyWeather = &w
	}

	annotated := make([]trip.POI, len(pois))
	copy(annotated, pois)
	for i := range annotated {
		poi := &annotated[i]
		if poi.Category == "" {
			log.Printf("POI '%s' has no category, defaulting to %s", poi.Name, trip.CategoryOther)
			poi.Category = trip.CategoryOther
		}
		poi.EstimatedDuration = b.policy.EstimateDuration(poi.Category, req.Group, poi.Rating)
		poi.OptimalTime, poi.PreferredStart = b.classifier.Classify(ctx, *poi, classifyWeather, startDate, sun)
	}

	perDay, overflow := distribute(b.policy, annotated, req.DurationDays)

	it := &trip.Itinerary{
		ID:          uuid.New().String(),
		Destination: req.Destination,
		Overflow:    overflow,
		Warnings:    []string{},
		Version:     1,
		CreatedAt:   time.Now().UTC(),
	}

	for d := 0; d < req.DurationDays; d++ {
		// Cancellation is only honored at day boundaries; each day's output
		// is self-contained and partial results are simply discarded.
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		date := startDate.AddDate(0, 0, d)
		var pool []trip.POI
		if d < len(perDay) {
			pool = perDay[d]
		}
		it.Days = append(it.Days, trip.DayPlan{
			Date:  date,
			Items: scheduleDay(b.policy, date, loc, pool),
		})
	}

	priorities := make(map[string]float64, len(annotated))
	for _, poi := range annotated {
		priorities[poi.ID] = poi.PriorityScore
	}
	if err := validate(b.policy, it, priorities); err != nil {
		return nil, err
	}

	if it.Overflow == nil {
		it.Overflow = []string{}
	}
	return it, nil
}
