package schedule

import (
	"context"
	"log"
	"time"

	"ai-trip-planner/internal/advisor"
	"ai-trip-planner/internal/trip"
)

// Classifier assigns each POI a time-of-day category and preferred start.
// It consults the configured advisory capability first and degrades to the
// deterministic rule table on any failure, so classification itself never
// fails and never surfaces an advisory error to the caller.
type Classifier struct {
	policy   Policy
	advisor  advisor.TimingAdvisor
	fallback advisor.RuleAdvisor
}

// NewClassifier creates a classifier. A nil advisor means rule-backed
// classification only.
func NewClassifier(policy Policy, adv advisor.TimingAdvisor) *Classifier {
	return &Classifier{policy: policy, advisor: adv}
}

// Classify resolves the time category and preferred start for one POI.
func (c *Classifier) Classify(ctx context.Context, poi trip.POI, weather *trip.WeatherInfo, date time.Time, sun SunTimes) (trip.TimeCategory, trip.TimeOfDay) {
	q := advisor.TimingQuery{
		Name:        poi.Name,
		Description: poi.Description,
		Category:    poi.Category,
		Weather:     weather,
		Date:        date,
		Sunrise:     sun.Sunrise,
		Sunset:      sun.Sunset,
	}

	if c.advisor != nil {
		if reply, ok := c.suggestWithRetry(ctx, q); ok {
			start, err := trip.ParseTimeOfDay(reply.StartTime)
			if err == nil && reply.TimeCategory.Valid() {
				return reply.TimeCategory, start
			}
			log.Printf("Advisory reply for '%s' unusable (category=%q start=%q), using rules", poi.Name, reply.TimeCategory, reply.StartTime)
		}
	}

	reply, _ := c.fallback.SuggestTiming(ctx, q)
	start, _ := trip.ParseTimeOfDay(reply.StartTime)
	return reply.TimeCategory, start
}

// suggestWithRetry calls the advisory capability with a bounded timeout and
// at most AdvisorRetries additional attempts. Failures are recoverable and
// only logged.
func (c *Classifier) suggestWithRetry(ctx context.Context, q advisor.TimingQuery) (advisor.TimingReply, bool) {
	attempts := 1 + c.policy.AdvisorRetries
	for i := 0; i < attempts; i++ {
		callCtx, cancel := context.WithTimeout(ctx, c.policy.AdvisorTimeout)
		reply, err := c.advisor.SuggestTiming(callCtx, q)
		cancel()
		if err == nil {
			return reply, true
		}
		log.Printf("Advisory call for '%s' failed (attempt %d/%d): %v", q.Name, i+1, attempts, err)
	}
	return advisor.TimingReply{}, false
}
