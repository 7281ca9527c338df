package advisor

import (
	"context"
	"time"

	"ai-trip-planner/internal/shared"
	"ai-trip-planner/internal/trip"
)

// TimingQuery carries everything an advisor may consider when suggesting
// when a place is best visited.
type TimingQuery struct {
	Name        string
	Description string
	Category    trip.Category
	Weather     *trip.WeatherInfo
	Date        time.Time
	Sunrise     trip.TimeOfDay
	Sunset      trip.TimeOfDay
}

// TimingReply is the structured answer of a timing advisor.
type TimingReply struct {
	TimeCategory trip.TimeCategory `json:"time_category"`
	StartTime    string            `json:"start_time"`
	Reasoning    string            `json:"reasoning"`
}

// TimingAdvisor suggests an optimal visiting time for a place. The scheduling
// core depends only on this contract, never on a concrete external client, so
// the network-backed and rule-backed implementations are interchangeable.
type TimingAdvisor interface {
	SuggestTiming(ctx context.Context, q TimingQuery) (TimingReply, error)
}

// ContentResponse contains generated text and metadata like token usage.
type ContentResponse struct {
	Content string
	Usage   shared.TokenUsage
}

// TextGenerator is an interface for generating text from a prompt.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (ContentResponse, error)
}

// Closer is an interface for closing resources.
type Closer interface {
	Close() error
}
