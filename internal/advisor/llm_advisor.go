package advisor

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
	"time"

	"ai-trip-planner/internal/shared"
	"ai-trip-planner/internal/trip"
)

//go:embed timing_prompt.md
var timingPrompt string

type timingPromptData struct {
	Name            string
	Description     string
	Category        trip.Category
	Date            string
	Sunrise         string
	Sunset          string
	HasWeather      bool
	Condition       trip.WeatherCondition
	TemperatureHigh float64
	TemperatureLow  float64
}

// LLMAdvisor is a TimingAdvisor backed by a text-generating model. Replies
// are requested as structured JSON and parsed into a TimingReply. OnMeta, when
// set, receives execution metadata for every model call.
type LLMAdvisor struct {
	textGen TextGenerator
	OnMeta  func(shared.AdvisorMeta)
}

// NewLLMAdvisor creates a model-backed timing advisor.
func NewLLMAdvisor(textGen TextGenerator) *LLMAdvisor {
	return &LLMAdvisor{textGen: textGen}
}

// SuggestTiming asks the model for a visiting-time suggestion.
func (a *LLMAdvisor) SuggestTiming(ctx context.Context, q TimingQuery) (TimingReply, error) {
	start := time.Now()
	prompt, err := buildTimingPrompt(q)
	if err != nil {
		return TimingReply{}, err
	}

	resp, err := a.textGen.GenerateContent(ctx, prompt)
	if a.OnMeta != nil {
		a.OnMeta(shared.AdvisorMeta{
			AdvisorName: "TimingAdvisor",
			Usage:       resp.Usage,
			Latency:     time.Since(start),
		})
	}
	if err != nil {
		return TimingReply{}, err
	}

	var reply TimingReply
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp.Content)), &reply); err != nil {
		return TimingReply{}, fmt.Errorf("failed to parse timing reply: %w. Response: %s", err, resp.Content)
	}

	if !reply.TimeCategory.Valid() {
		return TimingReply{}, fmt.Errorf("unknown time category %q in timing reply", reply.TimeCategory)
	}
	if _, err := trip.ParseTimeOfDay(reply.StartTime); err != nil {
		return TimingReply{}, fmt.Errorf("bad start time in timing reply: %w", err)
	}

	return reply, nil
}

func buildTimingPrompt(q TimingQuery) (string, error) {
	tmpl, err := template.New("timing").Parse(timingPrompt)
	if err != nil {
		return "", err
	}

	data := timingPromptData{
		Name:        q.Name,
		Description: q.Description,
		Category:    q.Category,
		Date:        q.Date.Format("2006-01-02"),
		Sunrise:     q.Sunrise.String(),
		Sunset:      q.Sunset.String(),
	}
	if q.Weather != nil {
		data.HasWeather = true
		data.Condition = q.Weather.Condition
		data.TemperatureHigh = q.Weather.TemperatureHigh
		data.TemperatureLow = q.Weather.TemperatureLow
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
