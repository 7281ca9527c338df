package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"ai-trip-planner/internal/trip"
)

const testAPIKey = "abc123:6465616462656566" // "deadbeef" hex-encoded

func TestForecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") || len(auth) < 20 {
			t.Errorf("expected signed bearer token, got %q", auth)
		}
		w.Write([]byte(`{
			"days": [
				{"date": "2026-09-10", "condition": "clear", "temp_max": 28.5, "temp_min": 19.0, "precipitation_chance": 5},
				{"date": "2026-09-11", "condition": "rain", "temp_max": 24.0, "temp_min": 18.0, "precipitation_chance": 80}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(testAPIKey, server.URL)
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	days, err := client.Forecast(context.Background(), 12.97, 77.59, start, 2)
	if err != nil {
		t.Fatalf("Forecast failed: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}

	if days[0].Condition != trip.WeatherSunny {
		t.Errorf("expected sunny, got %s", days[0].Condition)
	}
	if !days[0].SuitableForOutdoor {
		t.Error("clear day with 5%% rain chance should be suitable for outdoor")
	}
	if days[1].Condition != trip.WeatherRainy {
		t.Errorf("expected rainy, got %s", days[1].Condition)
	}
	if days[1].SuitableForOutdoor {
		t.Error("rainy day should not be suitable for outdoor")
	}
	if days[0].TemperatureHigh != 28.5 {
		t.Errorf("expected high 28.5, got %f", days[0].TemperatureHigh)
	}
}

func TestForecastCachesResults(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{"days": [{"date": "2026-09-10", "condition": "cloudy", "temp_max": 22, "temp_min": 15, "precipitation_chance": 10}]}`))
	}))
	defer server.Close()

	client := NewClient(testAPIKey, server.URL)
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		if _, err := client.Forecast(context.Background(), 51.5, -0.12, start, 1); err != nil {
			t.Fatalf("Forecast call %d failed: %v", i, err)
		}
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("expected 1 upstream call, got %d", got)
	}
}

func TestForecastBadKeyFormat(t *testing.T) {
	client := NewClient("not-a-valid-key", "http://localhost:1")
	if _, err := client.Forecast(context.Background(), 0, 0, time.Now(), 1); err == nil {
		t.Fatal("expected error for malformed api key")
	}
}

func TestForecastServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testAPIKey, server.URL)
	if _, err := client.Forecast(context.Background(), 0, 0, time.Now(), 1); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestConditionMapping(t *testing.T) {
	tests := []struct {
		raw  string
		want trip.WeatherCondition
	}{
		{"Clear", trip.WeatherSunny},
		{"partly_cloudy", trip.WeatherCloudy},
		{"drizzle", trip.WeatherRainy},
		{"thunderstorm", trip.WeatherStormy},
		{"mist", trip.WeatherFoggy},
		{"something-new", trip.WeatherCloudy},
	}
	for _, tt := range tests {
		if got := conditionFor(tt.raw); got != tt.want {
			t.Errorf("conditionFor(%q): expected %s, got %s", tt.raw, tt.want, got)
		}
	}
}
