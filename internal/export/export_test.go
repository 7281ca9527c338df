package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ai-trip-planner/internal/trip"
)

func sampleItinerary() trip.Itinerary {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	return trip.Itinerary{
		ID:          "it-1",
		Destination: "lisbon",
		Days: []trip.DayPlan{
			{
				Date: day,
				Items: []trip.DayItem{
					{
						POIID:           "p1",
						Name:            "Castle of St George",
						Start:           day.Add(9 * time.Hour),
						End:             day.Add(11 * time.Hour),
						DurationMinutes: 120,
					},
					{
						Name:            "Lunch break",
						Start:           day.Add(12 * time.Hour),
						End:             day.Add(13 * time.Hour),
						DurationMinutes: 60,
					},
				},
			},
		},
		Overflow:  []string{},
		Warnings:  []string{},
		Version:   2,
		CreatedAt: time.Now(),
	}
}

func TestToICal(t *testing.T) {
	ical := ToICal(sampleItinerary())

	if !strings.Contains(ical, "BEGIN:VCALENDAR") || !strings.Contains(ical, "END:VCALENDAR") {
		t.Fatal("output is not a calendar document")
	}
	if got := strings.Count(ical, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("expected 2 events, got %d", got)
	}
	if !strings.Contains(ical, "Castle of St George") {
		t.Error("missing activity summary")
	}
	if !strings.Contains(ical, "Lunch break") {
		t.Error("missing lunch break event")
	}
	if !strings.Contains(ical, "Lisbon") {
		t.Error("expected title-cased destination as location")
	}
}

func TestWriteJSONFile(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteJSONFile(sampleItinerary(), dir)
	if err != nil {
		t.Fatalf("WriteJSONFile failed: %v", err)
	}
	if filepath.Base(path) != "lisbon-v2.json" {
		t.Errorf("unexpected derived filename %s", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read exported file: %v", err)
	}
	var got trip.Itinerary
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("exported file is not valid JSON: %v", err)
	}
	if got.ID != "it-1" || got.Version != 2 {
		t.Errorf("unexpected itinerary content: id=%s version=%d", got.ID, got.Version)
	}
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")

	if err := WriteReport(sampleItinerary(), path); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	html := string(data)
	if !strings.Contains(html, "echarts") {
		t.Error("report does not embed a chart")
	}
	if !strings.Contains(html, "Trip to Lisbon") {
		t.Error("report missing title")
	}
}
