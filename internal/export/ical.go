package export

import (
	"fmt"
	"os"
	"strings"

	"ai-trip-planner/internal/trip"

	ics "github.com/arran4/golang-ical"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// ToICal renders an itinerary as an iCalendar document with one event per
// scheduled item, lunch breaks included.
func ToICal(it trip.Itinerary) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//ai-trip-planner//EN")
	if it.Destination != "" {
		cal.SetName(fmt.Sprintf("Trip to %s", titleCaser.String(it.Destination)))
	}

	for dayIdx, day := range it.Days {
		for itemIdx, item := range day.Items {
			uid := fmt.Sprintf("%s-%d-%d", it.ID, dayIdx, itemIdx)
			event := cal.AddEvent(uid)
			event.SetCreatedTime(it.CreatedAt)
			event.SetStartAt(item.Start)
			event.SetEndAt(item.End)
			event.SetSummary(item.Name)
			if it.Destination != "" {
				event.SetLocation(titleCaser.String(it.Destination))
			}
			if item.Note != "" {
				event.SetDescription(item.Note)
			}
		}
	}

	return cal.Serialize()
}

// WriteICalFile writes the itinerary calendar to path.
func WriteICalFile(it trip.Itinerary, path string) error {
	data := ToICal(it)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return fmt.Errorf("failed to write calendar file: %w", err)
	}
	return nil
}

// suggestedFilename builds a safe default filename for exports.
func suggestedFilename(it trip.Itinerary, ext string) string {
	base := strings.ToLower(strings.ReplaceAll(it.Destination, " ", "-"))
	if base == "" {
		base = it.ID
	}
	return fmt.Sprintf("%s-v%d.%s", base, it.Version, ext)
}
