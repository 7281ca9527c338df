package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ai-trip-planner/internal/trip"
)

// WriteJSONFile stores the itinerary as indented JSON. When path is a
// directory, a filename is derived from the destination and version.
func WriteJSONFile(it trip.Itinerary, path string) (string, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, suggestedFilename(it, "json"))
	}

	data, err := json.MarshalIndent(it, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal itinerary: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write itinerary file: %w", err)
	}
	return path, nil
}
