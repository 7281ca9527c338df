package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ai-trip-planner/internal/trip"
)

// ErrNotFound is returned when an itinerary id has no stored record.
var ErrNotFound = errors.New("itinerary not found")

// StoredItinerary is an itinerary together with the inputs it was built from,
// so a later refine can rebuild without re-fetching collaborators.
type StoredItinerary struct {
	Itinerary trip.Itinerary
	Request   trip.TripRequest
	POIs      []trip.POI
	Weather   []trip.WeatherInfo
	UpdatedAt time.Time
}

// ItineraryRepository is a database-backed repository for itineraries.
type ItineraryRepository struct {
	db *sql.DB
}

// NewItineraryRepository creates a new ItineraryRepository.
func NewItineraryRepository(db *sql.DB) *ItineraryRepository {
	return &ItineraryRepository{db: db}
}

// Save inserts or replaces an itinerary together with its build inputs.
func (r *ItineraryRepository) Save(ctx context.Context, rec StoredItinerary) error {
	itineraryJSON, err := json.Marshal(rec.Itinerary)
	if err != nil {
		return fmt.Errorf("failed to marshal itinerary: %w", err)
	}
	requestJSON, err := json.Marshal(rec.Request)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	poisJSON, err := json.Marshal(rec.POIs)
	if err != nil {
		return fmt.Errorf("failed to marshal pois: %w", err)
	}
	weatherJSON, err := json.Marshal(rec.Weather)
	if err != nil {
		return fmt.Errorf("failed to marshal weather: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO itineraries (id, destination, version, request_json, pois_json, weather_json, itinerary_json, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			version = excluded.version,
			request_json = excluded.request_json,
			pois_json = excluded.pois_json,
			weather_json = excluded.weather_json,
			itinerary_json = excluded.itinerary_json,
			updated_at = excluded.updated_at`,
		rec.Itinerary.ID,
		rec.Itinerary.Destination,
		rec.Itinerary.Version,
		string(requestJSON),
		string(poisJSON),
		string(weatherJSON),
		string(itineraryJSON),
		rec.Itinerary.CreatedAt,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to save itinerary %s: %w", rec.Itinerary.ID, err)
	}
	return nil
}

// Get loads an itinerary and its build inputs by id.
func (r *ItineraryRepository) Get(ctx context.Context, id string) (*StoredItinerary, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT request_json, pois_json, weather_json, itinerary_json, updated_at
		FROM itineraries WHERE id = ?`, id)

	var requestJSON, poisJSON, itineraryJSON string
	var weatherJSON sql.NullString
	var rec StoredItinerary
	err := row.Scan(&requestJSON, &poisJSON, &weatherJSON, &itineraryJSON, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load itinerary %s: %w", id, err)
	}

	if err := json.Unmarshal([]byte(itineraryJSON), &rec.Itinerary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal itinerary: %w", err)
	}
	if err := json.Unmarshal([]byte(requestJSON), &rec.Request); err != nil {
		return nil, fmt.Errorf("failed to unmarshal request: %w", err)
	}
	if err := json.Unmarshal([]byte(poisJSON), &rec.POIs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pois: %w", err)
	}
	if weatherJSON.Valid && weatherJSON.String != "" {
		if err := json.Unmarshal([]byte(weatherJSON.String), &rec.Weather); err != nil {
			return nil, fmt.Errorf("failed to unmarshal weather: %w", err)
		}
	}
	return &rec, nil
}

// ListRecent retrieves the N most recently updated itineraries.
func (r *ItineraryRepository) ListRecent(ctx context.Context, limit int) ([]trip.Itinerary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT itinerary_json FROM itineraries
		ORDER BY updated_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent itineraries: %w", err)
	}
	defer rows.Close()

	var itineraries []trip.Itinerary
	for rows.Next() {
		var blob string
		if err := rows.Scan(&blob); err != nil {
			return nil, fmt.Errorf("failed to scan itinerary row: %w", err)
		}
		var it trip.Itinerary
		if err := json.Unmarshal([]byte(blob), &it); err != nil {
			return nil, fmt.Errorf("failed to unmarshal itinerary: %w", err)
		}
		itineraries = append(itineraries, it)
	}
	return itineraries, rows.Err()
}
