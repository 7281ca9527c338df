package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ai-trip-planner/internal/trip"

	"github.com/samber/lo"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// Place is a single result from the places search API.
type Place struct {
	PlaceID  string   `json:"place_id"`
	Name     string   `json:"name"`
	Vicinity string   `json:"vicinity"`
	Types    []string `json:"types"`
	Rating   float64  `json:"rating"`
	Ratings  int      `json:"user_ratings_total"`
	Geometry struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

type searchResponse struct {
	Results []Place `json:"results"`
	Status  string  `json:"status"`
}

// PlaceDetails holds the subset of the place details response we use.
type PlaceDetails struct {
	Website string `json:"website"`
}

type detailsResponse struct {
	Result PlaceDetails `json:"result"`
	Status string       `json:"status"`
}

// Client talks to the places search API.
type Client interface {
	SearchNearby(ctx context.Context, lat, lon float64, radiusMeters int, placeType string) ([]Place, error)
	Details(ctx context.Context, placeID string) (PlaceDetails, error)
}

type placesClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// NewClient creates a places API client. An empty baseURL selects the
// production endpoint.
func NewClient(apiKey, baseURL string) Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &placesClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiKey:     apiKey,
		baseURL:    baseURL,
	}
}

// SearchNearby fetches places of one type around a coordinate.
func (c *placesClient) SearchNearby(ctx context.Context, lat, lon float64, radiusMeters int, placeType string) ([]Place, error) {
	u := fmt.Sprintf("%s/nearbysearch/json?location=%s&radius=%d&type=%s&key=%s",
		c.baseURL,
		url.QueryEscape(fmt.Sprintf("%f,%f", lat, lon)),
		radiusMeters,
		url.QueryEscape(placeType),
		url.QueryEscape(c.apiKey),
	)

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places api error: status %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if sr.Status != "" && sr.Status != "OK" && sr.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places api error: status %s", sr.Status)
	}

	return sr.Results, nil
}

// Details fetches extra fields for a single place, currently just the website.
func (c *placesClient) Details(ctx context.Context, placeID string) (PlaceDetails, error) {
	u := fmt.Sprintf("%s/details/json?place_id=%s&fields=website&key=%s",
		c.baseURL,
		url.QueryEscape(placeID),
		url.QueryEscape(c.apiKey),
	)

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return PlaceDetails{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return PlaceDetails{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return PlaceDetails{}, fmt.Errorf("places api error: status %d", resp.StatusCode)
	}

	var dr detailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return PlaceDetails{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if dr.Status != "" && dr.Status != "OK" {
		return PlaceDetails{}, fmt.Errorf("places api error: status %s", dr.Status)
	}

	return dr.Result, nil
}

// typeCategories maps API place types to trip categories, most specific first.
var typeCategories = []struct {
	placeType string
	category  trip.Category
}{
	{"restaurant", trip.CategoryRestaurant},
	{"cafe", trip.CategoryRestaurant},
	{"museum", trip.CategoryMuseum},
	{"art_gallery", trip.CategoryMuseum},
	{"park", trip.CategoryPark},
	{"zoo", trip.CategoryPark},
	{"tourist_attraction", trip.CategoryAttraction},
	{"shopping_mall", trip.CategoryShopping},
	{"department_store", trip.CategoryShopping},
	{"church", trip.CategoryReligiousSite},
	{"mosque", trip.CategoryReligiousSite},
	{"temple", trip.CategoryReligiousSite},
	{"hindu_temple", trip.CategoryReligiousSite},
	{"synagogue", trip.CategoryReligiousSite},
	{"night_club", trip.CategoryNightlife},
	{"bar", trip.CategoryNightlife},
	{"amusement_park", trip.CategoryAdventure},
	{"campground", trip.CategoryAdventure},
	{"natural_feature", trip.CategoryBeach},
}

// CategoryFor derives a trip category from the API place types, refined by
// name and description keywords for the scenic sunrise/sunset bands.
func CategoryFor(placeTypes []string, name, description string) trip.Category {
	text := strings.ToLower(name + " " + description)
	if strings.Contains(text, "sunrise") {
		return trip.CategoryScenicSunrise
	}
	if strings.Contains(text, "sunset") {
		return trip.CategoryScenicSunset
	}

	typeSet := make(map[string]bool, len(placeTypes))
	for _, t := range placeTypes {
		typeSet[t] = true
	}
	for _, m := range typeCategories {
		if typeSet[m.placeType] {
			return m.category
		}
	}
	return trip.CategoryOther
}

// ToPOIs converts API places into trip POIs, preserving discovery order.
func ToPOIs(results []Place) []trip.POI {
	return lo.Map(results, func(p Place, _ int) trip.POI {
		return trip.POI{
			ID:          p.PlaceID,
			Name:        p.Name,
			Description: p.Vicinity,
			Category:    CategoryFor(p.Types, p.Name, p.Vicinity),
			Coordinates: trip.Coordinates{Latitude: p.Geometry.Location.Lat, Longitude: p.Geometry.Location.Lng},
			Rating:      p.Rating,
			ReviewCount: p.Ratings,
		}
	})
}

// interestTypes maps traveller interests to API place types to search.
var interestTypes = map[string][]string{
	"food":        {"restaurant", "cafe"},
	"dining":      {"restaurant"},
	"sightseeing": {"tourist_attraction", "museum"},
	"history":     {"museum", "church"},
	"art":         {"art_gallery", "museum"},
	"nature":      {"park", "zoo"},
	"shopping":    {"shopping_mall"},
	"nightlife":   {"night_club", "bar"},
	"religious":   {"church", "mosque", "hindu_temple"},
	"adventure":   {"amusement_park", "campground"},
}

// TypesForInterests resolves the API place types to query for the given
// interests, with a sensible default mix when nothing matches.
func TypesForInterests(interests []string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(ts []string) {
		for _, t := range ts {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}

	for _, interest := range interests {
		if ts, ok := interestTypes[strings.ToLower(strings.TrimSpace(interest))]; ok {
			add(ts)
		}
	}
	if len(out) == 0 {
		add([]string{"tourist_attraction", "museum", "park", "restaurant"})
	}
	return out
}
