package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-trip-planner/internal/trip"
)

func TestSearchNearby(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("type"); got != "museum" {
			t.Errorf("expected type=museum, got %q", got)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("expected key=test-key, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{
					"place_id": "p1",
					"name": "City Museum",
					"vicinity": "12 Main St",
					"types": ["museum", "point_of_interest"],
					"rating": 4.4,
					"user_ratings_total": 1250,
					"geometry": {"location": {"lat": 12.97, "lng": 77.59}}
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	results, err := client.SearchNearby(context.Background(), 12.97, 77.59, 5000, "museum")
	if err != nil {
		t.Fatalf("SearchNearby failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].PlaceID != "p1" || results[0].Name != "City Museum" {
		t.Errorf("unexpected result: %+v", results[0])
	}
	if results[0].Geometry.Location.Lat != 12.97 {
		t.Errorf("expected lat 12.97, got %f", results[0].Geometry.Location.Lat)
	}
}

func TestDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("place_id"); got != "p1" {
			t.Errorf("expected place_id=p1, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "OK", "result": {"website": "https://citymuseum.example"}}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	details, err := client.Details(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Details failed: %v", err)
	}
	if details.Website != "https://citymuseum.example" {
		t.Errorf("unexpected website: %q", details.Website)
	}
}

func TestDetailsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "NOT_FOUND"}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	if _, err := client.Details(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for NOT_FOUND status")
	}
}

func TestSearchNearbyAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED", "results": []}`))
	}))
	defer server.Close()

	client := NewClient("bad-key", server.URL)
	if _, err := client.SearchNearby(context.Background(), 0, 0, 1000, "park"); err == nil {
		t.Fatal("expected error for REQUEST_DENIED status")
	}
}

func TestSearchNearbyZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	results, err := client.SearchNearby(context.Background(), 0, 0, 1000, "zoo")
	if err != nil {
		t.Fatalf("expected no error for ZERO_RESULTS, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected empty results, got %d", len(results))
	}
}

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		name        string
		types       []string
		placeName   string
		description string
		want        trip.Category
	}{
		{"Museum", []string{"museum", "point_of_interest"}, "City Museum", "", trip.CategoryMuseum},
		{"Restaurant", []string{"restaurant", "food"}, "Pasta Place", "", trip.CategoryRestaurant},
		{"Temple", []string{"hindu_temple", "place_of_worship"}, "Old Temple", "", trip.CategoryReligiousSite},
		{"SunriseKeywordWins", []string{"tourist_attraction"}, "Sunrise Point", "", trip.CategoryScenicSunrise},
		{"SunsetInDescription", []string{"park"}, "West Hill", "Famous sunset viewing spot", trip.CategoryScenicSunset},
		{"UnknownTypes", []string{"locksmith"}, "Key Shop", "", trip.CategoryOther},
		{"NoTypes", nil, "Mystery Spot", "", trip.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CategoryFor(tt.types, tt.placeName, tt.description)
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestToPOIsPreservesOrder(t *testing.T) {
	results := []Place{
		{PlaceID: "a", Name: "First", Types: []string{"museum"}},
		{PlaceID: "b", Name: "Second", Types: []string{"park"}},
		{PlaceID: "c", Name: "Third", Types: []string{"restaurant"}},
	}
	pois := ToPOIs(results)
	if len(pois) != 3 {
		t.Fatalf("expected 3 POIs, got %d", len(pois))
	}
	for i, id := range []string{"a", "b", "c"} {
		if pois[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, pois[i].ID)
		}
	}
	if pois[1].Category != trip.CategoryPark {
		t.Errorf("expected park, got %s", pois[1].Category)
	}
}

func TestTypesForInterests(t *testing.T) {
	types := TypesForInterests([]string{"History", "nature"})
	want := map[string]bool{"museum": true, "church": true, "park": true, "zoo": true}
	if len(types) != len(want) {
		t.Fatalf("expected %d types, got %d: %v", len(want), len(types), types)
	}
	for _, ty := range types {
		if !want[ty] {
			t.Errorf("unexpected type %s", ty)
		}
	}

	fallback := TypesForInterests(nil)
	if len(fallback) == 0 {
		t.Error("expected default types for empty interests")
	}
}
