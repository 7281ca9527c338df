package app

import (
	"context"
	"fmt"
	"log"

	"ai-trip-planner/internal/config"
	"ai-trip-planner/internal/metrics"
	"ai-trip-planner/internal/places"
	"ai-trip-planner/internal/schedule"
	"ai-trip-planner/internal/storage"
	"ai-trip-planner/internal/trip"
	"ai-trip-planner/internal/weather"
)

const searchRadiusMeters = 10000

// App holds the application's dependencies.
type App struct {
	placesClient  places.Client
	weatherClient weather.Client
	enricher      *places.Enricher
	builder       *schedule.Builder
	itineraryRepo *storage.ItineraryRepository
	metricsStore  *metrics.Store
	cfg           *config.Config
}

// NewApp creates and initializes a new App instance. weatherClient may be nil
// when no weather API is configured.
func NewApp(
	placesClient places.Client,
	weatherClient weather.Client,
	builder *schedule.Builder,
	itineraryRepo *storage.ItineraryRepository,
	metricsStore *metrics.Store,
	cfg *config.Config,
) *App {
	return &App{
		placesClient:  placesClient,
		weatherClient: weatherClient,
		enricher:      places.NewEnricher(),
		builder:       builder,
		itineraryRepo: itineraryRepo,
		metricsStore:  metricsStore,
		cfg:           cfg,
	}
}

// PlanTrip discovers candidate places for the request, fetches the forecast
// when available, builds the day-by-day itinerary and stores it with its
// inputs so it can be refined later.
func (a *App) PlanTrip(ctx context.Context, req trip.TripRequest) (*trip.Itinerary, error) {
	pois, err := a.discoverPOIs(ctx, req)
	if err != nil {
		return nil, err
	}
	log.Printf("Discovered %d candidate places for %s", len(pois), req.Destination)

	forecast := a.fetchForecast(ctx, req)

	itinerary, err := a.builder.Build(ctx, req, pois, forecast)
	if err != nil {
		return nil, fmt.Errorf("failed to build itinerary: %w", err)
	}

	if err := a.itineraryRepo.Save(ctx, storage.StoredItinerary{
		Itinerary: *itinerary,
		Request:   req,
		POIs:      pois,
		Weather:   forecast,
	}); err != nil {
		return nil, fmt.Errorf("failed to store itinerary: %w", err)
	}

	return itinerary, nil
}

// RefineItinerary rebuilds a stored itinerary from its original inputs,
// bumping the version. A fresh forecast is fetched when a weather client is
// configured; otherwise the stored forecast is reused.
func (a *App) RefineItinerary(ctx context.Context, id string) (*trip.Itinerary, error) {
	stored, err := a.itineraryRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load itinerary %s: %w", id, err)
	}

	forecast := stored.Weather
	if fresh := a.fetchForecast(ctx, stored.Request); len(fresh) > 0 {
		forecast = fresh
	}

	rebuilt, err := a.builder.Build(ctx, stored.Request, stored.POIs, forecast)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild itinerary: %w", err)
	}

	// Keep the identity of the original plan
	rebuilt.ID = stored.Itinerary.ID
	rebuilt.Version = stored.Itinerary.Version + 1
	rebuilt.CreatedAt = stored.Itinerary.CreatedAt

	if err := a.itineraryRepo.Save(ctx, storage.StoredItinerary{
		Itinerary: *rebuilt,
		Request:   stored.Request,
		POIs:      stored.POIs,
		Weather:   forecast,
	}); err != nil {
		return nil, fmt.Errorf("failed to store refined itinerary: %w", err)
	}

	return rebuilt, nil
}

// GetItinerary loads a stored itinerary by id.
func (a *App) GetItinerary(ctx context.Context, id string) (*trip.Itinerary, error) {
	stored, err := a.itineraryRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &stored.Itinerary, nil
}

// ListRecentItineraries returns the most recently updated plans.
func (a *App) ListRecentItineraries(ctx context.Context, limit int) ([]trip.Itinerary, error) {
	return a.itineraryRepo.ListRecent(ctx, limit)
}

// CleanupMetrics removes advisor execution records older than N days.
func (a *App) CleanupMetrics(olderThanDays int) (int64, error) {
	return a.metricsStore.Cleanup(olderThanDays)
}

// DailyUsage reports advisor token usage for the last N days.
func (a *App) DailyUsage(days int) ([]metrics.DailyUsage, error) {
	return a.metricsStore.GetDailyUsage(days)
}

func (a *App) discoverPOIs(ctx context.Context, req trip.TripRequest) ([]trip.POI, error) {
	types := places.TypesForInterests(req.Interests)

	seen := make(map[string]bool)
	var results []places.Place
	for _, placeType := range types {
		found, err := a.placesClient.SearchNearby(ctx,
			req.Coordinates.Latitude, req.Coordinates.Longitude,
			searchRadiusMeters, placeType)
		if err != nil {
			return nil, fmt.Errorf("failed to search places (type %s): %w", placeType, err)
		}
		for _, p := range found {
			if !seen[p.PlaceID] {
				seen[p.PlaceID] = true
				results = append(results, p)
			}
		}
	}

	pois := places.ToPOIs(results)
	pois = a.enrichDescriptions(ctx, pois)
	return places.ScoreAll(pois, req), nil
}

// enrichDescriptions fills in descriptions for places the search left blank,
// using each place's website from the details API. Best-effort all the way:
// a failed lookup or an unreadable page just leaves the description empty.
func (a *App) enrichDescriptions(ctx context.Context, pois []trip.POI) []trip.POI {
	urls := make(map[string]string)
	for _, p := range pois {
		if p.Description != "" {
			continue
		}
		details, err := a.placesClient.Details(ctx, p.ID)
		if err != nil {
			log.Printf("Place details unavailable for %s: %v", p.ID, err)
			continue
		}
		if details.Website != "" {
			urls[p.ID] = details.Website
		}
	}
	if len(urls) == 0 {
		return pois
	}
	return a.enricher.Enrich(pois, urls)
}

// fetchForecast is best-effort: planning proceeds without weather on any
// failure.
func (a *App) fetchForecast(ctx context.Context, req trip.TripRequest) []trip.WeatherInfo {
	if a.weatherClient == nil {
		return nil
	}
	forecast, err := a.weatherClient.Forecast(ctx,
		req.Coordinates.Latitude, req.Coordinates.Longitude,
		req.StartDate, req.DurationDays)
	if err != nil {
		log.Printf("Weather forecast unavailable, planning without it: %v", err)
		return nil
	}
	return forecast
}
