package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"ai-trip-planner/internal/app"
	"ai-trip-planner/internal/metrics"
	"ai-trip-planner/internal/storage"
	"ai-trip-planner/internal/trip"

	"github.com/gorilla/mux"
)

// ItineraryHandler serves the planning API.
type ItineraryHandler struct {
	app      *app.App
	dataPath string
}

// NewItineraryHandler creates the handler backed by the application layer.
func NewItineraryHandler(a *app.App, dataPath string) *ItineraryHandler {
	return &ItineraryHandler{app: a, dataPath: dataPath}
}

// CreateItinerary handles POST /v1/itineraries.
func (h *ItineraryHandler) CreateItinerary(w http.ResponseWriter, r *http.Request) {
	var req trip.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Destination == "" || req.DurationDays < 1 {
		http.Error(w, "destination and duration_days are required", http.StatusBadRequest)
		return
	}

	itinerary, err := h.app.PlanTrip(r.Context(), req)
	if err != nil {
		log.Println("Error planning trip:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, itinerary)
}

// GetItinerary handles GET /v1/itineraries/{id}.
func (h *ItineraryHandler) GetItinerary(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	itinerary, err := h.app.GetItinerary(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "Itinerary not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Println("Error loading itinerary:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, itinerary)
}

// RefineItinerary handles POST /v1/itineraries/{id}/refine.
func (h *ItineraryHandler) RefineItinerary(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	itinerary, err := h.app.RefineItinerary(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "Itinerary not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Println("Error refining itinerary:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, itinerary)
}

// ListItineraries handles GET /v1/itineraries.
func (h *ItineraryHandler) ListItineraries(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			http.Error(w, "Invalid argument limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	itineraries, err := h.app.ListRecentItineraries(r.Context(), limit)
	if err != nil {
		log.Println("Error listing itineraries:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if itineraries == nil {
		itineraries = []trip.Itinerary{}
	}

	writeJSON(w, http.StatusOK, itineraries)
}

// Health handles GET /health.
func (h *ItineraryHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"system": metrics.GetSysHealth(h.dataPath),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("Error encoding response:", err)
	}
}
