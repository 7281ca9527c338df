package server

import (
	"github.com/gorilla/mux"
)

type Router struct {
	itineraryHandler *ItineraryHandler
	router           *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(itineraryHandler *ItineraryHandler, router *mux.Router) *Router {
	return &Router{
		itineraryHandler: itineraryHandler,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/itineraries", r.itineraryHandler.CreateItinerary).Methods("POST")
	r.router.HandleFunc("/v1/itineraries", r.itineraryHandler.ListItineraries).Methods("GET")
	r.router.HandleFunc("/v1/itineraries/{id}", r.itineraryHandler.GetItinerary).Methods("GET")
	r.router.HandleFunc("/v1/itineraries/{id}/refine", r.itineraryHandler.RefineItinerary).Methods("POST")

	r.router.HandleFunc("/health", r.itineraryHandler.Health).Methods("GET")
}
