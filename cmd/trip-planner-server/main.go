package main

import (
	"context"
	"log"
	"path/filepath"

	"ai-trip-planner/internal/app"
	"ai-trip-planner/internal/config"
	"ai-trip-planner/internal/server"

	"github.com/gorilla/mux"
)

func main() {
	ctx := context.Background()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	application, cleanup, err := app.Build(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer cleanup()

	muxRouter := mux.NewRouter()
	handler := server.NewItineraryHandler(application, filepath.Dir(cfg.DatabasePath))
	router := server.NewRouter(handler, muxRouter)

	httpServer := server.NewTripPlannerHTTPServer(router, muxRouter, cfg.ServerAddr)
	httpServer.Start()
}
