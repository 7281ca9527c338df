package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

// TripPlannerHTTPServer wraps the HTTP listener with graceful shutdown.
type TripPlannerHTTPServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
}

func NewTripPlannerHTTPServer(router *Router, muxRouter *mux.Router, addr string) *TripPlannerHTTPServer {
	return &TripPlannerHTTPServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      addr,
	}
}

// Start runs the server until an interrupt or termination signal arrives,
// then shuts down gracefully.
func (s *TripPlannerHTTPServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.muxRouter,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
