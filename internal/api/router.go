package api

import (
	"geometry-service/internal/api/handlers"
	"geometry-service/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.WaypointRepository) http.Handler {
	mux := http.NewServeMux()

	waypointHandler := &handlers.WaypointHandler{Repo: repo}
	tourHandler := &handlers.TourHandler{Repo: repo}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/distances/convert", handlers.ConvertDistance)
	mux.HandleFunc("/distances/scale", handlers.ScaleDistance)
	mux.HandleFunc("/points/distance", handlers.PointDistance)
	mux.HandleFunc("/paths/measure", handlers.MeasurePath)
	mux.HandleFunc("/waypoints", waypointHandler.Serve)
	mux.HandleFunc("/tours", tourHandler.Plan)

	return loggingMiddleware(mux)
}
