package main

import (
	"geometry-service/internal/adapters/repositories"
	"geometry-service/internal/api"
	"geometry-service/internal/config"
	"geometry-service/internal/platform/db"
	"geometry-service/internal/ports"
	"log"
	"net/http"
	"strings"
	"time"
)

// main is the application composition root.
// It picks a waypoint repository (Postgres or in-memory) and starts the HTTP server.
func main() {
	config.Load()

	databaseURL := config.Get("DATABASE_URL", "")
	seedPath := config.Get("SEED_PATH", "data/seeds/waypoints.json")
	port := config.Get("PORT", "8080")

	var repo ports.WaypointRepository
	if strings.TrimSpace(databaseURL) == "" {
		// Without a database the service runs on the seed file alone.
		seeds, err := repositories.LoadSeeds(seedPath)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("DATABASE_URL not set, using in-memory waypoints count=%d", len(seeds))
		repo = repositories.NewMemoryWaypointRepository(seeds)
	} else {
		conn, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		if err := repositories.InitSchema(conn); err != nil {
			log.Fatal(err)
		}
		repo = repositories.NewPostgresWaypointRepository(conn)
	}

	router := api.NewRouter(repo)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
