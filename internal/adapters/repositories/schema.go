package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"geometry-service/internal/domain"
	"math"
	"os"
	"strings"
)

// Initialize the Postgres database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createWaypointsQuery := `
	CREATE TABLE IF NOT EXISTS waypoints (
		name TEXT PRIMARY KEY,
		x_m DOUBLE PRECISION NOT NULL,
		y_m DOUBLE PRECISION NOT NULL
	);
	`

	statements := []string{
		createWaypointsQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type WaypointSeed struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Read and validate waypoint seeds from a JSON file.
func LoadSeeds(jsonPath string) ([]*domain.Waypoint, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load seeds: read %q: %w", jsonPath, err)
	}

	var data []WaypointSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load seeds: parse json: %w", err)
	}

	waypoints := make([]*domain.Waypoint, 0, len(data))
	for i, item := range data {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("load seeds: item at index %d: name cannot be empty", i+1)
		}
		if !finite(item.X) || !finite(item.Y) {
			return nil, fmt.Errorf("load seeds: item %q: coordinates must be finite", name)
		}
		waypoints = append(waypoints, &domain.Waypoint{
			Name:     name,
			Position: domain.NewPoint2D(item.X, item.Y),
		})
	}

	return waypoints, nil
}

// Populate the database with waypoint data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	waypoints, err := LoadSeeds(jsonPath)
	if err != nil {
		return fmt.Errorf("seed waypoints: %w", err)
	}

	repo := NewPostgresWaypointRepository(db)
	if err := repo.upsertMany(context.Background(), waypoints); err != nil {
		return fmt.Errorf("seed waypoints: %w", err)
	}

	return nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
