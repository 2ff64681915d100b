package ports

import (
	"context"
	"errors"
	"geometry-service/internal/domain"
)

var ErrWaypointNotFound = errors.New("waypoint not found")

// Port: a boundary for storing and retrieving Waypoint entities.
type WaypointRepository interface {
	// Retrieve all stored waypoints, ordered by name.
	ListWaypoints(ctx context.Context) ([]*domain.Waypoint, error)
	// Insert the waypoint or replace the position of an existing one with the same name.
	UpsertWaypoint(ctx context.Context, w *domain.Waypoint) error
}
