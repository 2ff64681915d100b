package services

import (
	"context"
	"fmt"
	"geometry-service/internal/domain"
	"geometry-service/internal/platform/obs"
	"geometry-service/internal/ports"
	"strings"
)

type PlanTourRequest struct {
	Start         string
	Stops         []string
	ReturnToStart bool
}

// PlanWaypointTour resolves waypoint names through the repository and plans a tour
// over them. An empty Stops list visits every stored waypoint other than the start.
func PlanWaypointTour(
	ctx context.Context,
	req PlanTourRequest,
	repo ports.WaypointRepository,
) (_ *domain.Tour, err error) {
	defer obs.Time(ctx, "services.PlanWaypointTour")(&err)

	all, err := repo.ListWaypoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan waypoint tour: list waypoints: %w", err)
	}

	byName := make(map[string]*domain.Waypoint, len(all))
	for _, w := range all {
		byName[w.Name] = w
	}

	startName := strings.TrimSpace(req.Start)
	start, ok := byName[startName]
	if !ok {
		return nil, fmt.Errorf("plan waypoint tour: start %q: %w", startName, ports.ErrWaypointNotFound)
	}

	stops := make([]*domain.Waypoint, 0, len(req.Stops))
	if len(req.Stops) == 0 {
		stops = append(stops, all...)
	} else {
		for _, name := range req.Stops {
			name = strings.TrimSpace(name)
			w, ok := byName[name]
			if !ok {
				return nil, fmt.Errorf("plan waypoint tour: stop %q: %w", name, ports.ErrWaypointNotFound)
			}
			stops = append(stops, w)
		}
	}

	tour, err := PlanTour(ctx, start, stops, req.ReturnToStart)
	if err != nil {
		return nil, fmt.Errorf("plan waypoint tour: %w", err)
	}

	return tour, nil
}
