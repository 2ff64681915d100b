package services

import (
	"context"
	"errors"
	"fmt"
	"geometry-service/internal/domain"
)

// Plan a tour using a greedy nearest-neighbor algorithm.
//
// Each step moves to the closest unvisited waypoint, comparing legs as exact
// nanometer Distances. It does not attempt global optimization (e.g., TSP solvers).
// Ties go to the lexicographically smaller name so the result is deterministic.
func PlanTour(
	ctx context.Context,
	start *domain.Waypoint,
	stops []*domain.Waypoint,
	returnToStart bool,
) (*domain.Tour, error) {
	if start == nil {
		return nil, errors.New("plan tour: start must be non-nil")
	}
	if start.Name == "" {
		return nil, errors.New("plan tour: start name must be non-empty")
	}

	remaining := make(map[string]*domain.Waypoint, len(stops))
	for i, w := range stops {
		if w == nil {
			return nil, fmt.Errorf("plan tour: stop #%d is nil", i+1)
		}
		if w.Name == start.Name {
			continue
		}
		remaining[w.Name] = w
	}

	tour := &domain.Tour{
		Start: start.Name,
		Stops: make([]domain.TourStop, 0, len(remaining)),
	}

	current := *start
	var traveled domain.Distance

	for len(remaining) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("plan tour: %w", err)
		}

		var best *domain.Waypoint
		var bestLeg domain.Distance

		// Select next stop by minimum leg distance (greedy step).
		for _, w := range remaining {
			leg := current.DistanceTo(*w)
			if best == nil || leg.Less(bestLeg) || (leg.Equal(bestLeg) && w.Name < best.Name) {
				best = w
				bestLeg = leg
			}
		}

		traveled.AddInPlace(bestLeg)
		tour.Stops = append(tour.Stops, domain.TourStop{
			Name:     best.Name,
			Position: best.Position,
			Leg:      bestLeg,
			Traveled: traveled,
		})

		delete(remaining, best.Name)
		current = *best
	}

	// Optionally closes the loop back at the start for total tour metrics.
	if returnToStart && len(tour.Stops) > 0 {
		back := current.DistanceTo(*start)
		traveled.AddInPlace(back)
		tour.ReturnLeg = &back
	}

	tour.Total = traveled
	return tour, nil
}
