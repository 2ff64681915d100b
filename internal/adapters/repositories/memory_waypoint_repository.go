package repositories

import (
	"context"
	"errors"
	"geometry-service/internal/domain"
	"slices"
	"strings"
	"sync"
)

// In-memory implementation of the WaypointRepository port.
// Used when no DATABASE_URL is configured and in tests.
type MemoryWaypointRepository struct {
	mu sync.RWMutex
	m  map[string]domain.Waypoint
}

func NewMemoryWaypointRepository(waypoints []*domain.Waypoint) *MemoryWaypointRepository {
	m := make(map[string]domain.Waypoint, len(waypoints))
	for _, w := range waypoints {
		m[w.Name] = *w
	}
	return &MemoryWaypointRepository{m: m}
}

func (r *MemoryWaypointRepository) ListWaypoints(ctx context.Context) ([]*domain.Waypoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Waypoint, 0, len(r.m))
	for _, w := range r.m {
		out = append(out, &w)
	}
	slices.SortFunc(out, func(a, b *domain.Waypoint) int { return strings.Compare(a.Name, b.Name) })

	return out, nil
}

func (r *MemoryWaypointRepository) UpsertWaypoint(ctx context.Context, w *domain.Waypoint) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w == nil {
		return errors.New("upsert waypoint: waypoint is nil")
	}
	if w.Name == "" {
		return errors.New("upsert waypoint: empty waypoint name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.m == nil {
		r.m = make(map[string]domain.Waypoint)
	}
	r.m[w.Name] = *w

	return nil
}
