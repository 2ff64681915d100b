package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"geometry-service/internal/domain"
	"geometry-service/internal/platform/obs"
)

// Postgres-backed implementation of the WaypointRepository port.
type PostgresWaypointRepository struct{ DB *sql.DB }

func NewPostgresWaypointRepository(db *sql.DB) *PostgresWaypointRepository {
	return &PostgresWaypointRepository{DB: db}
}

// Return all waypoints stored in the database.
func (p *PostgresWaypointRepository) ListWaypoints(ctx context.Context) (_ []*domain.Waypoint, err error) {
	defer obs.Time(ctx, "waypoints.ListWaypoints")(&err)

	if p.DB == nil {
		return nil, errors.New("postgres waypoint repository: DB is nil")
	}

	query := `
	SELECT
		name,
		x_m,
		y_m
	FROM waypoints
	ORDER BY name;
	`
	rows, err := p.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list waypoints: query waypoints table: %w", err)
	}
	defer rows.Close()

	waypoints := make([]*domain.Waypoint, 0, 64)
	for rows.Next() {
		var name string
		var x, y float64
		if err := rows.Scan(&name, &x, &y); err != nil {
			return nil, fmt.Errorf("list waypoints: scan row: %w", err)
		}
		waypoints = append(waypoints, &domain.Waypoint{Name: name, Position: domain.NewPoint2D(x, y)})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list waypoints: row iteration: %w", err)
	}

	return waypoints, nil
}

// Insert a waypoint or move an existing one.
func (p *PostgresWaypointRepository) UpsertWaypoint(ctx context.Context, w *domain.Waypoint) (err error) {
	defer obs.Time(ctx, "waypoints.UpsertWaypoint")(&err)

	if w == nil {
		return errors.New("upsert waypoint: waypoint is nil")
	}
	return p.upsertMany(ctx, []*domain.Waypoint{w})
}

func (p *PostgresWaypointRepository) upsertMany(ctx context.Context, waypoints []*domain.Waypoint) error {
	if p.DB == nil {
		return errors.New("postgres waypoint repository: DB is nil")
	}

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("upsert waypoints: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO waypoints (name, x_m, y_m)
	VALUES ($1, $2, $3)
	ON CONFLICT (name) DO UPDATE
	SET x_m = EXCLUDED.x_m,
		y_m = EXCLUDED.y_m;
	`)
	if err != nil {
		return fmt.Errorf("upsert waypoints: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, w := range waypoints {
		if w.Name == "" {
			return errors.New("upsert waypoints: empty waypoint name")
		}
		if _, err := stmt.ExecContext(ctx, w.Name, w.Position.X(), w.Position.Y()); err != nil {
			return fmt.Errorf("upsert waypoints: name=%q: %w", w.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("upsert waypoints: commit tx: %w", err)
	}

	return nil
}
