package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/battlemap/internal/battlemap"
)

// ErrMapNotFound is returned when no map is stored under the requested name.
var ErrMapNotFound = errors.New("map not found")

// MapRepository stores projected map templates.
type MapRepository struct {
	pool *pgxpool.Pool
}

// NewMapRepository creates a new map repository
func NewMapRepository(pool *pgxpool.Pool) *MapRepository {
	return &MapRepository{pool: pool}
}

// Save upserts the map under name. Returns false when the stored row already
// carries the same fingerprint and nothing was written.
func (r *MapRepository) Save(ctx context.Context, name string, m battlemap.MapModel, fingerprint []byte) (bool, error) {
	points, err := json.Marshal(m.PointStatus)
	if err != nil {
		return false, fmt.Errorf("encoding points of map %q: %w", name, err)
	}
	resources, err := json.Marshal(m.ResourcePoints)
	if err != nil {
		return false, fmt.Errorf("encoding resources of map %q: %w", name, err)
	}

	tag, err := r.pool.Exec(ctx, `
		INSERT INTO map_templates (name, width, height, point_status, resource_points, fingerprint)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name) DO UPDATE SET
			width = EXCLUDED.width,
			height = EXCLUDED.height,
			point_status = EXCLUDED.point_status,
			resource_points = EXCLUDED.resource_points,
			fingerprint = EXCLUDED.fingerprint,
			updated_at = now()
		WHERE map_templates.fingerprint IS DISTINCT FROM EXCLUDED.fingerprint`,
		name, m.Width, m.Height, points, resources, fingerprint,
	)
	if err != nil {
		return false, fmt.Errorf("saving map %q: %w", name, err)
	}

	saved := tag.RowsAffected() > 0
	slog.Debug("map saved", "name", name, "changed", saved)
	return saved, nil
}

// Load returns the stored map model.
func (r *MapRepository) Load(ctx context.Context, name string) (*battlemap.MapModel, error) {
	var (
		m         battlemap.MapModel
		points    []byte
		resources []byte
	)

	err := r.pool.QueryRow(ctx,
		`SELECT width, height, point_status, resource_points
		 FROM map_templates WHERE name = $1`, name,
	).Scan(&m.Width, &m.Height, &points, &resources)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", ErrMapNotFound, name)
		}
		return nil, fmt.Errorf("loading map %q: %w", name, err)
	}

	if err := json.Unmarshal(points, &m.PointStatus); err != nil {
		return nil, fmt.Errorf("decoding points of map %q: %w", name, err)
	}
	if err := json.Unmarshal(resources, &m.ResourcePoints); err != nil {
		return nil, fmt.Errorf("decoding resources of map %q: %w", name, err)
	}
	return &m, nil
}

// LoadTemplate loads the stored map and validates it into a template.
func (r *MapRepository) LoadTemplate(ctx context.Context, name string) (*battlemap.Template, error) {
	m, err := r.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	t, err := m.Template()
	if err != nil {
		return nil, fmt.Errorf("stored map %q: %w", name, err)
	}
	return t, nil
}

// Fingerprint returns the fingerprint stored with the map.
func (r *MapRepository) Fingerprint(ctx context.Context, name string) ([]byte, error) {
	var fp []byte
	err := r.pool.QueryRow(ctx,
		`SELECT fingerprint FROM map_templates WHERE name = $1`, name,
	).Scan(&fp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", ErrMapNotFound, name)
		}
		return nil, fmt.Errorf("loading fingerprint of map %q: %w", name, err)
	}
	return fp, nil
}

// List returns the names of all stored maps in ascending order.
func (r *MapRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT name FROM map_templates ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing maps: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scanning map names: %w", err)
	}
	return names, nil
}

// Delete removes the map stored under name.
func (r *MapRepository) Delete(ctx context.Context, name string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM map_templates WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("deleting map %q: %w", name, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %q", ErrMapNotFound, name)
	}
	return nil
}
