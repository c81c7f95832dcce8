package geodata

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/openearth/chw-service/internal/models"
)

// SaveRun persists one classification run.
func (r *Repository) SaveRun(ctx context.Context, rec *models.ClassificationRecord) error {
	query := `
		INSERT INTO classification_runs (
			id, coastline_id, notification,
			geological_layout, wave_exposure, tidal_range,
			flora_fauna, sediment_balance, storm_climate,
			code, slope
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at;
	`
	err := r.db.QueryRow(ctx, query,
		rec.ID,
		rec.CoastlineID,
		rec.Notification,
		string(rec.Axes.GeologicalLayout),
		string(rec.Axes.WaveExposure),
		string(rec.Axes.TidalRange),
		string(rec.Axes.FloraFauna),
		string(rec.Axes.SedimentBalance),
		string(rec.Axes.StormClimate),
		rec.Code,
		rec.Slope,
	).Scan(&rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("geodata: failed to save classification run: %w", err)
	}
	return nil
}

const runColumns = `
	id, coastline_id, notification,
	geological_layout, wave_exposure, tidal_range,
	flora_fauna, sediment_balance, storm_climate,
	code, slope, created_at
`

func scanRun(row pgx.Row) (*models.ClassificationRecord, error) {
	rec := &models.ClassificationRecord{}
	err := row.Scan(
		&rec.ID,
		&rec.CoastlineID,
		&rec.Notification,
		&rec.Axes.GeologicalLayout,
		&rec.Axes.WaveExposure,
		&rec.Axes.TidalRange,
		&rec.Axes.FloraFauna,
		&rec.Axes.SedimentBalance,
		&rec.Axes.StormClimate,
		&rec.Code,
		&rec.Slope,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// GetRun returns one persisted run by id.
func (r *Repository) GetRun(ctx context.Context, id uuid.UUID) (*models.ClassificationRecord, error) {
	query := `SELECT ` + runColumns + ` FROM classification_runs WHERE id = $1;`
	rec, err := scanRun(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("geodata: classification run %s not found", id)
		}
		return nil, fmt.Errorf("geodata: failed to get classification run: %w", err)
	}
	return rec, nil
}

// ListRuns returns runs newest first, paginated.
func (r *Repository) ListRuns(ctx context.Context, page, pageSize int) ([]*models.ClassificationRecord, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + runColumns + `
		FROM classification_runs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;`

	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("geodata: failed to list classification runs: %w", err)
	}
	defer rows.Close()

	runs := make([]*models.ClassificationRecord, 0)
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("geodata: failed to scan classification run: %w", err)
		}
		runs = append(runs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("geodata: run list iteration failed: %w", err)
	}
	return runs, nil
}

// RunStats returns the number of classification runs within the window.
func (r *Repository) RunStats(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM classification_runs
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	if err := r.db.QueryRow(ctx, query, minutes).Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("geodata: failed to get run stats: %w", err)
	}
	return count, nil
}
