// Package geodata is the PostGIS repository behind the classifier: the
// thematic-layer predicates, nearest-feature lookups and geodetic line
// extension the six classification stages consume.
package geodata

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Intersection layers are addressed by name through an allowlist so the
// generic predicate can never be pointed at an arbitrary table.
var intersectionLayers = map[string]string{
	"estuaries":          "coast.estuaries",
	"small_estuaries":    "coast.small_estuaries",
	"corals":             "vegetation.corals",
	"mangroves":          "vegetation.mangroves",
	"saltmarshes":        "vegetation.saltmarshes",
	"barriers_sandspits": "coast.barriers_sandspits",
	"small_islands":      "coast.small_islands",
	"osm_beaches":        "coast.osm_beaches",
}

type Repository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewRepository(db *pgxpool.Pool, redisClient *redis.Client) *Repository {
	return &Repository{
		db:          db,
		redisClient: redisClient,
	}
}

// intersects runs the shared EXISTS/ST_Intersects predicate against an
// allowlisted thematic layer.
func (r *Repository) intersects(ctx context.Context, layer, wkt string) (bool, error) {
	table, ok := intersectionLayers[layer]
	if !ok {
		return false, fmt.Errorf("geodata: unknown intersection layer %q", layer)
	}
	query := fmt.Sprintf(`
		SELECT EXISTS(
			SELECT 1
			FROM %s
			WHERE ST_Intersects(geom, ST_GeomFromText($1, 4326))
		);
	`, table)

	var hit bool
	if err := r.db.QueryRow(ctx, query, wkt).Scan(&hit); err != nil {
		return false, fmt.Errorf("geodata: intersects %s failed: %w", layer, err)
	}
	return hit, nil
}

func (r *Repository) IntersectsEstuaries(ctx context.Context, wkt string) (bool, error) {
	return r.intersects(ctx, "estuaries", wkt)
}

// IntersectsSmallEstuaries checks the sub-50 km² estuary layer used for
// the river-mouth rule.
func (r *Repository) IntersectsSmallEstuaries(ctx context.Context, wkt string) (bool, error) {
	return r.intersects(ctx, "small_estuaries", wkt)
}

func (r *Repository) IntersectsCorals(ctx context.Context, wkt string) (bool, error) {
	return r.intersects(ctx, "corals", wkt)
}

func (r *Repository) IntersectsMangroves(ctx context.Context, wkt string) (bool, error) {
	return r.intersects(ctx, "mangroves", wkt)
}

func (r *Repository) IntersectsSaltmarshes(ctx context.Context, wkt string) (bool, error) {
	return r.intersects(ctx, "saltmarshes", wkt)
}

func (r *Repository) IntersectsBarriers(ctx context.Context, wkt string) (bool, error) {
	return r.intersects(ctx, "barriers_sandspits", wkt)
}

func (r *Repository) IntersectsSmallIslands(ctx context.Context, wkt string) (bool, error) {
	return r.intersects(ctx, "small_islands", wkt)
}

func (r *Repository) IntersectsBeaches(ctx context.Context, wkt string) (bool, error) {
	return r.intersects(ctx, "osm_beaches", wkt)
}

// nearestValue is the shared nearest-feature lookup: closest row of the
// layer within dist meters of the transect, by geography distance.
func (r *Repository) nearestValue(ctx context.Context, dst any, column, table, wkt string, dist float64) error {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE ST_DWithin(geom::geography,
			ST_GeomFromText($1, 4326)::geography, $2)
		ORDER BY ST_Distance(geom::geography,
			ST_GeomFromText($1, 4326)::geography)
		LIMIT 1;
	`, column, table)

	if err := r.db.QueryRow(ctx, query, wkt, dist).Scan(dst); err != nil {
		return fmt.Errorf("geodata: nearest %s.%s lookup failed: %w", table, column, err)
	}
	return nil
}

// searchRadiusM is the default nearest-feature search radius.
const searchRadiusM = 100000

// WaveExposure returns the base exposure class from the nearest
// ocean.wave_exposure feature: exposed, moderately exposed or protected.
func (r *Repository) WaveExposure(ctx context.Context, wkt string) (string, error) {
	var v string
	err := r.nearestValue(ctx, &v, "ts_exposure", "ocean.wave_exposure", wkt, searchRadiusM)
	return v, err
}

// TidalRange returns micro, meso or macro from the nearest tidal feature.
func (r *Repository) TidalRange(ctx context.Context, wkt string) (string, error) {
	var v string
	err := r.nearestValue(ctx, &v, "exposure", "ocean.tidal_range", wkt, searchRadiusM)
	return v, err
}

func (r *Repository) SedimentChangeRate(ctx context.Context, wkt string) (float64, error) {
	var v float64
	err := r.nearestValue(ctx, &v, "changerate", "coast.sediment", wkt, searchRadiusM)
	return v, err
}

func (r *Repository) ShorelineChange(ctx context.Context, wkt string) (string, error) {
	var v string
	err := r.nearestValue(ctx, &v, "change", "coast.shorelinechange", wkt, searchRadiusM)
	return v, err
}

// CycloneRisk returns Yes or No from the nearest DIVA point.
func (r *Repository) CycloneRisk(ctx context.Context, wkt string) (string, error) {
	var v string
	err := r.nearestValue(ctx, &v, "bcyclone", "ocean.diva_points_with_cyclone_risk", wkt, searchRadiusM)
	return v, err
}

// GARPopulation returns the capital stock and population at the closest
// GAR exposure point.
func (r *Repository) GARPopulation(ctx context.Context, wkt string) (string, string, error) {
	query := `
		SELECT gar, population
		FROM risk.gar_points
		WHERE ST_DWithin(geom::geography,
			ST_GeomFromText($1, 4326)::geography, $2)
		ORDER BY ST_Distance(geom::geography,
			ST_GeomFromText($1, 4326)::geography)
		LIMIT 1;
	`
	var gar, population string
	if err := r.db.QueryRow(ctx, query, wkt, float64(searchRadiusM)).Scan(&gar, &population); err != nil {
		return "", "", fmt.Errorf("geodata: GAR lookup failed: %w", err)
	}
	return gar, population, nil
}

// GeologyValue returns the dominant GLiM lithology code intersecting the
// transect. The layer is stored in EPSG:3857, hence the transform.
func (r *Repository) GeologyValue(ctx context.Context, wkt string) (string, error) {
	query := `
		SELECT xx
		FROM geollayout.glim
		WHERE ST_Intersects(shape, ST_Transform(ST_GeomFromText($1, 4326), 3857))
		GROUP BY xx
		ORDER BY COUNT(*) DESC
		LIMIT 1;
	`
	var geology string
	if err := r.db.QueryRow(ctx, query, wkt).Scan(&geology); err != nil {
		return "", fmt.Errorf("geodata: geology lookup failed: %w", err)
	}
	return geology, nil
}

// ExtendLine extends the transect distM meters from one of its endpoints
// in geodetic space. Seaward extends past the coastline endpoint
// (direction -180 of the original service), landward past the inland
// endpoint (+180). The returned WKT always spans the full transect plus
// the extension.
func (r *Repository) ExtendLine(ctx context.Context, wkt string, distM float64, seaward bool) (string, error) {
	var query string
	if seaward {
		query = `
			WITH pts AS (
				SELECT ST_StartPoint(g) AS a, ST_EndPoint(g) AS b
				FROM (SELECT ST_GeomFromText($1, 4326) AS g) line
			)
			SELECT ST_AsText(ST_MakeLine(b,
				ST_Project(a::geography, $2, ST_Azimuth(b::geography, a::geography))::geometry))
			FROM pts;
		`
	} else {
		query = `
			WITH pts AS (
				SELECT ST_StartPoint(g) AS a, ST_EndPoint(g) AS b
				FROM (SELECT ST_GeomFromText($1, 4326) AS g) line
			)
			SELECT ST_AsText(ST_MakeLine(a,
				ST_Project(b::geography, $2, ST_Azimuth(a::geography, b::geography))::geometry))
			FROM pts;
		`
	}

	var extended string
	if err := r.db.QueryRow(ctx, query, wkt, distM).Scan(&extended); err != nil {
		return "", fmt.Errorf("geodata: line extension failed: %w", err)
	}
	return extended, nil
}

// ClosestCoasts returns the coastline segment ids intersecting an
// extended transect.
func (r *Repository) ClosestCoasts(ctx context.Context, wkt string) ([]float64, error) {
	query := `
		SELECT gid
		FROM coast.osm_coastline
		WHERE ST_Intersects(geom, ST_GeomFromText($1, 4326));
	`
	rows, err := r.db.Query(ctx, query, wkt)
	if err != nil {
		return nil, fmt.Errorf("geodata: closest coasts query failed: %w", err)
	}
	defer rows.Close()

	var ids []float64
	for rows.Next() {
		var gid int64
		if err := rows.Scan(&gid); err != nil {
			return nil, fmt.Errorf("geodata: failed to scan coastline gid: %w", err)
		}
		ids = append(ids, float64(gid))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("geodata: closest coasts iteration failed: %w", err)
	}
	return ids, nil
}

// LandPolygon returns the WKT of the land polygon the transect touches,
// used to clip the island DEM for the coral-island median elevation.
func (r *Repository) LandPolygon(ctx context.Context, wkt string) (string, error) {
	query := `
		SELECT ST_AsText(geom)
		FROM coast.land_polygons
		WHERE ST_Intersects(geom, ST_GeomFromText($1, 4326))
		LIMIT 1;
	`
	var polygon string
	if err := r.db.QueryRow(ctx, query, wkt).Scan(&polygon); err != nil {
		return "", fmt.Errorf("geodata: land polygon lookup failed: %w", err)
	}
	return polygon, nil
}
