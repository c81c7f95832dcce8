package geodata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/openearth/chw-service/internal/models"
)

// The decision wheel and the management tables are read-only reference
// data, so resolved rows are cached in Redis for an hour.
const referenceCacheTTL = time.Hour

// DecisionWheel resolves the six axis values against the CHW decision
// table: exact match on geological layout, set membership on every other
// axis. A missing row is returned as an error; the caller degrades to the
// all-None result.
func (r *Repository) DecisionWheel(ctx context.Context, axes models.Axes) (models.HazardResult, error) {
	key := fmt.Sprintf("chw:wheel:%s|%s|%s|%s|%s|%s",
		axes.GeologicalLayout, axes.WaveExposure, axes.TidalRange,
		axes.FloraFauna, axes.SedimentBalance, axes.StormClimate)

	if cached, err := r.hazardFromCache(ctx, key); err == nil && cached != nil {
		return *cached, nil
	}

	query := `
		SELECT code, ecosystem_disruption, gradual_inundation, salt_water_intrusion, erosion, flooding
		FROM chw.decision_wheel
		WHERE geological_layout = $1 AND
			$2 = ANY(wave_exposure) AND
			$3 = ANY(tidal_range) AND
			$4 = ANY(flora_fauna) AND
			$5 = ANY(sediment_balance) AND
			$6 = ANY(storm_climate);
	`
	var (
		code                                                    string
		ecosystem, inundation, saltIntrusion, erosion, flooding int
	)
	err := r.db.QueryRow(ctx, query,
		string(axes.GeologicalLayout),
		string(axes.WaveExposure),
		string(axes.TidalRange),
		string(axes.FloraFauna),
		string(axes.SedimentBalance),
		string(axes.StormClimate),
	).Scan(&code, &ecosystem, &inundation, &saltIntrusion, &erosion, &flooding)
	if err != nil {
		return models.HazardResult{}, fmt.Errorf("geodata: decision wheel lookup failed: %w", err)
	}

	result := models.HazardResult{
		Code:                code,
		EcosystemDisruption: strconv.Itoa(ecosystem),
		GradualInundation:   strconv.Itoa(inundation),
		SaltWaterIntrusion:  strconv.Itoa(saltIntrusion),
		Erosion:             strconv.Itoa(erosion),
		Flooding:            strconv.Itoa(flooding),
	}
	r.cacheHazard(ctx, key, result)
	return result, nil
}

func (r *Repository) hazardFromCache(ctx context.Context, key string) (*models.HazardResult, error) {
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("geodata: failed to get hazard from cache: %w", err)
	}
	result := &models.HazardResult{}
	if err := json.Unmarshal(val, result); err != nil {
		return nil, fmt.Errorf("geodata: failed to unmarshal cached hazard: %w", err)
	}
	return result, nil
}

func (r *Repository) cacheHazard(ctx context.Context, key string, result models.HazardResult) {
	val, err := json.Marshal(result)
	if err != nil {
		return
	}
	// Cache failures are ignored; the table lookup stays authoritative.
	r.redisClient.Set(ctx, key, val, referenceCacheTTL)
}

// Measures returns the management measures grouped per hazard category
// for a hazard code. All five categories must resolve; a partial result
// is treated as a miss so the caller falls back as a whole.
func (r *Repository) Measures(ctx context.Context, code string) (models.MeasureSet, error) {
	key := "chw:measures:" + code
	if cached, err := r.measuresFromCache(ctx, key); err == nil && cached != nil {
		return *cached, nil
	}

	query := `
		SELECT opt.hazard, array_agg(opt.managementoption) AS measures
		FROM (
			SELECT h.hid, h.hazard, ms.managementoption
			FROM management.managementoptions mo
			JOIN management.hazards h ON mo.hid = h.hid
			JOIN management.measures ms ON ms.mid = mo.mid
			WHERE code = $1
		) AS opt
		GROUP BY opt.hazard;
	`
	rows, err := r.db.Query(ctx, query, code)
	if err != nil {
		return models.MeasureSet{}, fmt.Errorf("geodata: measures query failed: %w", err)
	}
	defer rows.Close()

	byHazard := make(map[string][]string)
	for rows.Next() {
		var hazard string
		var measures []string
		if err := rows.Scan(&hazard, &measures); err != nil {
			return models.MeasureSet{}, fmt.Errorf("geodata: failed to scan measures row: %w", err)
		}
		byHazard[hazard] = measures
	}
	if err := rows.Err(); err != nil {
		return models.MeasureSet{}, fmt.Errorf("geodata: measures iteration failed: %w", err)
	}

	set := models.MeasureSet{
		EcosystemDisruption: byHazard["Ecosystem disruption"],
		GradualInundation:   byHazard["Gradual inundation"],
		SaltWaterIntrusion:  byHazard["Salt water intrusion"],
		Erosion:             byHazard["Erosion"],
		Flooding:            byHazard["Flooding"],
	}
	if set.EcosystemDisruption == nil || set.GradualInundation == nil ||
		set.SaltWaterIntrusion == nil || set.Erosion == nil || set.Flooding == nil {
		return models.MeasureSet{}, fmt.Errorf("geodata: incomplete measures for code %s", code)
	}

	r.cacheMeasures(ctx, key, set)
	return set, nil
}

func (r *Repository) measuresFromCache(ctx context.Context, key string) (*models.MeasureSet, error) {
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("geodata: failed to get measures from cache: %w", err)
	}
	set := &models.MeasureSet{}
	if err := json.Unmarshal(val, set); err != nil {
		return nil, fmt.Errorf("geodata: failed to unmarshal cached measures: %w", err)
	}
	return set, nil
}

func (r *Repository) cacheMeasures(ctx context.Context, key string, set models.MeasureSet) {
	val, err := json.Marshal(set)
	if err != nil {
		return
	}
	r.redisClient.Set(ctx, key, val, referenceCacheTTL)
}
