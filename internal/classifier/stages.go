package classifier

import (
	"context"
	"math"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/openearth/chw-service/internal/landcover"
	"github.com/openearth/chw-service/internal/models"
)

// Named fail-soft defaults per stage. These were tuned across revisions
// of the methodology; changing one alters classification outcomes in
// data-sparse regions, so they are deliberate constants, not accidents.
const (
	defaultWaveExposure    = models.WaveModeratelyExposed
	defaultTidalRange      = models.TidalMicro
	defaultStormClimate    = models.StormNo
	defaultSedimentNoBeach = models.SedimentNoBeach
)

// mangroveLatitudeBand is the absolute latitude within which the
// vegetation prior assumes mangrove rather than marsh when no vegetation
// layer matches.
const mangroveLatitudeBand = 25.0

// layoutRule is one entry of the first-match-wins geological layout
// cascade. eval reports whether the rule fires and with which outcome.
type layoutRule struct {
	name string
	eval func(ctx context.Context) (models.GeologicalLayout, bool)
}

// Stage 1: geological layout. Priority order matters: river mouths and
// coral cases outrank barrier and estuary geometry, which outrank the
// geology-type rule; slope-only hard rock is the last resort when the
// lithology is unknown.
func (r *Run) geologicalLayout(ctx context.Context) {
	rules := []layoutRule{
		{"river mouth", r.ruleRiverMouth},
		{"coral island", r.ruleCoralIsland},
		{"special flat hard rock", r.ruleSpecialFlatHardRock},
		{"special sloping hard rock", r.ruleSpecialSlopingHardRock},
		{"barrier", r.ruleBarrier},
		{"delta/low estuary island", r.ruleDeltaLowEstuary},
		{"geology type", r.ruleGeologyType},
		{"hard rock fallback", r.ruleHardRockFallback},
	}

	for _, rule := range rules {
		if layout, ok := rule.eval(ctx); ok {
			r.Axes.GeologicalLayout = layout
			r.logger.WithFields(logrus.Fields{
				"rule":   rule.name,
				"layout": layout,
			}).Info("Geological layout resolved")
			return
		}
	}
}

func (r *Run) ruleRiverMouth(ctx context.Context) (models.GeologicalLayout, bool) {
	if r.in.Slope > r.th.SlopeBarrierDelta {
		return "", false
	}
	if r.intersects(ctx, r.geo.IntersectsSmallEstuaries, r.in.WKT, "small estuaries") ||
		r.intersects(ctx, r.geo.IntersectsSmallEstuaries, r.t100m, "small estuaries 100m") {
		return models.LayoutRiverMouth, true
	}
	return "", false
}

// ruleCoralIsland fires when the transect touches a small island whose
// median elevation (from a DEM clipped to the island polygon) is below
// the coral-island cutoff and corals are present.
func (r *Run) ruleCoralIsland(ctx context.Context) (models.GeologicalLayout, bool) {
	if !r.intersects(ctx, r.geo.IntersectsSmallIslands, r.in.WKT, "small islands") {
		return "", false
	}

	r.MedianElevation = r.islandMedianElevation(ctx)
	r.logger.WithField("median_elevation", r.MedianElevation).Info("Island median elevation")

	if r.corals && r.MedianElevation < r.th.CoralIslandMedianElev {
		return models.LayoutCoralIsland, true
	}
	return "", false
}

// islandMedianElevation clips the DEM to the intersected land polygon
// and takes the nodata-masked median. Any failure yields 0, matching the
// fail-soft path of the production service.
func (r *Run) islandMedianElevation(ctx context.Context) float64 {
	polygon, err := r.geo.LandPolygon(ctx, r.in.WKT)
	if err != nil {
		r.logger.WithError(err).Warn("Land polygon lookup failed, median elevation 0")
		return 0
	}
	minX, minY, maxX, maxY, err := islandBBox(polygon)
	if err != nil {
		r.logger.WithError(err).Warn("Land polygon parse failed, median elevation 0")
		return 0
	}
	grid, err := r.rasters.FetchGrid(ctx, minX, minY, maxX, maxY, r.in.DEMLayer, r.workPath("dem_small_island.asc"))
	if err != nil {
		r.logger.WithError(err).Warn("Island DEM fetch failed, median elevation 0")
		return 0
	}
	return grid.Median()
}

func (r *Run) ruleSpecialFlatHardRock(ctx context.Context) (models.GeologicalLayout, bool) {
	if r.corals && r.in.Slope < r.th.SlopeHardRock {
		return models.LayoutFlatHardRock, true
	}
	return "", false
}

func (r *Run) ruleSpecialSlopingHardRock(ctx context.Context) (models.GeologicalLayout, bool) {
	if r.corals && r.in.Slope >= r.th.SlopeHardRock {
		return models.LayoutSlopingHardRock, true
	}
	return "", false
}

func (r *Run) ruleBarrier(ctx context.Context) (models.GeologicalLayout, bool) {
	if r.material == models.MaterialUnconsolidated &&
		r.in.Slope <= r.th.SlopeBarrierDelta &&
		r.intersects(ctx, r.geo.IntersectsBarriers, r.in.WKT, "barriers/sandspits") {
		return models.LayoutBarrier, true
	}
	return "", false
}

func (r *Run) ruleDeltaLowEstuary(ctx context.Context) (models.GeologicalLayout, bool) {
	if r.material != models.MaterialUnconsolidated || r.in.Slope > r.th.SlopeBarrierDelta {
		return "", false
	}
	if r.intersects(ctx, r.geo.IntersectsEstuaries, r.t100m, "estuaries 100m") ||
		r.intersects(ctx, r.geo.IntersectsEstuaries, r.in.WKT, "estuaries") {
		return models.LayoutDeltaLowEstuary, true
	}
	return "", false
}

// ruleGeologyType applies the substrate/slope matrix when the lithology
// lookup succeeded.
func (r *Run) ruleGeologyType(context.Context) (models.GeologicalLayout, bool) {
	if !r.geologyKnown {
		return "", false
	}
	switch {
	case r.material == models.MaterialUnconsolidated && r.in.Slope <= r.th.SlopeHardRock:
		return models.LayoutSedimentPlain, true
	case r.material == models.MaterialUnconsolidated:
		return models.LayoutSlopingSoftRock, true
	case r.in.Slope <= r.th.SlopeHardRock:
		return models.LayoutFlatHardRock, true
	default:
		return models.LayoutSlopingHardRock, true
	}
}

// ruleHardRockFallback always fires: with no corals, barriers, estuaries
// or lithology, the layout is assumed hard rock split on slope alone.
func (r *Run) ruleHardRockFallback(context.Context) (models.GeologicalLayout, bool) {
	if r.in.Slope <= r.th.SlopeHardRock {
		return models.LayoutFlatHardRock, true
	}
	return models.LayoutSlopingHardRock, true
}

// Stage 2: wave exposure. The base class can only de-escalate: an
// exposed coast sheltered by coastline within 100 km drops to moderately
// exposed, and any coast sheltered within 10 km drops to protected (an
// exposed coast can skip straight to protected). The transect's own
// coastline id is injected into both candidate sets to correct for
// accuracy loss at segment boundaries.
func (r *Run) waveExposure(ctx context.Context) {
	var (
		wg            sync.WaitGroup
		coasts10km    []float64
		coasts100km   []float64
		err10, err100 error
	)
	// The two extension lookups are independent, so issue them together.
	wg.Add(2)
	go func() {
		defer wg.Done()
		coasts10km, err10 = r.geo.ClosestCoasts(ctx, r.t10km)
	}()
	go func() {
		defer wg.Done()
		coasts100km, err100 = r.geo.ClosestCoasts(ctx, r.t100km)
	}()
	wg.Wait()

	if err10 != nil {
		r.logger.WithError(err10).Warn("10 km closest-coast lookup failed")
		coasts10km = nil
	}
	if err100 != nil {
		r.logger.WithError(err100).Warn("100 km closest-coast lookup failed")
		coasts100km = nil
	}
	coasts10km = injectCoastline(coasts10km, r.in.Transect.CoastlineID)
	coasts100km = injectCoastline(coasts100km, r.in.Transect.CoastlineID)

	base, err := r.geo.WaveExposure(ctx, r.in.WKT)
	exposure := models.WaveExposure(base)
	if err != nil {
		r.logger.WithError(err).Warnf("Wave exposure lookup failed, defaulting to %q", defaultWaveExposure)
		exposure = defaultWaveExposure
	}

	switch exposure {
	case models.WaveModeratelyExposed:
		if len(coasts10km) > 1 {
			exposure = models.WaveProtected
		}
	case models.WaveExposed:
		if len(coasts100km) > 1 {
			exposure = models.WaveModeratelyExposed
		}
		if len(coasts10km) > 1 {
			exposure = models.WaveProtected
		}
	}

	r.Axes.WaveExposure = exposure
	r.logger.WithField("wave_exposure", exposure).Info("Wave exposure resolved")
}

func injectCoastline(ids []float64, coastlineID float64) []float64 {
	for _, id := range ids {
		if id == coastlineID {
			return ids
		}
	}
	return append(ids, coastlineID)
}

// Stage 3: tidal range.
func (r *Run) tidalRange(ctx context.Context) {
	value, err := r.geo.TidalRange(ctx, r.in.WKT)
	if err != nil {
		r.logger.WithError(err).Warnf("Tidal range lookup failed, defaulting to %q", defaultTidalRange)
		r.Axes.TidalRange = defaultTidalRange
	} else {
		r.Axes.TidalRange = models.TidalRange(value)
	}
	r.logger.WithField("tidal_range", r.Axes.TidalRange).Info("Tidal range resolved")
}

// Stage 4: flora/fauna, branching on the stage-1 layout.
func (r *Run) floraFauna(ctx context.Context) {
	mangroves := r.intersects(ctx, r.geo.IntersectsMangroves, r.in.WKT, "mangroves")
	saltmarshes := r.intersects(ctx, r.geo.IntersectsSaltmarshes, r.in.WKT, "saltmarshes")

	layout := r.Axes.GeologicalLayout
	switch {
	case layout == models.LayoutSlopingSoftRock:
		r.Axes.FloraFauna = r.vegetation(ctx)

	// Protected flat hard rock with no wetland vegetation carries no
	// flora/fauna at all (wheel rows FR-17/FR-18).
	case layout == models.LayoutFlatHardRock &&
		r.Axes.WaveExposure == models.WaveProtected &&
		!mangroves && !saltmarshes:
		r.Axes.FloraFauna = models.FloraNo

	case layout == models.LayoutSlopingHardRock ||
		layout == models.LayoutFlatHardRock ||
		layout == models.LayoutCoralIsland:
		if r.corals {
			r.Axes.FloraFauna = models.FloraCorals
		} else if mangroves || saltmarshes {
			r.Axes.FloraFauna = models.FloraMarshMangrove
		}

	default:
		switch {
		case saltmarshes:
			r.Axes.FloraFauna = marshFor(r.Axes.TidalRange)
		case mangroves:
			r.Axes.FloraFauna = mangroveFor(r.Axes.TidalRange)
		default:
			// No vegetation layer matched: fall back on the latitude
			// band as a geographic prior.
			if math.Abs(r.in.Transect.StartLat()) <= mangroveLatitudeBand {
				r.Axes.FloraFauna = mangroveFor(r.Axes.TidalRange)
			} else {
				r.Axes.FloraFauna = marshFor(r.Axes.TidalRange)
			}
		}
	}

	r.logger.WithField("flora_fauna", r.Axes.FloraFauna).Info("Flora/fauna resolved")
}

func marshFor(tidal models.TidalRange) models.FloraFauna {
	if tidal == models.TidalMicro {
		return models.FloraIntermittentMarsh
	}
	return models.FloraMarshTidalFlat
}

func mangroveFor(tidal models.TidalRange) models.FloraFauna {
	if tidal == models.TidalMicro {
		return models.FloraIntermittentMangrove
	}
	return models.FloraMangroveTidalFlat
}

// vegetation runs the land-cover bucket check, gated on the 200 m-inland
// slope. Raster failures count as not vegetated.
func (r *Run) vegetation(ctx context.Context) models.FloraFauna {
	minX, minY, maxX, maxY := r.in.Transect.BBox()
	grid, err := r.rasters.FetchGrid(ctx, minX, minY, maxX, maxY, r.in.LanduseLayer, r.workPath("globcover.asc"))
	if err != nil {
		r.logger.WithError(err).Warn("Land-cover fetch failed, assuming not vegetated")
		return models.FloraNotVegetated
	}
	return landcover.Classify(grid, r.in.SlopeInland, r.th.SlopeVegetation)
}

// Stage 5: sediment balance. Hard-rock layouts resolve on beach
// presence; everything else may only move to Surplus on clear evidence,
// otherwise the Balance/Deficit default stands (per the CHW
// documentation: when in doubt, never guess surplus).
func (r *Run) sedimentBalance(ctx context.Context) {
	layout := r.Axes.GeologicalLayout
	if layout == models.LayoutFlatHardRock || layout == models.LayoutSlopingHardRock {
		beach := r.intersects(ctx, r.geo.IntersectsBeaches, r.in.WKT, "beaches") ||
			r.intersects(ctx, r.geo.IntersectsBeaches, r.t200m, "beaches 200m")
		if beach {
			r.Axes.SedimentBalance = models.SedimentBeach
		} else {
			r.Axes.SedimentBalance = defaultSedimentNoBeach
		}
	} else {
		change, errChange := r.geo.ShorelineChange(ctx, r.in.WKT)
		rate, errRate := r.geo.SedimentChangeRate(ctx, r.in.WKT)
		if errChange != nil || errRate != nil {
			r.logger.Warn("Sediment lookups failed, keeping Balance/Deficit")
		} else if change != "Low" && rate > r.th.SedimentChangeRate {
			r.Axes.SedimentBalance = models.SedimentSurplus
		}
	}
	r.logger.WithField("sediment_balance", r.Axes.SedimentBalance).Info("Sediment balance resolved")
}

// Stage 6: storm climate.
func (r *Run) stormClimate(ctx context.Context) {
	risk, err := r.geo.CycloneRisk(ctx, r.in.WKT)
	if err != nil {
		r.logger.WithError(err).Warnf("Cyclone risk lookup failed, defaulting to %q", defaultStormClimate)
		r.Axes.StormClimate = defaultStormClimate
	} else {
		r.Axes.StormClimate = models.StormClimate(risk)
	}
	r.logger.WithField("storm_climate", r.Axes.StormClimate).Info("Storm climate resolved")
}
