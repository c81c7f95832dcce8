// Package classifier implements the Coastal Hazard Wheel six-stage
// classification of a coastal transect: geological layout, wave exposure,
// tidal range, flora/fauna, sediment balance and storm climate, in that
// mandatory order.
package classifier

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	geomwkt "github.com/twpayne/go-geom/encoding/wkt"

	"github.com/openearth/chw-service/internal/config"
	"github.com/openearth/chw-service/internal/models"
	"github.com/openearth/chw-service/internal/raster"
)

// GeoService resolves spatial predicates and nearest-feature lookups for
// a transect geometry against the fixed thematic layers, and performs
// line extension in geodetic space.
type GeoService interface {
	IntersectsEstuaries(ctx context.Context, wkt string) (bool, error)
	IntersectsSmallEstuaries(ctx context.Context, wkt string) (bool, error)
	IntersectsCorals(ctx context.Context, wkt string) (bool, error)
	IntersectsMangroves(ctx context.Context, wkt string) (bool, error)
	IntersectsSaltmarshes(ctx context.Context, wkt string) (bool, error)
	IntersectsBarriers(ctx context.Context, wkt string) (bool, error)
	IntersectsSmallIslands(ctx context.Context, wkt string) (bool, error)
	IntersectsBeaches(ctx context.Context, wkt string) (bool, error)
	WaveExposure(ctx context.Context, wkt string) (string, error)
	TidalRange(ctx context.Context, wkt string) (string, error)
	SedimentChangeRate(ctx context.Context, wkt string) (float64, error)
	ShorelineChange(ctx context.Context, wkt string) (string, error)
	CycloneRisk(ctx context.Context, wkt string) (string, error)
	GeologyValue(ctx context.Context, wkt string) (string, error)
	ExtendLine(ctx context.Context, wkt string, distM float64, seaward bool) (string, error)
	ClosestCoasts(ctx context.Context, wkt string) ([]float64, error)
	LandPolygon(ctx context.Context, wkt string) (string, error)
}

// RasterSource clips and fetches a coverage for a bounding box into the
// request working directory.
type RasterSource interface {
	FetchGrid(ctx context.Context, minX, minY, maxX, maxY float64, layer, outPath string) (*raster.Grid, error)
}

// Input is the per-run context the service hands to the classifier after
// profile extraction.
type Input struct {
	Transect *models.Transect
	WKT      string

	// Slope is the mean segment slope rounded to one decimal; MaxSlope
	// and SlopeInland (windowed max) feed diagnostics and the
	// vegetation check.
	Slope       float64
	MaxSlope    float64
	SlopeInland float64

	DEMLayer     string
	LanduseLayer string
	WorkDir      string
}

// Classifier holds the request-independent collaborators.
type Classifier struct {
	geo     GeoService
	rasters RasterSource
	logger  *logrus.Logger
	th      config.Thresholds
}

func New(geo GeoService, rasters RasterSource, logger *logrus.Logger, th config.Thresholds) *Classifier {
	return &Classifier{
		geo:     geo,
		rasters: rasters,
		logger:  logger,
		th:      th,
	}
}

// Run is one classification in progress. Axis fields start at their
// defaults and each stage moves its own field at most once.
type Run struct {
	*Classifier
	in Input

	// Transect variants extended from the coastline endpoint. The 100 m
	// and 200 m seaward variants back the river-mouth and beach checks,
	// 6 km seaward and 4 km landward the coral presence, 10 km and
	// 100 km seaward the wave-exposure downgrades.
	t100m      string
	t200m      string
	t4kmInland string
	t6km       string
	t10km      string
	t100km     string

	geology      string
	geologyKnown bool
	material     models.GeologyMaterial
	corals       bool

	// MedianElevation is filled by the coral-island test.
	MedianElevation float64

	Axes models.Axes
}

// NewRun derives the per-transect context: extended transect variants,
// the dominant geology and the coral presence flag. Geology and coral
// lookups fail soft; a failed line extension is a hard error since every
// later stage depends on the variants.
func (c *Classifier) NewRun(ctx context.Context, in Input) (*Run, error) {
	r := &Run{
		Classifier: c,
		in:         in,
		Axes:       models.DefaultAxes(),
	}

	var err error
	extensions := []struct {
		dst     *string
		distM   float64
		seaward bool
	}{
		{&r.t100m, 100, true},
		{&r.t200m, 200, true},
		{&r.t4kmInland, 4000, false},
		{&r.t6km, 6000, true},
		{&r.t10km, 10000, true},
		{&r.t100km, 100000, true},
	}
	for _, ext := range extensions {
		if *ext.dst, err = c.geo.ExtendLine(ctx, in.WKT, ext.distM, ext.seaward); err != nil {
			return nil, fmt.Errorf("classifier: failed to extend transect by %.0f m: %w", ext.distM, err)
		}
	}

	r.geology, err = c.geo.GeologyValue(ctx, in.WKT)
	if err != nil {
		c.logger.WithError(err).Warn("Geology lookup failed, material unknown")
		r.geologyKnown = false
	} else {
		r.geologyKnown = true
		r.material = models.MaterialForGeology(r.geology)
	}

	// Corals are checked both seaward and inland of the coastline; reef
	// flats frequently sit on either side of the drawn transect.
	r.corals = r.intersects(ctx, c.geo.IntersectsCorals, r.t6km, "corals seaward") ||
		r.intersects(ctx, c.geo.IntersectsCorals, r.t4kmInland, "corals inland")

	c.logger.WithFields(logrus.Fields{
		"slope":            in.Slope,
		"geology":          r.geology,
		"geology_material": r.material,
		"corals":           r.corals,
	}).Info("Classification context resolved")

	return r, nil
}

// Classify executes the six stages in order and returns the resolved
// axes. Individual lookup failures inside a stage resolve to that
// stage's named default; Classify itself never fails.
func (r *Run) Classify(ctx context.Context) models.Axes {
	r.geologicalLayout(ctx)
	r.waveExposure(ctx)
	r.tidalRange(ctx)
	r.floraFauna(ctx)
	r.sedimentBalance(ctx)
	r.stormClimate(ctx)
	return r.Axes
}

// intersects wraps a predicate with the per-lookup fail-soft policy: a
// failed query logs a warning and counts as no intersection.
func (r *Run) intersects(ctx context.Context, predicate func(context.Context, string) (bool, error), wkt, what string) bool {
	hit, err := predicate(ctx, wkt)
	if err != nil {
		r.logger.WithError(err).Warnf("Intersection lookup failed (%s), assuming false", what)
		return false
	}
	return hit
}

// islandBBox extracts the bounding box of a land polygon WKT.
func islandBBox(polygonWKT string) (minX, minY, maxX, maxY float64, err error) {
	g, err := geomwkt.Unmarshal(polygonWKT)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("classifier: failed to parse land polygon: %w", err)
	}
	b := g.Bounds()
	return b.Min(0), b.Min(1), b.Max(0), b.Max(1), nil
}

func (r *Run) workPath(name string) string {
	return filepath.Join(r.in.WorkDir, name)
}
