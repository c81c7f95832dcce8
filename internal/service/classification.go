package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/openearth/chw-service/internal/classifier"
	"github.com/openearth/chw-service/internal/config"
	"github.com/openearth/chw-service/internal/models"
	"github.com/openearth/chw-service/internal/profile"
	"github.com/openearth/chw-service/internal/webhook"
)

// Error tiers of the classification boundary. Per-lookup failures never
// surface here; these mark whole stage-group failures the transport maps
// to a structured error payload.
var (
	// ErrNoElevationData is the one recoverable condition promoted to
	// fatal in strict mode, to surface data-coverage gaps during
	// validation instead of silently defaulting slope to 0.
	ErrNoElevationData = errors.New("there are no elevation data in the area, please try another location")
	ErrRetrieval       = errors.New("failed during retrieving the information")
	ErrClassification  = errors.New("something went wrong during the classification")
)

// GeoRepository is the full spatial repository contract the service
// needs: the classifier's lookups plus the decision tables, exposure
// data and run persistence.
type GeoRepository interface {
	classifier.GeoService
	DecisionWheel(ctx context.Context, axes models.Axes) (models.HazardResult, error)
	Measures(ctx context.Context, code string) (models.MeasureSet, error)
	GARPopulation(ctx context.Context, wkt string) (string, string, error)
	SaveRun(ctx context.Context, rec *models.ClassificationRecord) error
	GetRun(ctx context.Context, id uuid.UUID) (*models.ClassificationRecord, error)
	ListRuns(ctx context.Context, page, pageSize int) ([]*models.ClassificationRecord, error)
	RunStats(ctx context.Context, minutes int) (int, error)
}

// ClassifyInput is one classification request.
type ClassifyInput struct {
	Transect *models.Transect
	// Strict promotes a failed elevation fetch to a fatal error.
	Strict bool
	// Testing selects the validation DEM layer.
	Testing bool
}

// Result is the full classification outcome for one transect.
type Result struct {
	RunID    uuid.UUID           `json:"run_id"`
	Axes     models.Axes         `json:"axes"`
	Hazard   models.HazardResult `json:"hazard"`
	Measures models.MeasureSet   `json:"measures"`
	Risk     models.RiskInfo     `json:"risk"`
	Slope    float64             `json:"slope"`
	Sections []OutputSection     `json:"sections"`
}

// ClassificationService is the business contract for transect
// classification and run retrieval.
type ClassificationService interface {
	Classify(ctx context.Context, in ClassifyInput) (*Result, error)
	GetRun(ctx context.Context, id uuid.UUID) (*models.ClassificationRecord, error)
	ListRuns(ctx context.Context, page, pageSize int) ([]*models.ClassificationRecord, error)
	GetStats(ctx context.Context) (int, error)
}

type classificationService struct {
	repo      GeoRepository
	rasters   classifier.RasterSource
	cls       *classifier.Classifier
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.Publisher
}

func NewClassificationService(repo GeoRepository, rasters classifier.RasterSource, logger *logrus.Logger, cfg *config.Config, publisher webhook.Publisher) ClassificationService {
	return &classificationService{
		repo:      repo,
		rasters:   rasters,
		cls:       classifier.New(repo, rasters, logger, cfg.Thresholds),
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
	}
}

// Classify runs the whole pipeline for one transect: elevation profile,
// slope analysis, the six classification stages, hazard code and
// measures resolution, exposure indicators, persistence and webhook
// notification. Every external lookup past the retrieval phase fails
// soft so the request always produces some answer.
func (s *classificationService) Classify(ctx context.Context, in ClassifyInput) (*Result, error) {
	runID := uuid.New()
	log := s.logger.WithFields(logrus.Fields{
		"service": "classification",
		"method":  "Classify",
		"run_id":  runID,
	})
	log.Info("Starting transect classification")

	// Private working directory for this request's raster clips; never
	// shared, never reused.
	workDir, err := os.MkdirTemp(s.cfg.TmpDir, "chw-run-")
	if err != nil {
		return nil, fmt.Errorf("service: could not create working directory: %w", ErrRetrieval)
	}
	defer os.RemoveAll(workDir)

	wkt, err := in.Transect.WKT()
	if err != nil {
		log.WithError(err).Error("Failed to encode transect")
		return nil, fmt.Errorf("service: %v: %w", err, ErrRetrieval)
	}
	log.WithField("transect", wkt).Info("Input transect")

	demLayer := s.cfg.DEMLayer
	if in.Testing {
		demLayer = s.cfg.DEMTestLayer
	}

	slope, maxSlope, slopeInland, err := s.slopes(ctx, in, demLayer, workDir, log)
	if err != nil {
		return nil, err
	}

	run, err := s.cls.NewRun(ctx, classifier.Input{
		Transect:     in.Transect,
		WKT:          wkt,
		Slope:        slope,
		MaxSlope:     maxSlope,
		SlopeInland:  slopeInland,
		DEMLayer:     demLayer,
		LanduseLayer: s.cfg.LanduseLayer,
		WorkDir:      workDir,
	})
	if err != nil {
		log.WithError(err).Error("Failed to derive classification context")
		return nil, fmt.Errorf("service: %v: %w", err, ErrRetrieval)
	}

	axes := run.Classify(ctx)

	hazard, err := s.repo.DecisionWheel(ctx, axes)
	if err != nil {
		// No wheel row for this combination: degrade to the sentinel
		// result, never an error to the caller.
		log.WithError(err).Warn("Decision wheel returned no row")
		hazard = models.NoHazardResult()
	}

	measures, err := s.repo.Measures(ctx, hazard.Code)
	if err != nil {
		log.WithError(err).Warn("No measures found for hazard code")
		measures = models.NoMeasureSet()
	}

	risk := models.NoRiskInfo()
	if gar, population, err := s.repo.GARPopulation(ctx, wkt); err != nil {
		log.WithError(err).Warn("Exposure lookup failed")
	} else {
		risk = models.RiskInfo{CapitalStock: gar, Population: population}
	}

	translated := translateHazard(hazard)

	rec := &models.ClassificationRecord{
		ID:           runID,
		CoastlineID:  in.Transect.CoastlineID,
		Notification: in.Transect.Notification,
		Axes:         axes,
		Code:         hazard.Code,
		Slope:        slope,
	}
	if err := s.repo.SaveRun(ctx, rec); err != nil {
		// Persistence is bookkeeping; the classification stands.
		log.WithError(err).Error("Failed to persist classification run")
	}

	if err := s.publisher.Publish(ctx, webhook.Event{
		RunID:       runID,
		CoastlineID: in.Transect.CoastlineID,
		Code:        hazard.Code,
		Axes:        axes,
		Slope:       slope,
		Timestamp:   time.Now().UTC(),
	}); err != nil {
		log.WithError(err).Error("Failed to publish classification event")
	}

	result := &Result{
		RunID:    runID,
		Axes:     axes,
		Hazard:   translated,
		Measures: measures,
		Risk:     risk,
		Slope:    slope,
	}
	result.Sections = buildSections(result)

	log.WithFields(logrus.Fields{
		"code":  hazard.Code,
		"slope": slope,
	}).Info("Transect classified")
	return result, nil
}

// slopes fetches the DEM clip and derives the slope figures. Lenient
// mode resolves a missing DEM to slope 0; strict mode promotes it.
func (s *classificationService) slopes(ctx context.Context, in ClassifyInput, demLayer, workDir string, log *logrus.Entry) (slope, maxSlope, slopeInland float64, err error) {
	minX, minY, maxX, maxY := in.Transect.BBox()
	grid, err := s.rasters.FetchGrid(ctx, minX, minY, maxX, maxY, demLayer, filepath.Join(workDir, "dem.asc"))
	if err != nil {
		if in.Strict {
			log.WithError(err).Error("No elevation data for transect")
			return 0, 0, 0, fmt.Errorf("service: %w", ErrNoElevationData)
		}
		log.WithError(err).Warn("No elevation data for transect, slope defaults to 0")
		return 0, 0, 0, nil
	}

	prof := profile.Build(grid, in.Transect.Line, s.cfg.Thresholds.ProfileStepM)
	res := profile.Analyze(prof.Elevations, prof.Distances)
	inland := profile.AnalyzeWindow(prof.Elevations, prof.Distances, s.cfg.Thresholds.VegetationWindowM)

	return math.Round(res.Mean*10) / 10, res.Max, inland.Max, nil
}

// GetRun returns one persisted classification run.
func (s *classificationService) GetRun(ctx context.Context, id uuid.UUID) (*models.ClassificationRecord, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "classification",
		"method":  "GetRun",
		"run_id":  id,
	})
	rec, err := s.repo.GetRun(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get classification run")
		return nil, fmt.Errorf("service: could not get run: %w", err)
	}
	return rec, nil
}

// ListRuns returns persisted runs with pagination.
func (s *classificationService) ListRuns(ctx context.Context, page, pageSize int) ([]*models.ClassificationRecord, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "classification",
		"method":    "ListRuns",
		"page":      page,
		"page_size": pageSize,
	})

	runs, err := s.repo.ListRuns(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list classification runs")
		return nil, fmt.Errorf("service: could not list runs: %w", err)
	}
	log.WithField("count", len(runs)).Info("Classification runs listed")
	return runs, nil
}

// GetStats returns the number of runs inside the configured window.
func (s *classificationService) GetStats(ctx context.Context) (int, error) {
	count, err := s.repo.RunStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		return 0, fmt.Errorf("service: could not get run stats: %w", err)
	}
	return count, nil
}
