package service_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	classifiermocks "github.com/openearth/chw-service/internal/classifier/mocks"
	"github.com/openearth/chw-service/internal/config"
	"github.com/openearth/chw-service/internal/models"
	"github.com/openearth/chw-service/internal/raster"
	"github.com/openearth/chw-service/internal/service"
	"github.com/openearth/chw-service/internal/service/mocks"
	"github.com/openearth/chw-service/internal/webhook"
	webhookmocks "github.com/openearth/chw-service/internal/webhook/mocks"
)

func newTestService(t *testing.T) (service.ClassificationService, *mocks.MockGeoRepository, *classifiermocks.MockRasterSource, *webhookmocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockGeoRepository(ctrl)
	rasterMock := classifiermocks.NewMockRasterSource(ctrl)
	publisherMock := webhookmocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		TmpDir:                 t.TempDir(),
		DEMLayer:               "chw:fabdem",
		DEMTestLayer:           "chw:fabdem_test",
		LanduseLayer:           "chw:globcover",
		StatsTimeWindowMinutes: 60,
		Thresholds: config.Thresholds{
			SlopeHardRock:         2.3,
			SlopeBarrierDelta:     3.5,
			SlopeVegetation:       59,
			CoralIslandMedianElev: 14,
			SedimentChangeRate:    0.5,
			ProfileStepM:          30,
			VegetationWindowM:     200,
		},
	}

	svc := service.NewClassificationService(repoMock, rasterMock, logger, cfg, publisherMock)
	return svc, repoMock, rasterMock, publisherMock
}

func testTransect(t *testing.T) *models.Transect {
	t.Helper()
	transect, err := models.NewTransect([][]float64{{4.0, 52.0}, {4.001, 52.0}}, 1, "")
	require.NoError(t, err)
	return transect
}

func flatTestGrid(t *testing.T) *raster.Grid {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dem.asc")
	require.NoError(t, os.WriteFile(path, []byte(`ncols 8
nrows 2
xllcorner 3.999
yllcorner 51.999
cellsize 0.001
NODATA_value -9999
7 7 7 7 7 7 7 7
7 7 7 7 7 7 7 7
`), 0o644))
	g, err := raster.ParseGrid(path)
	require.NoError(t, err)
	return g
}

// stubGeoDefaults registers benign fallbacks for the classifier lookups;
// tests register their own expectations for the decision-table calls.
func stubGeoDefaults(repo *mocks.MockGeoRepository) {
	repo.EXPECT().ExtendLine(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, distM float64, seaward bool) (string, error) {
			return fmt.Sprintf("ext-%.0f-%v", distM, seaward), nil
		}).AnyTimes()
	repo.EXPECT().GeologyValue(gomock.Any(), gomock.Any()).Return("su", nil).AnyTimes()
	repo.EXPECT().IntersectsEstuaries(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	repo.EXPECT().IntersectsSmallEstuaries(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	repo.EXPECT().IntersectsCorals(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	repo.EXPECT().IntersectsMangroves(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	repo.EXPECT().IntersectsSaltmarshes(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	repo.EXPECT().IntersectsBarriers(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	repo.EXPECT().IntersectsSmallIslands(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	repo.EXPECT().IntersectsBeaches(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	repo.EXPECT().WaveExposure(gomock.Any(), gomock.Any()).Return("moderately exposed", nil).AnyTimes()
	repo.EXPECT().TidalRange(gomock.Any(), gomock.Any()).Return("micro", nil).AnyTimes()
	repo.EXPECT().SedimentChangeRate(gomock.Any(), gomock.Any()).Return(0.0, nil).AnyTimes()
	repo.EXPECT().ShorelineChange(gomock.Any(), gomock.Any()).Return("Low", nil).AnyTimes()
	repo.EXPECT().CycloneRisk(gomock.Any(), gomock.Any()).Return("No", nil).AnyTimes()
	repo.EXPECT().ClosestCoasts(gomock.Any(), gomock.Any()).Return([]float64{1}, nil).AnyTimes()
	repo.EXPECT().LandPolygon(gomock.Any(), gomock.Any()).Return("POLYGON ((0 0, 1 0, 1 1, 0 1, 0 0))", nil).AnyTimes()
}

func TestClassify_Success(t *testing.T) {
	svc, repoMock, rasterMock, publisherMock := newTestService(t)
	stubGeoDefaults(repoMock)

	grid := flatTestGrid(t)
	rasterMock.EXPECT().FetchGrid(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "chw:fabdem", gomock.Any()).
		Return(grid, nil)

	repoMock.EXPECT().DecisionWheel(gomock.Any(), gomock.Any()).Return(models.HazardResult{
		Code:                "SP-1",
		EcosystemDisruption: "1",
		GradualInundation:   "2",
		SaltWaterIntrusion:  "3",
		Erosion:             "4",
		Flooding:            "2",
	}, nil)
	repoMock.EXPECT().Measures(gomock.Any(), "SP-1").Return(models.MeasureSet{
		EcosystemDisruption: []string{"Coastal zoning"},
		GradualInundation:   []string{"Dikes"},
		SaltWaterIntrusion:  []string{"Groundwater management"},
		Erosion:             []string{"Beach nourishment"},
		Flooding:            []string{"Dikes"},
	}, nil)
	repoMock.EXPECT().GARPopulation(gomock.Any(), gomock.Any()).Return("12.3", "4500", nil)

	var saved *models.ClassificationRecord
	repoMock.EXPECT().SaveRun(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *models.ClassificationRecord) error {
			saved = rec
			return nil
		})

	var published webhook.Event
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event webhook.Event) error {
			published = event
			return nil
		})

	result, err := svc.Classify(context.Background(), service.ClassifyInput{Transect: testTransect(t)})

	require.NoError(t, err)
	assert.Equal(t, "SP-1", result.Hazard.Code)
	// Severities come back translated for presentation.
	assert.Equal(t, "Low", result.Hazard.EcosystemDisruption)
	assert.Equal(t, "Very High", result.Hazard.Erosion)
	assert.Equal(t, []string{"Beach nourishment"}, result.Measures.Erosion)
	assert.Equal(t, "4500", result.Risk.Population)
	assert.Equal(t, models.LayoutSedimentPlain, result.Axes.GeologicalLayout)
	assert.NotEmpty(t, result.Sections)

	require.NotNil(t, saved)
	assert.Equal(t, result.RunID, saved.ID)
	assert.Equal(t, "SP-1", saved.Code)
	assert.Equal(t, result.RunID, published.RunID)
	assert.Equal(t, "SP-1", published.Code)
}

func TestClassify_DecisionTableMissDegrades(t *testing.T) {
	svc, repoMock, rasterMock, publisherMock := newTestService(t)
	stubGeoDefaults(repoMock)

	rasterMock.EXPECT().FetchGrid(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("no coverage")).AnyTimes()

	repoMock.EXPECT().DecisionWheel(gomock.Any(), gomock.Any()).Return(models.HazardResult{}, errors.New("no rows"))
	repoMock.EXPECT().Measures(gomock.Any(), models.NoValue).Return(models.MeasureSet{}, errors.New("no rows"))
	repoMock.EXPECT().GARPopulation(gomock.Any(), gomock.Any()).Return("", "", errors.New("no rows"))
	repoMock.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return(nil)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	result, err := svc.Classify(context.Background(), service.ClassifyInput{Transect: testTransect(t)})

	// Misses past the retrieval phase degrade, they never error.
	require.NoError(t, err)
	assert.Equal(t, models.NoValue, result.Hazard.Code)
	assert.Equal(t, models.NoValue, result.Hazard.Erosion)
	assert.Equal(t, []string{models.NoMeasuresFound}, result.Measures.Erosion)
	assert.Equal(t, "No data", result.Risk.Population)
	assert.Equal(t, 0.0, result.Slope)
}

func TestClassify_StrictElevationFailure(t *testing.T) {
	svc, _, rasterMock, _ := newTestService(t)

	rasterMock.EXPECT().FetchGrid(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("no coverage"))

	_, err := svc.Classify(context.Background(), service.ClassifyInput{Transect: testTransect(t), Strict: true})

	assert.ErrorIs(t, err, service.ErrNoElevationData)
}

func TestClassify_TestingSelectsValidationLayer(t *testing.T) {
	svc, repoMock, rasterMock, publisherMock := newTestService(t)
	stubGeoDefaults(repoMock)

	rasterMock.EXPECT().FetchGrid(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "chw:fabdem_test", gomock.Any()).
		Return(flatTestGrid(t), nil)

	repoMock.EXPECT().DecisionWheel(gomock.Any(), gomock.Any()).Return(models.NoHazardResult(), nil)
	repoMock.EXPECT().Measures(gomock.Any(), gomock.Any()).Return(models.NoMeasureSet(), nil)
	repoMock.EXPECT().GARPopulation(gomock.Any(), gomock.Any()).Return("", "", errors.New("no rows"))
	repoMock.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return(nil)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Classify(context.Background(), service.ClassifyInput{Transect: testTransect(t), Testing: true})
	require.NoError(t, err)
}

func TestGetRun_Success(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)
	id := uuid.New()
	expected := &models.ClassificationRecord{ID: id, Code: "SP-1"}

	repoMock.EXPECT().GetRun(gomock.Any(), id).Return(expected, nil)

	rec, err := svc.GetRun(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, expected, rec)
}

func TestGetRun_NotFound(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)
	id := uuid.New()

	repoMock.EXPECT().GetRun(gomock.Any(), id).Return(nil, errors.New("run not found"))

	_, err := svc.GetRun(context.Background(), id)
	assert.Error(t, err)
}

func TestListRuns_ClampsPagination(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)

	repoMock.EXPECT().ListRuns(gomock.Any(), 1, 20).Return([]*models.ClassificationRecord{}, nil)

	_, err := svc.ListRuns(context.Background(), -3, 500)
	require.NoError(t, err)
}

func TestGetStats_UsesConfiguredWindow(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)

	repoMock.EXPECT().RunStats(gomock.Any(), 60).Return(7, nil)

	count, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}
