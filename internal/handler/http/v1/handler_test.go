package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openearth/chw-service/internal/config"
	"github.com/openearth/chw-service/internal/models"
	"github.com/openearth/chw-service/internal/service"
	"github.com/openearth/chw-service/internal/service/mocks"
)

func newTestHandler(t *testing.T) (*Handler, *mocks.MockClassificationService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockClassificationService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys:                []string{"test-api-key"},
		StatsTimeWindowMinutes: 60,
	}

	handler := NewHandler(mockService, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func authHeader() map[string]string {
	return map[string]string{"X-API-Key": "test-api-key"}
}

func classifyBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(ClassifyRequest{
		Coordinates: [][]float64{{4.0, 52.0}, {4.001, 52.0}},
		CoastlineID: 17,
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestClassifyTransect_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	runID := uuid.New()

	mockService.EXPECT().Classify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, in service.ClassifyInput) (*service.Result, error) {
			assert.Equal(t, 17.0, in.Transect.CoastlineID)
			return &service.Result{
				RunID: runID,
				Axes: models.Axes{
					GeologicalLayout: models.LayoutSedimentPlain,
					WaveExposure:     models.WaveModeratelyExposed,
					TidalRange:       models.TidalMicro,
					FloraFauna:       models.FloraIntermittentMarsh,
					SedimentBalance:  models.SedimentBalanceDeficit,
					StormClimate:     models.StormNo,
				},
				Hazard: models.HazardResult{Code: "SP-1", Erosion: "Very High"},
				Slope:  1.5,
			}, nil
		})

	w := makeRequest(router, "POST", "/api/v1/classification", classifyBody(t), authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ClassificationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, runID, resp.RunID)
	assert.Equal(t, "SP-1", resp.Hazard.Code)
	assert.Equal(t, "Sediment plain", resp.Axes.GeologicalLayout)
	assert.Equal(t, 1.5, resp.Slope)
}

func TestClassifyTransect_NoElevationData(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Classify(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: %w", service.ErrNoElevationData))

	w := makeRequest(router, "POST", "/api/v1/classification", classifyBody(t), authHeader())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "There are no elevation data in the area")
}

func TestClassifyTransect_RetrievalError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Classify(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: %w", service.ErrRetrieval))

	w := makeRequest(router, "POST", "/api/v1/classification", classifyBody(t), authHeader())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed during retrieving the information")
}

func TestClassifyTransect_UnknownError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Classify(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("boom"))

	w := makeRequest(router, "POST", "/api/v1/classification", classifyBody(t), authHeader())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong during the classification")
}

func TestClassifyTransect_ValidationError(t *testing.T) {
	_, _, router := newTestHandler(t)

	// A single coordinate can never form a transect line.
	body, err := json.Marshal(ClassifyRequest{Coordinates: [][]float64{{4.0, 52.0}}})
	require.NoError(t, err)

	w := makeRequest(router, "POST", "/api/v1/classification", bytes.NewBuffer(body), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClassifyTransect_InvalidBody(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "POST", "/api/v1/classification", bytes.NewBufferString("{not json"), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestClassifyTransect_Unauthorized(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "POST", "/api/v1/classification", classifyBody(t))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestGetRun_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := uuid.New()
	rec := &models.ClassificationRecord{
		ID:        id,
		Code:      "SP-1",
		Slope:     2.1,
		CreatedAt: time.Now().UTC(),
	}

	mockService.EXPECT().GetRun(gomock.Any(), id).Return(rec, nil)

	w := makeRequest(router, "GET", "/api/v1/classification/runs/"+id.String(), nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp RunResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, "SP-1", resp.Code)
}

func TestGetRun_InvalidID(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/classification/runs/not-a-uuid", nil, authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRun_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := uuid.New()

	mockService.EXPECT().GetRun(gomock.Any(), id).Return(nil, errors.New("run not found"))

	w := makeRequest(router, "GET", "/api/v1/classification/runs/"+id.String(), nil, authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRuns_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	runs := []*models.ClassificationRecord{
		{ID: uuid.New(), Code: "SP-1"},
		{ID: uuid.New(), Code: "FR-3"},
	}

	mockService.EXPECT().ListRuns(gomock.Any(), 2, 5).Return(runs, nil)

	w := makeRequest(router, "GET", "/api/v1/classification/runs?page=2&pageSize=5", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []*RunResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "FR-3", resp[1].Code)
}

func TestGetStats_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetStats(gomock.Any()).Return(42, nil)

	w := makeRequest(router, "GET", "/api/v1/classification/stats", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 42, resp.RunCount)
}

func TestGetStats_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetStats(gomock.Any()).Return(0, errors.New("db down"))

	w := makeRequest(router, "GET", "/api/v1/classification/stats", nil, authHeader())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealthCheck_NoAuthRequired(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_BearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{APIKeys: []string{"valid-key"}}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{APIKeys: []string{"valid-key"}}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}
