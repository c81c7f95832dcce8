package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/openearth/chw-service/internal/config"
	"github.com/openearth/chw-service/internal/service"
)

// User-facing error messages for the classification error tiers.
const (
	msgNoElevationData = "There are no elevation data in the area, please try another location"
	msgRetrieval       = "Failed during retrieving the information"
	msgClassification  = "Something went wrong during the classification"
)

type Handler struct {
	classificationService service.ClassificationService
	logger                *logrus.Logger
	validate              *validator.Validate
	cfg                   *config.Config
}

func NewHandler(classificationService service.ClassificationService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		classificationService: classificationService,
		logger:                logger,
		validate:              validator.New(),
		cfg:                   cfg,
	}
}

// @Summary Classify a coastal transect
// @Description Run the full hazard classification for a coastal transect. Requires API key.
// @Tags Classification
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param transect body ClassifyRequest true "Transect classification request"
// @Success 200 {object} ClassificationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "No elevation data in the area"
// @Failure 500 {object} map[string]string "Retrieval or classification failure"
// @Router /classification [post]
func (h *Handler) classifyTransect(c *gin.Context) {
	var input ClassifyRequest
	log := h.logger.WithField("method", "classifyTransect")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"errMsg": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"errMsg": err.Error()})
		return
	}

	transect, err := DTOToTransect(input)
	if err != nil {
		log.WithError(err).Warn("Invalid transect geometry")
		c.JSON(http.StatusBadRequest, gin.H{"errMsg": err.Error()})
		return
	}

	result, err := h.classificationService.Classify(c.Request.Context(), service.ClassifyInput{
		Transect: transect,
		Strict:   input.Strict,
		Testing:  input.Testing,
	})
	if err != nil {
		log.WithError(err).Error("Classification failed")
		switch {
		case errors.Is(err, service.ErrNoElevationData):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errMsg": msgNoElevationData})
		case errors.Is(err, service.ErrRetrieval):
			c.JSON(http.StatusInternalServerError, gin.H{"errMsg": msgRetrieval})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"errMsg": msgClassification})
		}
		return
	}

	c.JSON(http.StatusOK, ResultToResponse(result))
}

// @Summary Get a list of classification runs
// @Description Get a paginated list of persisted classification runs, newest first. Requires API key.
// @Tags Classification
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} RunResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /classification/runs [get]
func (h *Handler) listRuns(c *gin.Context) {
	log := h.logger.WithField("method", "listRuns")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	runs, err := h.classificationService.ListRuns(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list runs from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, RecordsToRunResponses(runs))
}

// @Summary Get classification run by ID
// @Description Get a single persisted classification run by its ID. Requires API key.
// @Tags Classification
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Run ID"
// @Success 200 {object} RunResponse
// @Failure 400 {object} map[string]string "Invalid run ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Run not found"
// @Router /classification/runs/{id} [get]
func (h *Handler) getRun(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid run ID"})
		return
	}
	log := h.logger.WithField("method", "getRun").WithField("id", id)

	rec, err := h.classificationService.GetRun(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get run from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}
	c.JSON(http.StatusOK, RecordToRunResponse(rec))
}

// @Summary Get classification statistics
// @Description Get the number of classification runs inside the configured time window. Requires API key.
// @Tags Classification
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /classification/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	count, err := h.classificationService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{RunCount: count})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
