package v1

import (
	"time"

	"github.com/google/uuid"
)

// ClassifyRequest is the transect classification request body.
// @Description Transect classification request
type ClassifyRequest struct {
	// Coordinates are [lon, lat] pairs in WGS84; the first point lies on
	// the coastline, the line extends inland.
	Coordinates  [][]float64 `json:"coordinates" validate:"required,min=2,dive,len=2"`
	CoastlineID  float64     `json:"coastline_id,omitempty"`
	Notification string      `json:"notification,omitempty"`
	// Strict turns a missing-elevation condition into an error instead
	// of a zero-slope default.
	Strict bool `json:"strict,omitempty"`
	// Testing selects the validation elevation layer.
	Testing bool `json:"testing,omitempty"`
}

// AxesResponse carries the six resolved classification axes.
// @Description Resolved classification axes
type AxesResponse struct {
	GeologicalLayout string `json:"geological_layout"`
	WaveExposure     string `json:"wave_exposure"`
	TidalRange       string `json:"tidal_range"`
	FloraFauna       string `json:"flora_fauna"`
	SedimentBalance  string `json:"sediment_balance"`
	StormClimate     string `json:"storm_climate"`
}

// HazardResponse carries the hazard code and per-hazard severities.
// @Description Hazard code and severity per hazard category
type HazardResponse struct {
	Code                string `json:"code"`
	EcosystemDisruption string `json:"ecosystem_disruption"`
	GradualInundation   string `json:"gradual_inundation"`
	SaltWaterIntrusion  string `json:"salt_water_intrusion"`
	Erosion             string `json:"erosion"`
	Flooding            string `json:"flooding"`
}

// MeasuresResponse groups management measures per hazard category.
// @Description Management measures per hazard category
type MeasuresResponse struct {
	EcosystemDisruption []string `json:"ecosystem_disruption"`
	GradualInundation   []string `json:"gradual_inundation"`
	SaltWaterIntrusion  []string `json:"salt_water_intrusion"`
	Erosion             []string `json:"erosion"`
	Flooding            []string `json:"flooding"`
}

// RiskResponse carries the exposure indicators for the transect area.
// @Description Exposure indicators
type RiskResponse struct {
	CapitalStock string `json:"capital_stock"`
	Population   string `json:"population"`
}

// BlockResponse is one titled block inside an output section.
// @Description Titled key/value or measure-list block
type BlockResponse struct {
	Title    string            `json:"title"`
	Info     map[string]string `json:"info,omitempty"`
	Measures []string          `json:"measures,omitempty"`
}

// SectionResponse is one grouped block of the result document.
// @Description Grouped output section
type SectionResponse struct {
	Title string          `json:"title"`
	Info  []BlockResponse `json:"info"`
}

// ClassificationResponse is the full classification result.
// @Description Classification result for one transect
type ClassificationResponse struct {
	RunID    uuid.UUID         `json:"run_id"`
	Axes     AxesResponse      `json:"axes"`
	Hazard   HazardResponse    `json:"hazard"`
	Measures MeasuresResponse  `json:"measures"`
	Risk     RiskResponse      `json:"risk"`
	Slope    float64           `json:"slope"`
	Sections []SectionResponse `json:"sections"`
}

// RunResponse is one persisted classification run.
// @Description Persisted classification run
type RunResponse struct {
	ID           uuid.UUID    `json:"id"`
	CoastlineID  float64      `json:"coastline_id"`
	Notification string       `json:"notification,omitempty"`
	Axes         AxesResponse `json:"axes"`
	Code         string       `json:"code"`
	Slope        float64      `json:"slope"`
	CreatedAt    time.Time    `json:"created_at"`
}

// StatsResponse reports run counts for the stats window.
// @Description Classification run statistics
type StatsResponse struct {
	RunCount int `json:"run_count"`
}
