package models

import (
	"time"

	"github.com/google/uuid"
)

// NoValue is the sentinel set on every hazard field when the decision
// wheel has no row for the resolved axis combination.
const NoValue = "None"

// HazardResult is the decision-wheel outcome: a hazard code plus one
// severity per hazard category. Severities are "1".."4" after a
// successful lookup (or their Low..Very High translation) and NoValue
// when the lookup found no row.
type HazardResult struct {
	Code                string `json:"code"`
	EcosystemDisruption string `json:"ecosystem_disruption"`
	GradualInundation   string `json:"gradual_inundation"`
	SaltWaterIntrusion  string `json:"salt_water_intrusion"`
	Erosion             string `json:"erosion"`
	Flooding            string `json:"flooding"`
}

// NoHazardResult returns the all-sentinel result used when the decision
// wheel lookup fails. Classification degrades gracefully, it never errors.
func NoHazardResult() HazardResult {
	return HazardResult{
		Code:                NoValue,
		EcosystemDisruption: NoValue,
		GradualInundation:   NoValue,
		SaltWaterIntrusion:  NoValue,
		Erosion:             NoValue,
		Flooding:            NoValue,
	}
}

// MeasureSet groups management measures per hazard category.
type MeasureSet struct {
	EcosystemDisruption []string `json:"ecosystem_disruption"`
	GradualInundation   []string `json:"gradual_inundation"`
	SaltWaterIntrusion  []string `json:"salt_water_intrusion"`
	Erosion             []string `json:"erosion"`
	Flooding            []string `json:"flooding"`
}

// NoMeasuresFound is the per-category fallback when no measures row
// exists for a hazard code.
const NoMeasuresFound = "No measures were found"

// NoMeasureSet returns a MeasureSet with the fallback in every category.
func NoMeasureSet() MeasureSet {
	return MeasureSet{
		EcosystemDisruption: []string{NoMeasuresFound},
		GradualInundation:   []string{NoMeasuresFound},
		SaltWaterIntrusion:  []string{NoMeasuresFound},
		Erosion:             []string{NoMeasuresFound},
		Flooding:            []string{NoMeasuresFound},
	}
}

// RiskInfo carries the exposure-data indicators for a transect.
type RiskInfo struct {
	CapitalStock string `json:"capital_stock"`
	Population   string `json:"population"`
}

// NoRiskInfo is the fallback when the exposure lookup fails.
func NoRiskInfo() RiskInfo {
	return RiskInfo{CapitalStock: "No data", Population: "No data"}
}

// ClassificationRecord is one persisted classification run.
type ClassificationRecord struct {
	ID           uuid.UUID `json:"id"`
	CoastlineID  float64   `json:"coastline_id"`
	Notification string    `json:"notification,omitempty"`
	Axes         Axes      `json:"axes"`
	Code         string    `json:"code"`
	Slope        float64   `json:"slope"`
	CreatedAt    time.Time `json:"created_at"`
}
