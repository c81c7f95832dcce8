package service

import "github.com/openearth/chw-service/internal/models"

// severityLabels map the 1-4 decision-wheel severities to their
// human-readable form. Anything else, including the "None" sentinel,
// passes through unchanged.
var severityLabels = map[string]string{
	"1": "Low",
	"2": "Moderate",
	"3": "High",
	"4": "Very High",
}

// TranslateSeverity converts a numeric severity to its label.
func TranslateSeverity(severity string) string {
	if label, ok := severityLabels[severity]; ok {
		return label
	}
	return severity
}

func translateHazard(h models.HazardResult) models.HazardResult {
	return models.HazardResult{
		Code:                h.Code,
		EcosystemDisruption: TranslateSeverity(h.EcosystemDisruption),
		GradualInundation:   TranslateSeverity(h.GradualInundation),
		SaltWaterIntrusion:  TranslateSeverity(h.SaltWaterIntrusion),
		Erosion:             TranslateSeverity(h.Erosion),
		Flooding:            TranslateSeverity(h.Flooding),
	}
}
