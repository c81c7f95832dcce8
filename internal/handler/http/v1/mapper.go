package v1

import (
	"github.com/openearth/chw-service/internal/models"
	"github.com/openearth/chw-service/internal/service"
)

// DTOToTransect converts a classification request into the domain
// transect model.
func DTOToTransect(dto ClassifyRequest) (*models.Transect, error) {
	return models.NewTransect(dto.Coordinates, dto.CoastlineID, dto.Notification)
}

func axesToResponse(a models.Axes) AxesResponse {
	return AxesResponse{
		GeologicalLayout: string(a.GeologicalLayout),
		WaveExposure:     string(a.WaveExposure),
		TidalRange:       string(a.TidalRange),
		FloraFauna:       string(a.FloraFauna),
		SedimentBalance:  string(a.SedimentBalance),
		StormClimate:     string(a.StormClimate),
	}
}

// ResultToResponse converts a service result into the response DTO.
func ResultToResponse(r *service.Result) *ClassificationResponse {
	sections := make([]SectionResponse, len(r.Sections))
	for i, s := range r.Sections {
		blocks := make([]BlockResponse, len(s.Info))
		for j, b := range s.Info {
			blocks[j] = BlockResponse{Title: b.Title, Info: b.Info, Measures: b.Measures}
		}
		sections[i] = SectionResponse{Title: s.Title, Info: blocks}
	}
	return &ClassificationResponse{
		RunID: r.RunID,
		Axes:  axesToResponse(r.Axes),
		Hazard: HazardResponse{
			Code:                r.Hazard.Code,
			EcosystemDisruption: r.Hazard.EcosystemDisruption,
			GradualInundation:   r.Hazard.GradualInundation,
			SaltWaterIntrusion:  r.Hazard.SaltWaterIntrusion,
			Erosion:             r.Hazard.Erosion,
			Flooding:            r.Hazard.Flooding,
		},
		Measures: MeasuresResponse{
			EcosystemDisruption: r.Measures.EcosystemDisruption,
			GradualInundation:   r.Measures.GradualInundation,
			SaltWaterIntrusion:  r.Measures.SaltWaterIntrusion,
			Erosion:             r.Measures.Erosion,
			Flooding:            r.Measures.Flooding,
		},
		Risk:     RiskResponse{CapitalStock: r.Risk.CapitalStock, Population: r.Risk.Population},
		Slope:    r.Slope,
		Sections: sections,
	}
}

// RecordToRunResponse converts a persisted run into the response DTO.
func RecordToRunResponse(rec *models.ClassificationRecord) *RunResponse {
	return &RunResponse{
		ID:           rec.ID,
		CoastlineID:  rec.CoastlineID,
		Notification: rec.Notification,
		Axes:         axesToResponse(rec.Axes),
		Code:         rec.Code,
		Slope:        rec.Slope,
		CreatedAt:    rec.CreatedAt,
	}
}

// RecordsToRunResponses converts a slice of persisted runs.
func RecordsToRunResponses(recs []*models.ClassificationRecord) []*RunResponse {
	responses := make([]*RunResponse, len(recs))
	for i, rec := range recs {
		responses[i] = RecordToRunResponse(rec)
	}
	return responses
}
