package service

import "strconv"

// OutputSection is one block of the grouped result document the endpoint
// historically returned: Hazards, Risk and Measures sections, each with
// titled sub-blocks.
type OutputSection struct {
	Title string        `json:"title"`
	Info  []OutputBlock `json:"info"`
}

// OutputBlock is a titled key/value or measure-list block.
type OutputBlock struct {
	Title    string            `json:"title"`
	Info     map[string]string `json:"info,omitempty"`
	Measures []string          `json:"measures,omitempty"`
}

func buildSections(r *Result) []OutputSection {
	return []OutputSection{
		{
			Title: "Hazards",
			Info: []OutputBlock{
				{
					Title: "CHW information layers",
					Info: map[string]string{
						"Geological layout": string(r.Axes.GeologicalLayout),
						"Wave exposure":     string(r.Axes.WaveExposure),
						"Tidal range":       string(r.Axes.TidalRange),
						"Flora fauna":       string(r.Axes.FloraFauna),
						"Sediment balance":  string(r.Axes.SedimentBalance),
						"Storm climate":     string(r.Axes.StormClimate),
					},
				},
				{
					Title: "Coastal environment",
					Info: map[string]string{
						"code":                 r.Hazard.Code,
						"slope":                formatSlope(r.Slope),
						"Ecosystem disruption": r.Hazard.EcosystemDisruption,
						"Gradual inundation":   r.Hazard.GradualInundation,
						"Salt water intrusion": r.Hazard.SaltWaterIntrusion,
						"Erosion":              r.Hazard.Erosion,
						"Flooding":             r.Hazard.Flooding,
					},
				},
			},
		},
		{
			Title: "Risk",
			Info: []OutputBlock{
				{
					Title: "Risk",
					Info: map[string]string{
						"Population":                         r.Risk.Population,
						"Capital stock at closest GAR point": r.Risk.CapitalStock,
					},
				},
			},
		},
		{
			Title: "Measures",
			Info: []OutputBlock{
				{Title: "Measures for Ecosystem disruption", Measures: r.Measures.EcosystemDisruption},
				{Title: "Measures for Gradual inundation", Measures: r.Measures.GradualInundation},
				{Title: "Measures for Salt water intrusion", Measures: r.Measures.SaltWaterIntrusion},
				{Title: "Measures for Erosion", Measures: r.Measures.Erosion},
				{Title: "Measures for Flooding", Measures: r.Measures.Flooding},
			},
		},
	}
}

func formatSlope(slope float64) string {
	return strconv.FormatFloat(slope, 'f', 1, 64)
}
