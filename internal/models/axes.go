package models

// GeologicalLayout is the first-level CHW classification axis.
type GeologicalLayout string

const (
	LayoutAny             GeologicalLayout = "Any"
	LayoutRiverMouth      GeologicalLayout = "River mouth"
	LayoutCoralIsland     GeologicalLayout = "Coral island"
	LayoutBarrier         GeologicalLayout = "Barrier"
	LayoutDeltaLowEstuary GeologicalLayout = "Delta/ low estuary island"
	LayoutSedimentPlain   GeologicalLayout = "Sediment plain"
	LayoutSlopingSoftRock GeologicalLayout = "Sloping soft rock"
	LayoutFlatHardRock    GeologicalLayout = "Flat hard rock"
	LayoutSlopingHardRock GeologicalLayout = "Sloping hard rock"
)

// WaveExposure is the second-level axis.
type WaveExposure string

const (
	WaveAny               WaveExposure = "Any"
	WaveExposed           WaveExposure = "exposed"
	WaveModeratelyExposed WaveExposure = "moderately exposed"
	WaveProtected         WaveExposure = "protected"
)

// TidalRange is the third-level axis. The decision table stores the
// wildcard in lower case for this axis, hence the "any" default.
type TidalRange string

const (
	TidalAny   TidalRange = "any"
	TidalMicro TidalRange = "micro"
	TidalMeso  TidalRange = "meso"
	TidalMacro TidalRange = "macro"
)

// FloraFauna is the fourth-level axis.
type FloraFauna string

const (
	FloraAny                  FloraFauna = "Any"
	FloraNo                   FloraFauna = "No"
	FloraCorals               FloraFauna = "Corals"
	FloraMarshMangrove        FloraFauna = "Marsh/mangrove"
	FloraIntermittentMarsh    FloraFauna = "Intermittent marsh"
	FloraIntermittentMangrove FloraFauna = "Intermittent mangrove"
	FloraMarshTidalFlat       FloraFauna = "Marsh/tidal flat"
	FloraMangroveTidalFlat    FloraFauna = "Mangrove/tidal flat"
	FloraVegetated            FloraFauna = "Vegetated"
	FloraNotVegetated         FloraFauna = "Not vegetated"
)

// SedimentBalance is the fifth-level axis. Per the CHW documentation the
// default on any doubt is Balance/Deficit, never a guess.
type SedimentBalance string

const (
	SedimentBalanceDeficit SedimentBalance = "Balance/Deficit"
	SedimentSurplus        SedimentBalance = "Surplus"
	SedimentBeach          SedimentBalance = "Beach"
	SedimentNoBeach        SedimentBalance = "No Beach"
)

// StormClimate is the sixth-level axis.
type StormClimate string

const (
	StormAny StormClimate = "Any"
	StormYes StormClimate = "Yes"
	StormNo  StormClimate = "No"
)

// GeologyMaterial is the binary substrate classification derived from the
// lithology lookup.
type GeologyMaterial string

const (
	MaterialUnconsolidated GeologyMaterial = "unconsolidated"
	MaterialConsolidated   GeologyMaterial = "consolidated"
)

// unconsolidatedGeologies are the GLiM lithology codes treated as
// unconsolidated substrate.
var unconsolidatedGeologies = map[string]bool{
	"su":       true,
	"fluvisol": true,
	"wb":       true,
}

// MaterialForGeology maps a raw lithology value to its substrate class.
func MaterialForGeology(geology string) GeologyMaterial {
	if unconsolidatedGeologies[geology] {
		return MaterialUnconsolidated
	}
	return MaterialConsolidated
}

// Axes holds the six classification axis values for one transect. Each
// field starts at its pre-step default and is only moved off it by a
// successful stage; failed lookups leave the default in place.
type Axes struct {
	GeologicalLayout GeologicalLayout `json:"geological_layout"`
	WaveExposure     WaveExposure     `json:"wave_exposure"`
	TidalRange       TidalRange       `json:"tidal_range"`
	FloraFauna       FloraFauna       `json:"flora_fauna"`
	SedimentBalance  SedimentBalance  `json:"sediment_balance"`
	StormClimate     StormClimate     `json:"storm_climate"`
}

// DefaultAxes returns the pre-classification axis values.
func DefaultAxes() Axes {
	return Axes{
		GeologicalLayout: LayoutAny,
		WaveExposure:     WaveAny,
		TidalRange:       TidalAny,
		FloraFauna:       FloraAny,
		SedimentBalance:  SedimentBalanceDeficit,
		StormClimate:     StormAny,
	}
}
