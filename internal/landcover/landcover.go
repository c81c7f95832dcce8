// Package landcover buckets GlobCover pixels into vegetated and
// non-vegetated classes for the sloping-soft-rock vegetation check.
package landcover

import (
	"math"

	"github.com/openearth/chw-service/internal/models"
	"github.com/openearth/chw-service/internal/raster"
)

// GlobCover codes counted as non-vegetated cover.
const (
	codeSparseVegetation   = 150
	codeArtificialSurfaces = 190
	codeBareAreas          = 200
	codeSnowIce            = 220
)

// Classify buckets the land-cover clip over the transect bbox and applies
// the inland slope gate: terrain steeper than slopeCutoff is presumed
// unvegetated regardless of its cover codes.
func Classify(grid *raster.Grid, slopeInlandPct, slopeCutoff float64) models.FloraFauna {
	if grid == nil {
		return models.FloraNotVegetated
	}

	var nonVegetated, rest int
	for _, v := range grid.Values() {
		if math.IsNaN(v) || v == grid.NoData {
			continue
		}
		switch int(v) {
		case codeSparseVegetation, codeArtificialSurfaces, codeBareAreas, codeSnowIce:
			nonVegetated++
		default:
			rest++
		}
	}

	if slopeInlandPct < slopeCutoff && rest >= nonVegetated {
		return models.FloraVegetated
	}
	return models.FloraNotVegetated
}
