package profile

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/openearth/chw-service/internal/raster"
)

func lineFromCoords(t *testing.T, coords [][]float64) *geom.LineString {
	t.Helper()
	flat := make([]float64, 0, len(coords)*2)
	for _, c := range coords {
		flat = append(flat, c[0], c[1])
	}
	return geom.NewLineStringFlat(geom.XY, flat).SetSRID(4326)
}

func TestBuild_SamplesAtStepIntervals(t *testing.T) {
	grid := writeTestGrid(t, `ncols 4
nrows 4
xllcorner 3.999
yllcorner 51.999
cellsize 0.005
NODATA_value -9999
7 7 7 7
7 7 7 7
7 7 7 7
7 7 7 7
`)

	// Roughly 1 km of meridian inside the grid.
	line := lineFromCoords(t, [][]float64{{4.0, 52.0}, {4.0, 52.009}})
	p := Build(grid, line, 100)

	require.NotEmpty(t, p.Distances)
	assert.Len(t, p.Elevations, len(p.Distances))
	assert.Equal(t, 0.0, p.Distances[0])
	for i, d := range p.Distances {
		assert.Equal(t, float64(i)*100, d)
	}
	for _, e := range p.Elevations {
		assert.Equal(t, 7.0, e)
	}
}

func TestBuild_OutsideGridIsNaN(t *testing.T) {
	grid := writeTestGrid(t, `ncols 2
nrows 2
xllcorner 0
yllcorner 0
cellsize 0.001
NODATA_value -9999
1 1
1 1
`)

	line := lineFromCoords(t, [][]float64{{50.0, 10.0}, {50.0, 10.001}})
	p := Build(grid, line, 50)

	require.NotEmpty(t, p.Elevations)
	for _, e := range p.Elevations {
		assert.True(t, math.IsNaN(e))
	}
}

func TestBuild_NilGrid(t *testing.T) {
	line := lineFromCoords(t, [][]float64{{4.0, 52.0}, {4.0, 52.01}})
	p := Build(nil, line, 30)
	assert.Empty(t, p.Distances)
	assert.Empty(t, p.Elevations)
}

func writeTestGrid(t *testing.T, content string) *raster.Grid {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grid.asc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	grid, err := raster.ParseGrid(path)
	require.NoError(t, err)
	return grid
}
