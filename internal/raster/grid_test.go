package raster

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseTestGrid(t *testing.T, content string) *Grid {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grid.asc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	g, err := ParseGrid(path)
	require.NoError(t, err)
	return g
}

func TestParseGrid_HeaderAndValues(t *testing.T) {
	g := parseTestGrid(t, `ncols 3
nrows 2
xllcorner 4.0
yllcorner 52.0
cellsize 0.01
NODATA_value -9999
1 2 3
4 5 6
`)

	assert.Equal(t, 3, g.Cols)
	assert.Equal(t, 2, g.Rows)
	assert.Equal(t, 4.0, g.XLLCorner)
	assert.Equal(t, 52.0, g.YLLCorner)
	assert.Equal(t, 0.01, g.CellSize)
	assert.Equal(t, -9999.0, g.NoData)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, g.Values())
}

func TestParseGrid_DefaultNoData(t *testing.T) {
	g := parseTestGrid(t, `ncols 1
nrows 1
xllcorner 0
yllcorner 0
cellsize 1
5
`)
	assert.Equal(t, float64(NoDataSentinel), g.NoData)
}

func TestParseGrid_ValueCountMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.asc")
	require.NoError(t, os.WriteFile(path, []byte(`ncols 2
nrows 2
xllcorner 0
yllcorner 0
cellsize 1
1 2 3
`), 0o644))

	_, err := ParseGrid(path)
	assert.Error(t, err)
}

func TestParseGrid_MissingHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.asc")
	require.NoError(t, os.WriteFile(path, []byte("1 2 3\n"), 0o644))

	_, err := ParseGrid(path)
	assert.Error(t, err)
}

func TestSample_NearestNeighbor(t *testing.T) {
	// First data row is the northern row.
	g := parseTestGrid(t, `ncols 2
nrows 2
xllcorner 4.0
yllcorner 52.0
cellsize 0.01
NODATA_value -9999
1 2
3 4
`)

	assert.Equal(t, 3.0, g.Sample(4.005, 52.005)) // SW cell
	assert.Equal(t, 4.0, g.Sample(4.015, 52.005)) // SE cell
	assert.Equal(t, 1.0, g.Sample(4.005, 52.015)) // NW cell
	assert.Equal(t, 2.0, g.Sample(4.015, 52.015)) // NE cell
}

func TestSample_OutsideAndNoData(t *testing.T) {
	g := parseTestGrid(t, `ncols 2
nrows 1
xllcorner 4.0
yllcorner 52.0
cellsize 0.01
NODATA_value -9999
-9999 8
`)

	assert.True(t, math.IsNaN(g.Sample(3.0, 52.005)))
	assert.True(t, math.IsNaN(g.Sample(4.005, 53.0)))
	assert.True(t, math.IsNaN(g.Sample(4.005, 52.005)))
	assert.Equal(t, 8.0, g.Sample(4.015, 52.005))
}

func TestMedian_MasksNoData(t *testing.T) {
	g := parseTestGrid(t, `ncols 3
nrows 2
xllcorner 0
yllcorner 0
cellsize 1
NODATA_value -9999
-9999 10 30
20 -9999 -9999
`)

	assert.Equal(t, 20.0, g.Median())
}

func TestMedian_EvenCountAndEmpty(t *testing.T) {
	g := parseTestGrid(t, `ncols 2
nrows 1
xllcorner 0
yllcorner 0
cellsize 1
NODATA_value -9999
10 20
`)
	assert.Equal(t, 15.0, g.Median())

	empty := parseTestGrid(t, `ncols 1
nrows 1
xllcorner 0
yllcorner 0
cellsize 1
NODATA_value -9999
-9999
`)
	assert.Equal(t, 0.0, empty.Median())
}
