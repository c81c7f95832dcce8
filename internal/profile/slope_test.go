package profile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_MonotonicRise(t *testing.T) {
	// 3 m per 30 m step, a single 10% grade segment.
	x := []float64{0, 30, 60, 90}
	y := []float64{0, 3, 6, 9}

	res := Analyze(y, x)

	assert.Equal(t, 1, res.Segments)
	assert.InDelta(t, 10.0, res.Mean, 1e-9)
	assert.InDelta(t, 10.0, res.Max, 1e-9)
}

func TestAnalyze_FlatProfile(t *testing.T) {
	x := []float64{0, 30, 60, 90}
	y := []float64{5, 5, 5, 5}

	res := Analyze(y, x)

	assert.Equal(t, 1, res.Segments)
	assert.InDelta(t, 0.0, res.Mean, 1e-9)
	assert.InDelta(t, 0.0, res.Max, 1e-9)
}

func TestAnalyze_SignReversalSplitsSegments(t *testing.T) {
	// Rises at 10% then falls at 6.67%; the reversal must yield two
	// independent regressions, not one washed-out average.
	x := []float64{0, 30, 60, 90, 120}
	y := []float64{0, 3, 6, 4, 2}

	res := Analyze(y, x)

	require.Equal(t, 2, res.Segments)
	assert.InDelta(t, 10.0, res.Max, 1e-9)
	assert.InDelta(t, (10.0+100.0/15.0)/2, res.Mean, 1e-6)
}

func TestAnalyze_RiseToFlatSplitsSegments(t *testing.T) {
	x := []float64{0, 30, 60, 90, 120}
	y := []float64{0, 3, 6, 6, 6}

	res := Analyze(y, x)

	assert.Equal(t, 2, res.Segments)
	assert.InDelta(t, 10.0, res.Max, 1e-9)
}

func TestAnalyze_NoDataTreatedAsZero(t *testing.T) {
	x := []float64{0, 30, 60}
	y := []float64{math.NaN(), math.NaN(), 3}

	res := Analyze(y, x)

	// NaN collapses to elevation 0, so the profile is 0,0,3.
	assert.Equal(t, 2, res.Segments)
	assert.InDelta(t, 10.0, res.Max, 1e-9)
}

func TestAnalyze_TooFewSamples(t *testing.T) {
	assert.Equal(t, SlopeResult{}, Analyze([]float64{5}, []float64{0}))
	assert.Equal(t, SlopeResult{}, Analyze(nil, nil))
}

func TestAnalyze_DegenerateDistancesFailSoft(t *testing.T) {
	// Zero x variance makes the regression undefined; the whole result
	// degrades to zero rather than erroring.
	x := []float64{10, 10, 10}
	y := []float64{0, 5, 9}

	res := Analyze(y, x)

	assert.Equal(t, SlopeResult{}, res)
}

func TestAnalyzeWindow_TruncatesProfile(t *testing.T) {
	// Flat for the first 200 m, steep after; the windowed result must
	// not see the steep tail.
	x := []float64{0, 30, 60, 90, 120, 150, 180, 210, 240, 270}
	y := []float64{0, 0, 0, 0, 0, 0, 0, 10, 20, 30}

	full := Analyze(y, x)
	windowed := AnalyzeWindow(y, x, 200)

	assert.Greater(t, full.Max, 10.0)
	assert.InDelta(t, 0.0, windowed.Mean, 1e-9)
	assert.InDelta(t, 0.0, windowed.Max, 1e-9)
}

func TestLengthM_Meridian(t *testing.T) {
	line := lineFromCoords(t, [][]float64{{4.0, 52.0}, {4.0, 52.009}})
	// 0.009 degrees of latitude is very close to 1 km.
	assert.InDelta(t, 1000, LengthM(line), 5)
}
