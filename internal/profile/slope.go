package profile

import "math"

// SlopeResult carries the segment-regression outcome for one profile.
// Mean drives the geology-type thresholds, Max is retained for the
// windowed vegetation check and diagnostics.
type SlopeResult struct {
	Mean     float64
	Max      float64
	Segments int
}

// Analyze computes segment slopes over an elevation profile.
//
// A transect crossing dune, berm and back-beach topography has several
// slope regimes; one end-to-end regression would average them out and
// misclassify sediment plains as sloping rock or the reverse. The profile
// is therefore partitioned at slope sign changes and each monotonic run
// regressed on its own, the result being the mean and max of the absolute
// segment slopes in percent grade.
//
// Fewer than 2 samples, or any degenerate regression segment, fails the
// whole computation soft to 0.00.
func Analyze(elevations, distances []float64) SlopeResult {
	n := len(elevations)
	if len(distances) < n {
		n = len(distances)
	}
	if n < 2 {
		return SlopeResult{}
	}

	// NoData is normalized to 0 before any slope math.
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(elevations[i]) {
			y[i] = 0
		} else {
			y[i] = elevations[i]
		}
	}
	x := distances[:n]

	changepoints := detectChangepoints(x, y)

	slopes := make([]float64, 0, len(changepoints)+1)
	for _, seg := range segmentBounds(changepoints, n) {
		slope, ok := linregress(x[seg[0]:seg[1]], y[seg[0]:seg[1]])
		if !ok {
			return SlopeResult{}
		}
		slopes = append(slopes, math.Abs(slope*100))
	}

	res := SlopeResult{Segments: len(slopes)}
	var sum float64
	for _, s := range slopes {
		sum += s
		if s > res.Max {
			res.Max = s
		}
	}
	res.Mean = sum / float64(len(slopes))
	return res
}

// AnalyzeWindow truncates the profile to samples with distance below
// maxDistM and analyzes the remainder. Used for the 200 m-inland
// vegetation slope check; the earliest revision also restricted the main
// slope to a 900 m window this way.
func AnalyzeWindow(elevations, distances []float64, maxDistM float64) SlopeResult {
	n := 0
	for n < len(distances) && distances[n] < maxDistM {
		n++
	}
	if n > len(elevations) {
		n = len(elevations)
	}
	return Analyze(elevations[:n], distances[:n])
}

// detectChangepoints returns the sample indices where the interval slope
// sign transitions into or out of flat, or reverses. The +2 offset aligns
// interval indices back to profile sample indices.
func detectChangepoints(x, y []float64) []int {
	signs := make([]int, len(x)-1)
	for i := range signs {
		dx := x[i+1] - x[i]
		var m float64
		if dx != 0 {
			m = (y[i+1] - y[i]) / dx
		}
		switch {
		case m > 0:
			signs[i] = 1
		case m < 0:
			signs[i] = -1
		}
	}

	var cps []int
	for i := 0; i+1 < len(signs); i++ {
		if isChangepoint(signs[i], signs[i+1]) {
			cps = append(cps, i+2)
		}
	}
	return cps
}

func isChangepoint(a, b int) bool {
	switch [2]int{a, b} {
	case [2]int{0, 1}, [2]int{1, -1}, [2]int{-1, 1}, [2]int{-1, 0}, [2]int{1, 0}:
		return true
	}
	return false
}

// segmentBounds partitions [0,n) at the changepoints. Every segment after
// the first starts one sample before its changepoint so neighboring
// regressions share a boundary sample.
func segmentBounds(changepoints []int, n int) [][2]int {
	if len(changepoints) == 0 {
		return [][2]int{{0, n}}
	}
	bounds := make([][2]int, 0, len(changepoints)+1)
	bounds = append(bounds, [2]int{0, changepoints[0]})
	for i := 1; i < len(changepoints); i++ {
		bounds = append(bounds, [2]int{changepoints[i-1] - 1, changepoints[i]})
	}
	bounds = append(bounds, [2]int{changepoints[len(changepoints)-1] - 1, n})
	return bounds
}

// linregress is an ordinary least-squares fit of y on x. ok is false for
// degenerate segments (fewer than 2 points or zero x variance).
func linregress(x, y []float64) (slope float64, ok bool) {
	n := float64(len(x))
	if len(x) < 2 {
		return 0, false
	}
	var sumX, sumY, sumXY, sumXX float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumXX += x[i] * x[i]
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, false
	}
	return (n*sumXY - sumX*sumY) / denom, true
}
