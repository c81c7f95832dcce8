package profile

import "math"

// DetectSeaPatterns flags sea-to-land transitions in an elevation
// profile: positions where a missing (sea) sample is followed by a valid
// (land) one. Legacy barrier detection, superseded by the barrier and
// estuary geometry predicates but retained for compatibility.
func DetectSeaPatterns(elevations []float64) []bool {
	if len(elevations) < 2 {
		return nil
	}
	pattern := make([]bool, len(elevations)-1)
	for i := 0; i+1 < len(elevations); i++ {
		pattern[i] = math.IsNaN(elevations[i]) && !math.IsNaN(elevations[i+1])
	}
	return pattern
}

// IsBarrierPattern reports whether the profile crosses from sea to land
// more than once, the legacy barrier-island signature.
func IsBarrierPattern(elevations []float64) bool {
	count := 0
	for _, hit := range DetectSeaPatterns(elevations) {
		if hit {
			count++
		}
	}
	return count > 1
}
