// Package profile extracts elevation profiles along transects and derives
// representative slopes from them via changepoint-segmented regression.
package profile

import (
	"math"

	"github.com/twpayne/go-geom"

	"github.com/openearth/chw-service/internal/raster"
)

const earthRadiusM = 6371000

// Profile is an ordered elevation profile: distances in meters along the
// transect and the elevation sampled at each distance. Missing data is
// NaN until slope analysis normalizes it.
type Profile struct {
	Distances  []float64
	Elevations []float64
}

// Build walks the transect at stepM increments from the coastline
// endpoint and samples the DEM grid nearest-neighbor at every step.
// A nil grid yields an empty profile, which downstream slope analysis
// fails soft on.
func Build(g *raster.Grid, line *geom.LineString, stepM float64) *Profile {
	p := &Profile{}
	if g == nil || line == nil || line.NumCoords() < 2 || stepM <= 0 {
		return p
	}

	limit := math.Floor(LengthM(line))
	for d := 0.0; d < limit; d += stepM {
		lon, lat := interpolate(line, d)
		p.Distances = append(p.Distances, d)
		p.Elevations = append(p.Elevations, g.Sample(lon, lat))
	}
	return p
}

// LengthM returns the geodesic length of a WGS84 line in meters.
func LengthM(line *geom.LineString) float64 {
	var total float64
	for i := 1; i < line.NumCoords(); i++ {
		a, b := line.Coord(i-1), line.Coord(i)
		total += haversineM(a[0], a[1], b[0], b[1])
	}
	return total
}

// interpolate returns the lon/lat at distance d meters along the line.
// Beyond the end it clamps to the last vertex.
func interpolate(line *geom.LineString, d float64) (float64, float64) {
	remaining := d
	for i := 1; i < line.NumCoords(); i++ {
		a, b := line.Coord(i-1), line.Coord(i)
		seg := haversineM(a[0], a[1], b[0], b[1])
		if seg <= 0 {
			continue
		}
		if remaining <= seg {
			f := remaining / seg
			return a[0] + f*(b[0]-a[0]), a[1] + f*(b[1]-a[1])
		}
		remaining -= seg
	}
	last := line.Coord(line.NumCoords() - 1)
	return last[0], last[1]
}

func haversineM(lon1, lat1, lon2, lat2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusM * math.Asin(math.Sqrt(a))
}
