package models

import (
	"fmt"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// Transect is the spatial unit of classification: a line whose first point
// lies on the coastline, extending a nominal 500 m inland, in WGS84 degrees.
// Immutable once constructed; extended variants are produced by the spatial
// repository as independent WKT values.
type Transect struct {
	Line         *geom.LineString
	CoastlineID  float64
	Notification string
}

// NewTransect builds a transect from [lon lat] coordinate pairs.
func NewTransect(coords [][]float64, coastlineID float64, notification string) (*Transect, error) {
	if len(coords) < 2 {
		return nil, fmt.Errorf("transect needs at least 2 coordinates, got %d", len(coords))
	}
	flat := make([]float64, 0, len(coords)*2)
	for _, c := range coords {
		if len(c) != 2 {
			return nil, fmt.Errorf("coordinate must be a [lon lat] pair, got %d values", len(c))
		}
		flat = append(flat, c[0], c[1])
	}
	line := geom.NewLineStringFlat(geom.XY, flat).SetSRID(4326)
	return &Transect{
		Line:         line,
		CoastlineID:  coastlineID,
		Notification: notification,
	}, nil
}

// WKT returns the transect geometry in well-known text, as fed to PostGIS.
func (t *Transect) WKT() (string, error) {
	s, err := wkt.Marshal(t.Line)
	if err != nil {
		return "", fmt.Errorf("failed to encode transect WKT: %w", err)
	}
	return s, nil
}

// BBox returns the geographic bounding box as (minX, minY, maxX, maxY).
func (t *Transect) BBox() (float64, float64, float64, float64) {
	b := t.Line.Bounds()
	return b.Min(0), b.Min(1), b.Max(0), b.Max(1)
}

// StartLat is the latitude of the coastline endpoint, used for the
// latitude-band vegetation prior.
func (t *Transect) StartLat() float64 {
	return t.Line.Coord(0)[1]
}
