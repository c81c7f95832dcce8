package raster

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

// NoDataSentinel is the nodata value the coverage server writes when none
// is declared in the grid header.
const NoDataSentinel = -9999

// Grid is a single-band raster in ESRI ASCII (ArcGrid) layout: row-major
// values, first row northernmost, georeferenced by its lower-left corner
// and a square cell size in degrees.
type Grid struct {
	Cols      int
	Rows      int
	XLLCorner float64
	YLLCorner float64
	CellSize  float64
	NoData    float64

	// values is row-major, values[0] is the top (northern) row.
	values []float64
}

// ParseGrid reads an ArcGrid coverage from a file.
func ParseGrid(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("raster: failed to open grid %s: %w", path, err)
	}
	defer f.Close()

	g := &Grid{NoData: NoDataSentinel}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 16*1024*1024)

	headerDone := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		if !headerDone {
			key := strings.ToLower(fields[0])
			switch key {
			case "ncols", "nrows":
				if len(fields) != 2 {
					return nil, fmt.Errorf("raster: malformed header line %q", line)
				}
				n, err := strconv.Atoi(fields[1])
				if err != nil {
					return nil, fmt.Errorf("raster: malformed %s: %w", key, err)
				}
				if key == "ncols" {
					g.Cols = n
				} else {
					g.Rows = n
				}
				continue
			case "xllcorner", "yllcorner", "cellsize", "nodata_value":
				if len(fields) != 2 {
					return nil, fmt.Errorf("raster: malformed header line %q", line)
				}
				v, err := strconv.ParseFloat(fields[1], 64)
				if err != nil {
					return nil, fmt.Errorf("raster: malformed %s: %w", key, err)
				}
				switch key {
				case "xllcorner":
					g.XLLCorner = v
				case "yllcorner":
					g.YLLCorner = v
				case "cellsize":
					g.CellSize = v
				case "nodata_value":
					g.NoData = v
				}
				continue
			}
			// First non-header line starts the data block.
			headerDone = true
			if g.Cols <= 0 || g.Rows <= 0 || g.CellSize <= 0 {
				return nil, fmt.Errorf("raster: incomplete grid header in %s", path)
			}
			g.values = make([]float64, 0, g.Cols*g.Rows)
		}

		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("raster: malformed cell value %q: %w", field, err)
			}
			g.values = append(g.values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("raster: failed to read grid %s: %w", path, err)
	}
	if !headerDone || len(g.values) != g.Cols*g.Rows {
		return nil, fmt.Errorf("raster: grid %s has %d values, expected %d", path, len(g.values), g.Cols*g.Rows)
	}
	return g, nil
}

// Sample returns the nearest-neighbor cell value at a lon/lat position.
// Positions outside the grid and nodata cells return NaN.
func (g *Grid) Sample(lon, lat float64) float64 {
	col := int(math.Floor((lon - g.XLLCorner) / g.CellSize))
	rowFromBottom := int(math.Floor((lat - g.YLLCorner) / g.CellSize))
	row := g.Rows - 1 - rowFromBottom
	if col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
		return math.NaN()
	}
	v := g.values[row*g.Cols+col]
	if v == g.NoData {
		return math.NaN()
	}
	return v
}

// Values returns every cell value including nodata cells.
func (g *Grid) Values() []float64 {
	out := make([]float64, len(g.values))
	copy(out, g.values)
	return out
}

// Median returns the median of all valid cells, masking nodata. A grid
// with no valid cells yields 0.
func (g *Grid) Median() float64 {
	valid := make([]float64, 0, len(g.values))
	for _, v := range g.values {
		if v == g.NoData || math.IsNaN(v) {
			continue
		}
		valid = append(valid, v)
	}
	if len(valid) == 0 {
		return 0
	}
	sort.Float64s(valid)
	mid := len(valid) / 2
	if len(valid)%2 == 1 {
		return valid[mid]
	}
	return (valid[mid-1] + valid[mid]) / 2
}
