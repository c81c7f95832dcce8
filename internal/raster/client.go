package raster

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// nominalCellDeg approximates a 30 m cell at the equator; the request
// width/height are derived from it so coverage resolution tracks the
// profile sampling step.
const nominalCellDeg = 0.00027

// maxGridDim caps the requested coverage size for very long bboxes
// (the 100 km wave-exposure extensions never need full resolution).
const maxGridDim = 2048

// Client fetches coverage clips from a GeoServer OWS endpoint as ArcGrid.
type Client struct {
	owsURL     string
	user       string
	password   string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient creates a coverage client for one OWS endpoint. Credentials
// may be empty for anonymous servers.
func NewClient(owsURL, user, password string, logger *logrus.Logger) *Client {
	return &Client{
		owsURL:   owsURL,
		user:     user,
		password: password,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

// FetchGrid issues a WCS GetCoverage for the bbox, stores the ArcGrid
// response at outPath inside the request working directory and parses it.
// Any transport, server or parse failure is returned to the caller, whose
// policy decides whether it is recoverable.
func (c *Client) FetchGrid(ctx context.Context, minX, minY, maxX, maxY float64, layer, outPath string) (*Grid, error) {
	width := clampDim(int(math.Ceil((maxX - minX) / nominalCellDeg)))
	height := clampDim(int(math.Ceil((maxY - minY) / nominalCellDeg)))

	params := url.Values{}
	params.Set("service", "WCS")
	params.Set("version", "1.0.0")
	params.Set("request", "GetCoverage")
	params.Set("coverage", layer)
	params.Set("bbox", fmt.Sprintf("%f,%f,%f,%f", minX, minY, maxX, maxY))
	params.Set("crs", "EPSG:4326")
	params.Set("format", "ArcGrid")
	params.Set("width", fmt.Sprintf("%d", width))
	params.Set("height", fmt.Sprintf("%d", height))

	reqURL := c.owsURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("raster: failed to build GetCoverage request: %w", err)
	}
	if c.user != "" {
		req.SetBasicAuth(c.user, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("raster: GetCoverage request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("raster: GetCoverage for %s returned %d: %s", layer, resp.StatusCode, string(body))
	}

	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("raster: failed to create %s: %w", outPath, err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return nil, fmt.Errorf("raster: failed to write coverage to %s: %w", outPath, err)
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("raster: failed to close %s: %w", outPath, err)
	}

	c.logger.WithFields(logrus.Fields{
		"layer": layer,
		"path":  outPath,
	}).Debug("Coverage clip written")

	return ParseGrid(outPath)
}

func clampDim(n int) int {
	if n < 2 {
		return 2
	}
	if n > maxGridDim {
		return maxGridDim
	}
	return n
}
