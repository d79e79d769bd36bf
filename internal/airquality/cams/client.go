// Package cams provides a client for the CAMS atmospheric-composition WMS.
package cams

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/enjikaka/cams/internal/airquality"
	"github.com/enjikaka/cams/internal/geo"
	"github.com/enjikaka/cams/internal/provider/resilience"
)

const (
	// DefaultBaseURL is the CAMS WMS endpoint.
	DefaultBaseURL = "https://apps.ecmwf.int/wms/"

	// DefaultToken is the public access token.
	DefaultToken = "public"

	// ProviderName identifies this provider.
	ProviderName = "cams"
)

// Fixed GetFeatureInfo parameters. The probe pixel sits at the exact center
// of the 200x200 virtual image, so every query samples the middle of the
// bounding box.
const (
	wmsVersion  = "1.3.0"
	imageWidth  = 200
	imageHeight = 200
	probeI      = 100
	probeJ      = 100
)

// ClientConfig holds configuration for the CAMS client.
type ClientConfig struct {
	// BaseURL is the WMS base URL (defaults to DefaultBaseURL).
	BaseURL string

	// Token is the WMS access token (defaults to DefaultToken).
	Token string

	// HTTPClient is the HTTP client to use (must implement HTTPDoer).
	// If nil, a default resilient client will be created.
	HTTPClient HTTPDoer

	// Timeout for individual WMS requests (default: 10s).
	Timeout time.Duration

	// Logger for client operations.
	Logger zerolog.Logger
}

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a CAMS WMS client.
type Client struct {
	baseURL    string
	token      string
	httpClient HTTPDoer
	logger     zerolog.Logger
}

// NewClient creates a new CAMS client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	token := cfg.Token
	if token == "" {
		token = DefaultToken
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		httpClient = resilience.NewClient(resilience.ClientConfig{
			Name:    ProviderName,
			Timeout: timeout,
		})
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// featureInfoResponse is the WMS GetFeatureInfo JSON body.
type featureInfoResponse struct {
	Probes []struct {
		Value struct {
			Data *float64 `json:"Data"`
			Unit *string  `json:"Unit"`
		} `json:"Value"`
	} `json:"Probes"`
}

// featureInfoURL builds the GetFeatureInfo query for one pollutant layer.
// The TIME dimension is omitted on purpose: the endpoint rejects requests
// that combine it with JSON feature info.
func (c *Client) featureInfoURL(loc geo.Coordinate, pollutant airquality.Pollutant) (string, error) {
	layer, ok := airquality.LayerCatalog[pollutant]
	if !ok {
		return "", fmt.Errorf("%w: %q", airquality.ErrUnknownPollutant, pollutant)
	}

	box := geo.BoundingBoxAround(loc)

	params := url.Values{}
	params.Set("version", wmsVersion)
	params.Set("request", "GetFeatureInfo")
	params.Set("token", c.token)
	params.Set("info_format", "application/json")
	params.Set("elevation", "0")
	params.Set("crs", "EPSG:4326")
	params.Set("bbox", box.String())
	params.Set("width", fmt.Sprintf("%d", imageWidth))
	params.Set("height", fmt.Sprintf("%d", imageHeight))
	params.Set("i", fmt.Sprintf("%d", probeI))
	params.Set("j", fmt.Sprintf("%d", probeJ))
	params.Set("layers", layer)
	params.Set("query_layers", layer)

	return c.baseURL + "/?" + params.Encode(), nil
}

// FetchReading fetches one pollutant reading at the given location.
// Transport failures and non-2xx statuses are errors; a body that cannot
// be parsed degrades to a reading with nil value and unit.
func (c *Client) FetchReading(ctx context.Context, loc geo.Coordinate, pollutant airquality.Pollutant) (airquality.Reading, error) {
	u, err := c.featureInfoURL(loc, pollutant)
	if err != nil {
		return airquality.Reading{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return airquality.Reading{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return airquality.Reading{}, fmt.Errorf("fetch %s: %w", pollutant, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return airquality.Reading{}, fmt.Errorf("unexpected status %d for layer %s", resp.StatusCode, pollutant)
	}

	reading := airquality.Reading{Pollutant: pollutant}

	var result featureInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.logger.Warn().
			Err(err).
			Str("pollutant", string(pollutant)).
			Msg("unparseable feature info body")
		return reading, nil
	}

	if len(result.Probes) == 0 || result.Probes[0].Value.Data == nil {
		return reading, nil
	}

	reading.Value = result.Probes[0].Value.Data
	reading.Unit = result.Probes[0].Value.Unit
	return reading, nil
}

// FetchAll fetches readings for every pollutant concurrently and waits for
// all of them. If any fetch fails the whole batch fails; in-flight sibling
// requests are left to run out on their own. Results follow the pollutant
// enumeration order.
func (c *Client) FetchAll(ctx context.Context, loc geo.Coordinate) ([]airquality.Reading, error) {
	readings := make([]airquality.Reading, len(airquality.AllPollutants))
	errs := make([]error, len(airquality.AllPollutants))

	var wg sync.WaitGroup
	for i, pollutant := range airquality.AllPollutants {
		wg.Add(1)
		go func(i int, pollutant airquality.Pollutant) {
			defer wg.Done()
			readings[i], errs[i] = c.FetchReading(ctx, loc, pollutant)
		}(i, pollutant)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%w: %w", airquality.ErrFetchFailed, err)
		}
	}

	return readings, nil
}
