// Package geo holds the clients for the open geocoding and map query
// services used by emergency support.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"parmatma/internal/config"
	"parmatma/internal/errors"
	"parmatma/models"
)

// NominatimClient implements ports.Geocoder against the OpenStreetMap
// Nominatim search endpoint.
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewNominatimClient creates a geocoder from the geo configuration.
func NewNominatimClient(cfg *config.GeoConfig) *NominatimClient {
	return &NominatimClient{
		baseURL:    strings.TrimRight(cfg.NominatimURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves a free-text location to its best-match coordinates.
// Nominatim requires an identifying User-Agent on every request.
func (c *NominatimClient) Geocode(ctx context.Context, location string) (models.GeoPoint, error) {
	if strings.TrimSpace(location) == "" {
		return models.GeoPoint{}, errors.InvalidInput("location is required")
	}

	params := url.Values{}
	params.Set("q", location)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return models.GeoPoint{}, errors.Wrap(err, "build geocode request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.GeoPoint{}, errors.ExternalServiceError("nominatim", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.GeoPoint{}, errors.ExternalServiceError("nominatim", err)
	}
	if resp.StatusCode != http.StatusOK {
		return models.GeoPoint{}, errors.ExternalServiceError("nominatim",
			fmt.Errorf("http %d: %s", resp.StatusCode, string(raw)))
	}

	var results []nominatimResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return models.GeoPoint{}, errors.Wrap(err, "unmarshal geocode response")
	}
	if len(results) == 0 {
		return models.GeoPoint{}, errors.NotFound("location")
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return models.GeoPoint{}, errors.Wrap(err, "parse latitude")
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return models.GeoPoint{}, errors.Wrap(err, "parse longitude")
	}
	return models.GeoPoint{Lat: lat, Lon: lon}, nil
}
