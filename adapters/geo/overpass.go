package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"parmatma/internal/config"
	"parmatma/internal/errors"
	"parmatma/models"
)

// OverpassClient implements ports.HospitalFinder against the Overpass API.
type OverpassClient struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
}

// NewOverpassClient creates a hospital finder from the geo configuration.
func NewOverpassClient(cfg *config.GeoConfig) *OverpassClient {
	return &OverpassClient{
		endpoint:   cfg.OverpassURL,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type overpassElement struct {
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

// NearbyHospitals queries hospital nodes around the center point.
func (c *OverpassClient) NearbyHospitals(ctx context.Context, center models.GeoPoint, radiusMeters int) ([]models.Hospital, error) {
	query := fmt.Sprintf(`[out:json];
node["amenity"="hospital"](around:%d,%f,%f);
out body;`, radiusMeters, center.Lat, center.Lon)

	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "build overpass request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.ExternalServiceError("overpass", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.ExternalServiceError("overpass", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.ExternalServiceError("overpass",
			fmt.Errorf("http %d: %s", resp.StatusCode, string(raw)))
	}

	var decoded overpassResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, errors.Wrap(err, "unmarshal overpass response")
	}

	hospitals := make([]models.Hospital, 0, len(decoded.Elements))
	for _, el := range decoded.Elements {
		name := el.Tags["name"]
		if name == "" {
			name = "Unnamed Hospital"
		}
		hospitals = append(hospitals, models.Hospital{Name: name, Lat: el.Lat, Lon: el.Lon})
	}
	return hospitals, nil
}
