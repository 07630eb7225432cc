package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parmatma/internal/config"
	apperrors "parmatma/internal/errors"
	"parmatma/models"
)

func geoConfig(nominatimURL, overpassURL string) *config.GeoConfig {
	return &config.GeoConfig{
		NominatimURL:   nominatimURL,
		OverpassURL:    overpassURL,
		UserAgent:      "ParmatmaHealthApp/1.0 (test)",
		Timeout:        5 * time.Second,
		HospitalRadius: 5000,
	}
}

func TestGeocode_Success(t *testing.T) {
	var gotQuery, gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotAgent = r.Header.Get("User-Agent")
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`[{"lat":"19.0760","lon":"72.8777"}]`))
	}))
	defer server.Close()

	client := NewNominatimClient(geoConfig(server.URL, ""))
	point, err := client.Geocode(context.Background(), "Mumbai")
	require.NoError(t, err)

	assert.Equal(t, "Mumbai", gotQuery)
	assert.Equal(t, "ParmatmaHealthApp/1.0 (test)", gotAgent)
	assert.InDelta(t, 19.0760, point.Lat, 1e-9)
	assert.InDelta(t, 72.8777, point.Lon, 1e-9)
}

func TestGeocode_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewNominatimClient(geoConfig(server.URL, ""))
	_, err := client.Geocode(context.Background(), "Nowhereville")

	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.GetCode(err))
}

func TestGeocode_EmptyLocation(t *testing.T) {
	client := NewNominatimClient(geoConfig("http://unused", ""))
	_, err := client.Geocode(context.Background(), "   ")

	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidInput, apperrors.GetCode(err))
}

func TestNearbyHospitals_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		data := r.PostForm.Get("data")
		assert.Contains(t, data, `node["amenity"="hospital"]`)
		assert.Contains(t, data, "around:5000")
		_, _ = w.Write([]byte(`{"elements":[
			{"lat":19.1,"lon":72.9,"tags":{"name":"City Hospital"}},
			{"lat":19.2,"lon":72.8,"tags":{}}
		]}`))
	}))
	defer server.Close()

	client := NewOverpassClient(geoConfig("", server.URL))
	hospitals, err := client.NearbyHospitals(context.Background(), models.GeoPoint{Lat: 19.0760, Lon: 72.8777}, 5000)
	require.NoError(t, err)

	require.Len(t, hospitals, 2)
	assert.Equal(t, "City Hospital", hospitals[0].Name)
	assert.Equal(t, "Unnamed Hospital", hospitals[1].Name)
}

func TestNearbyHospitals_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGatewayTimeout)
	}))
	defer server.Close()

	client := NewOverpassClient(geoConfig("", server.URL))
	_, err := client.NearbyHospitals(context.Background(), models.GeoPoint{}, 5000)

	require.Error(t, err)
	assert.Equal(t, apperrors.CodeExternalService, apperrors.GetCode(err))
}
