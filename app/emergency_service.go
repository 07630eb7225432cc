package app

import (
	"context"

	"parmatma/models"
	"parmatma/ports"
)

// maxHospitalResults caps the list handed to the display layer.
const maxHospitalResults = 10

// EmergencyService resolves a free-text location and finds hospitals nearby.
type EmergencyService struct {
	geocoder  ports.Geocoder
	hospitals ports.HospitalFinder
	radius    int
}

// NewEmergencyService creates a new emergency support service
func NewEmergencyService(geocoder ports.Geocoder, hospitals ports.HospitalFinder, radiusMeters int) *EmergencyService {
	if radiusMeters <= 0 {
		radiusMeters = 5000
	}
	return &EmergencyService{
		geocoder:  geocoder,
		hospitals: hospitals,
		radius:    radiusMeters,
	}
}

// HospitalSearch is the outcome of one nearby-hospital lookup.
type HospitalSearch struct {
	Location  string            `json:"location"`
	Center    models.GeoPoint   `json:"center"`
	Radius    int               `json:"radius_meters"`
	Total     int               `json:"total_found"`
	Hospitals []models.Hospital `json:"hospitals"`
}

// FindHospitals geocodes the location and queries hospitals around it. The
// returned list is capped for display; Total reports the full count.
func (s *EmergencyService) FindHospitals(ctx context.Context, location string) (*HospitalSearch, error) {
	center, err := s.geocoder.Geocode(ctx, location)
	if err != nil {
		return nil, err
	}

	hospitals, err := s.hospitals.NearbyHospitals(ctx, center, s.radius)
	if err != nil {
		return nil, err
	}

	total := len(hospitals)
	if len(hospitals) > maxHospitalResults {
		hospitals = hospitals[:maxHospitalResults]
	}
	return &HospitalSearch{
		Location:  location,
		Center:    center,
		Radius:    s.radius,
		Total:     total,
		Hospitals: hospitals,
	}, nil
}
