package ports

import (
	"context"

	"parmatma/models"
)

// Geocoder resolves a free-text location into coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, location string) (models.GeoPoint, error)
}

// HospitalFinder queries points of interest around a coordinate.
type HospitalFinder interface {
	NearbyHospitals(ctx context.Context, center models.GeoPoint, radiusMeters int) ([]models.Hospital, error)
}
