package models

// GeoPoint is a geocoded coordinate pair
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Hospital is one point of interest returned by the map query service
type Hospital struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// TelehealthPlatform is one entry in the static consultation directory
type TelehealthPlatform struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}
