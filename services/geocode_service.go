package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"PlateTrail/models"
	"PlateTrail/utils"
)

// GeocodeService resolves a street address to coordinates through a
// Nominatim-compatible HTTP API. Every call carries a hard 10s timeout;
// a timeout surfaces as NetworkError.
type GeocodeService struct {
	BaseURL string
	Client  *http.Client
}

func NewGeocodeService(baseURL string) *GeocodeService {
	return &GeocodeService{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type geocodeResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Lookup resolves address to a location. Returns NotFound when the geocoder
// has no match, NetworkError on transport failure.
func (s *GeocodeService) Lookup(ctx context.Context, address string) (*models.GeoLocation, error) {
	query := url.Values{}
	query.Set("format", "json")
	query.Set("limit", "1")
	query.Set("q", address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return nil, utils.NewServerError("Failed to build geocode request")
	}
	req.Header.Set("User-Agent", "PlateTrail/1.0")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, utils.NewNetworkError("Geocoding service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, utils.NewNetworkError("Geocoding service returned status " + strconv.Itoa(resp.StatusCode))
	}

	var results []geocodeResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, utils.NewServerError("Failed to parse geocode response")
	}
	if len(results) == 0 {
		return nil, utils.NewNotFound("Address could not be geocoded")
	}

	latitude, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, utils.NewServerError("Failed to parse geocode response")
	}
	longitude, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, utils.NewServerError("Failed to parse geocode response")
	}

	return &models.GeoLocation{Latitude: latitude, Longitude: longitude}, nil
}
