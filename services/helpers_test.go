package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"PlateTrail/models"
	"PlateTrail/storage"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *storage.FileStore {
	t.Helper()
	store, err := storage.OpenFileStore(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	return store
}

// newGeocodeStub serves a fixed Nominatim-style answer.
func newGeocodeStub(t *testing.T) *GeocodeService {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"43.1483","lon":"-77.5851"}]`))
	}))
	t.Cleanup(server.Close)
	return NewGeocodeService(server.URL)
}

// newBrokenGeocode points at an endpoint that always fails.
func newBrokenGeocode(t *testing.T) *GeocodeService {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)
	return NewGeocodeService(server.URL)
}

// spyStore counts persistence calls so tests can prove a rejected operation
// never reached the store.
type spyStore struct {
	storage.Store
	createCalls int
	mutateCalls int
}

func (s *spyStore) CreateRestaurant(ctx context.Context, list storage.List, restaurant *models.Restaurant) (*models.Restaurant, error) {
	s.createCalls++
	return s.Store.CreateRestaurant(ctx, list, restaurant)
}

func (s *spyStore) MutateRestaurant(ctx context.Context, list storage.List, id string, mutate func(*models.Restaurant) error) (*models.Restaurant, error) {
	s.mutateCalls++
	return s.Store.MutateRestaurant(ctx, list, id, mutate)
}
