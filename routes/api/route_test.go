package route

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"PlateTrail/middleware"
	"PlateTrail/models"
	"PlateTrail/services"
	"PlateTrail/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  string          `json:"status"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.OpenFileStore(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	require.NoError(t, storage.SeedRecommended(context.Background(), store))

	geocoder := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"43.1483","lon":"-77.5851"}]`))
	}))
	t.Cleanup(geocoder.Close)

	router := gin.New()
	router.Use(middleware.ErrorHandlerMiddleware())
	RegisterRoutes(router, store, nil, services.NewGeocodeService(geocoder.URL), "test-secret")
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	var parsed envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &parsed))
	return recorder.Code, parsed
}

func registerUser(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()
	code, resp := doRequest(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": username,
		"password": "correct horse battery",
	})
	require.Equal(t, http.StatusCreated, code)

	var auth models.AuthResponse
	require.NoError(t, json.Unmarshal(resp.Data, &auth))
	require.NotEmpty(t, auth.Token)
	return auth.Token
}

func TestAuthFlow(t *testing.T) {
	router := newTestRouter(t)

	registerUser(t, router, "sam")

	code, _ := doRequest(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "sam",
		"password": "correct horse battery",
	})
	assert.Equal(t, http.StatusOK, code)

	code, resp := doRequest(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "sam",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "error", resp.Status)
}

func TestMutationsRequireToken(t *testing.T) {
	router := newTestRouter(t)

	code, _ := doRequest(t, router, http.MethodPost, "/api/restaurants", "", gin.H{
		"name":    "Dogtown",
		"address": "691 Monroe Ave",
	})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = doRequest(t, router, http.MethodPost, "/api/restaurants", "dummy-token-user1", gin.H{
		"name":    "Dogtown",
		"address": "691 Monroe Ave",
	})
	assert.Equal(t, http.StatusUnauthorized, code)

	// Reads stay public.
	code, _ = doRequest(t, router, http.MethodGet, "/api/restaurants", "", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestRestaurantLifecycle(t *testing.T) {
	router := newTestRouter(t)
	token := registerUser(t, router, "sam")

	code, resp := doRequest(t, router, http.MethodPost, "/api/restaurants", token, gin.H{
		"name":    "Dogtown",
		"address": "691 Monroe Ave",
		"tags":    gin.H{"cuisine": []string{"american"}},
	})
	require.Equal(t, http.StatusCreated, code)

	var created models.Restaurant
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 0.0, created.AverageRating)
	assert.NotNil(t, created.Location)

	// Case-insensitive name match on the same list is rejected before any write.
	code, resp = doRequest(t, router, http.MethodPost, "/api/restaurants", token, gin.H{
		"name":    "dogtown",
		"address": "123 Other St",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "DUPLICATE", resp.Code)

	// Same place on the to-visit list is fine: lists are independent.
	code, _ = doRequest(t, router, http.MethodPost, "/api/tovisit", token, gin.H{
		"name":    "Dogtown",
		"address": "691 Monroe Ave",
	})
	assert.Equal(t, http.StatusCreated, code)

	code, resp = doRequest(t, router, http.MethodPut, "/api/restaurants/"+created.ID, token, gin.H{
		"name": "Dogtown Hots",
	})
	require.Equal(t, http.StatusOK, code)
	var updated models.Restaurant
	require.NoError(t, json.Unmarshal(resp.Data, &updated))
	assert.Equal(t, "Dogtown Hots", updated.Name)
	assert.NotNil(t, updated.UpdatedAt)

	code, _ = doRequest(t, router, http.MethodDelete, "/api/restaurants/"+created.ID, token, nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = doRequest(t, router, http.MethodDelete, "/api/restaurants/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, resp = doRequest(t, router, http.MethodGet, "/api/restaurants", "", nil)
	require.Equal(t, http.StatusOK, code)
	var all []models.Restaurant
	require.NoError(t, json.Unmarshal(resp.Data, &all))
	assert.Empty(t, all)
}

func TestRatingRoutes(t *testing.T) {
	router := newTestRouter(t)
	token := registerUser(t, router, "sam")

	code, resp := doRequest(t, router, http.MethodPost, "/api/tovisit", token, gin.H{
		"name":    "Han Noodle Bar",
		"address": "687 Monroe Ave",
	})
	require.Equal(t, http.StatusCreated, code)
	var created models.Restaurant
	require.NoError(t, json.Unmarshal(resp.Data, &created))

	// Simple mode ignores the full-only fields even when the client sends them.
	code, resp = doRequest(t, router, http.MethodPost, "/api/tovisit/"+created.ID+"/ratings", token, gin.H{
		"rating":      4,
		"wouldReturn": true,
		"comment":     "can't wait",
	})
	require.Equal(t, http.StatusOK, code)

	var rated models.Restaurant
	require.NoError(t, json.Unmarshal(resp.Data, &rated))
	require.Len(t, rated.Ratings, 1)
	assert.Equal(t, models.RatingModeSimple, rated.Ratings[0].Mode)
	assert.False(t, rated.Ratings[0].WouldReturn)
	assert.Empty(t, rated.Ratings[0].Comment)
	assert.Equal(t, 4.0, rated.AverageRating)

	code, resp = doRequest(t, router, http.MethodPost, "/api/tovisit/"+created.ID+"/ratings", token, gin.H{
		"rating": 7,
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_INPUT", resp.Code)
}

func TestRecommendedIsSeededAndPublic(t *testing.T) {
	router := newTestRouter(t)

	code, resp := doRequest(t, router, http.MethodGet, "/api/recommended", "", nil)
	require.Equal(t, http.StatusOK, code)

	var recommended []models.Restaurant
	require.NoError(t, json.Unmarshal(resp.Data, &recommended))
	assert.NotEmpty(t, recommended)
}

func TestProfileRoute(t *testing.T) {
	router := newTestRouter(t)
	token := registerUser(t, router, "sam")

	code, resp := doRequest(t, router, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, code)

	var user models.User
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	assert.Equal(t, "sam", user.Username)

	code, _ = doRequest(t, router, http.MethodGet, "/api/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}
