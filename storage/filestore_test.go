package storage

import (
	"context"
	"path/filepath"
	"testing"

	"PlateTrail/models"
	"PlateTrail/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	store, err := OpenFileStore(path)
	require.NoError(t, err)
	return store, path
}

func TestFileStoreCreateDefaults(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateRestaurant(ctx, ListVisited, &models.Restaurant{
		Name:    "Dogtown",
		Address: "691 Monroe Ave",
		Location: &models.GeoLocation{
			Latitude:  43.1483,
			Longitude: -77.5851,
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, []models.RatingEntry{}, created.Ratings)
	assert.Equal(t, 0.0, created.AverageRating)
	assert.False(t, created.DateAdded.IsZero())
	assert.Nil(t, created.UpdatedAt)
	assert.NotEmpty(t, created.Geohash)
}

func TestFileStoreListsAreIndependent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.CreateRestaurant(ctx, ListVisited, &models.Restaurant{Name: "A", Address: "1 St"})
	require.NoError(t, err)
	_, err = store.CreateRestaurant(ctx, ListToVisit, &models.Restaurant{Name: "B", Address: "2 St"})
	require.NoError(t, err)

	visited, err := store.ListRestaurants(ctx, ListVisited)
	require.NoError(t, err)
	toVisit, err := store.ListRestaurants(ctx, ListToVisit)
	require.NoError(t, err)

	assert.Len(t, visited, 1)
	assert.Len(t, toVisit, 1)
	assert.Equal(t, "A", visited[0].Name)
	assert.Equal(t, "B", toVisit[0].Name)
}

func TestFileStoreUpdateMergesFields(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateRestaurant(ctx, ListVisited, &models.Restaurant{Name: "Old", Address: "1 St"})
	require.NoError(t, err)

	newName := "New"
	updated, err := store.UpdateRestaurant(ctx, ListVisited, created.ID, RestaurantUpdate{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, "1 St", updated.Address)
	assert.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, created.DateAdded, updated.DateAdded)
}

func TestFileStoreDeleteRemovesExactlyOne(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first, err := store.CreateRestaurant(ctx, ListVisited, &models.Restaurant{Name: "A", Address: "1 St"})
	require.NoError(t, err)
	second, err := store.CreateRestaurant(ctx, ListVisited, &models.Restaurant{Name: "B", Address: "2 St"})
	require.NoError(t, err)

	require.NoError(t, store.DeleteRestaurant(ctx, ListVisited, first.ID))

	remaining, err := store.ListRestaurants(ctx, ListVisited)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, second.ID, remaining[0].ID)
}

func TestFileStoreDeleteMissingIsNotFound(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.DeleteRestaurant(context.Background(), ListVisited, "missing")
	assert.True(t, utils.HasCode(err, utils.CodeNotFound))
}

func TestFileStoreMutateCommitsAtomically(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateRestaurant(ctx, ListVisited, &models.Restaurant{Name: "A", Address: "1 St"})
	require.NoError(t, err)

	updated, err := store.MutateRestaurant(ctx, ListVisited, created.ID, func(r *models.Restaurant) error {
		r.Ratings = append(r.Ratings, models.NewSimpleRating("u1", 5, created.DateAdded))
		r.AverageRating = models.AverageRating(r.Ratings)
		return nil
	})
	require.NoError(t, err)

	assert.Len(t, updated.Ratings, 1)
	assert.Equal(t, 5.0, updated.AverageRating)
	assert.NotNil(t, updated.UpdatedAt)
}

func TestFileStoreMutateErrorLeavesRecordUnchanged(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateRestaurant(ctx, ListVisited, &models.Restaurant{Name: "A", Address: "1 St"})
	require.NoError(t, err)

	_, err = store.MutateRestaurant(ctx, ListVisited, created.ID, func(r *models.Restaurant) error {
		r.Ratings = append(r.Ratings, models.NewSimpleRating("u1", 5, created.DateAdded))
		return utils.NewInvalidInput("nope")
	})
	assert.True(t, utils.HasCode(err, utils.CodeInvalidInput))

	current, err := store.GetRestaurant(ctx, ListVisited, created.ID)
	require.NoError(t, err)
	assert.Empty(t, current.Ratings)
	assert.Nil(t, current.UpdatedAt)
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	store, path := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateRestaurant(ctx, ListVisited, &models.Restaurant{
		Name:    "Dogtown",
		Address: "691 Monroe Ave",
		Tags:    map[string][]string{"cuisine": {"american"}},
	})
	require.NoError(t, err)

	reopened, err := OpenFileStore(path)
	require.NoError(t, err)

	loaded, err := reopened.GetRestaurant(ctx, ListVisited, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dogtown", loaded.Name)
	assert.Equal(t, map[string][]string{"cuisine": {"american"}}, loaded.Tags)
}

func TestFileStoreUsers(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateUser(ctx, &models.User{Username: "sam", PasswordHash: "x"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	byName, err := store.GetUserByUsername(ctx, "sam")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byID, err := store.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "sam", byID.Username)

	_, err = store.GetUserByUsername(ctx, "nobody")
	assert.True(t, utils.HasCode(err, utils.CodeNotFound))
}

func TestFileStoreAppendAudit(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.AppendAudit(context.Background(), &models.AuditEvent{
		UserID: "u1",
		Action: models.AuditCreateRating,
		DocID:  "r1",
	})
	require.NoError(t, err)

	events := store.AuditEvents()
	require.Len(t, events, 1)
	assert.NotEmpty(t, events[0].ID)
	assert.Equal(t, models.AuditCreateRating, events[0].Action)
}

func TestSeedRecommendedIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, SeedRecommended(ctx, store))
	first, err := store.ListRestaurants(ctx, ListRecommended)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	require.NoError(t, SeedRecommended(ctx, store))
	second, err := store.ListRestaurants(ctx, ListRecommended)
	require.NoError(t, err)
	assert.Len(t, second, len(first))
}
