package storage

import (
	"context"

	"PlateTrail/models"
)

var recommendedSeeds = []models.Restaurant{
	{
		Name:    "Dogtown",
		Address: "691 Monroe Ave, Rochester, NY",
		Location: &models.GeoLocation{
			Latitude:  43.1483,
			Longitude: -77.5851,
		},
		Tags: map[string][]string{
			"cuisine": {"american"},
			"price":   {"$"},
			"vibe":    {"casual", "late night"},
		},
	},
	{
		Name:    "Han Noodle Bar",
		Address: "687 Monroe Ave, Rochester, NY",
		Location: &models.GeoLocation{
			Latitude:  43.1485,
			Longitude: -77.5854,
		},
		Tags: map[string][]string{
			"cuisine": {"chinese"},
			"price":   {"$$"},
			"vibe":    {"casual"},
		},
	},
	{
		Name:    "The Owl House",
		Address: "75 Marshall St, Rochester, NY",
		Location: &models.GeoLocation{
			Latitude:  43.1507,
			Longitude: -77.5996,
		},
		Tags: map[string][]string{
			"cuisine": {"american"},
			"price":   {"$$"},
			"dietary": {"vegan", "vegetarian"},
			"vibe":    {"trendy", "date night"},
		},
	},
}

// SeedRecommended populates the read-only recommended list on first start.
// Does nothing when the collection already has entries.
func SeedRecommended(ctx context.Context, store Store) error {
	existing, err := store.ListRestaurants(ctx, ListRecommended)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for i := range recommendedSeeds {
		if _, err := store.CreateRestaurant(ctx, ListRecommended, &recommendedSeeds[i]); err != nil {
			return err
		}
	}
	return nil
}
