package services

import (
	"context"
	"time"

	"PlateTrail/models"
	"PlateTrail/storage"
	"PlateTrail/utils"
)

// RatingService realizes the upsert-by-user rating flow. The visited list
// takes full entries (wouldReturn + comment), the to-visit list only simple
// ones; a simple re-rating fully replaces a prior full entry, stripping the
// full-only fields.
type RatingService struct {
	Store storage.Store
	Audit *AuditService
}

func NewRatingService(store storage.Store, audit *AuditService) *RatingService {
	return &RatingService{
		Store: store,
		Audit: audit,
	}
}

func ratingModeFor(list storage.List) (models.RatingMode, error) {
	switch list {
	case storage.ListVisited:
		return models.RatingModeFull, nil
	case storage.ListToVisit:
		return models.RatingModeSimple, nil
	default:
		return "", utils.NewInvalidInput("List does not accept ratings")
	}
}

// SubmitRating upserts the user's rating on a restaurant and recomputes
// averageRating, committing both in a single atomic store write. Returns the
// updated record so callers can refresh their state without a refetch.
func (s *RatingService) SubmitRating(ctx context.Context, list storage.List, restaurantID, userID string, input models.RatingInput) (*models.Restaurant, error) {
	if userID == "" {
		return nil, utils.NewAuthRequired("Authentication required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, utils.NewInvalidInput("Rating must be between 1 and 5")
	}
	mode, err := ratingModeFor(list)
	if err != nil {
		return nil, err
	}

	var entry models.RatingEntry
	if mode == models.RatingModeFull {
		wouldReturn := input.WouldReturn != nil && *input.WouldReturn
		entry = models.NewFullRating(userID, input.Rating, wouldReturn, input.Comment, time.Now().UTC())
	} else {
		entry = models.NewSimpleRating(userID, input.Rating, time.Now().UTC())
	}

	action := models.AuditCreateRating
	updated, err := s.Store.MutateRestaurant(ctx, list, restaurantID, func(restaurant *models.Restaurant) error {
		kept := restaurant.Ratings[:0:0]
		for _, existing := range restaurant.Ratings {
			if existing.UserID == userID {
				action = models.AuditUpdateRating
				continue
			}
			kept = append(kept, existing)
		}
		restaurant.Ratings = append(kept, entry)
		restaurant.AverageRating = models.AverageRating(restaurant.Ratings)
		return nil
	})
	if err != nil {
		return nil, err
	}

	details := map[string]interface{}{
		"rating":     entry.Rating,
		"hasComment": entry.Comment != "",
	}
	if mode == models.RatingModeFull {
		details["wouldReturn"] = entry.WouldReturn
	}
	s.Audit.Record(userID, action, string(list), restaurantID, details)

	return updated, nil
}
