package storage

import (
	"context"
	"time"

	"PlateTrail/models"
	"PlateTrail/utils"

	"cloud.google.com/go/firestore"
	"github.com/mmcloughlin/geohash"
	"google.golang.org/api/iterator"
	"google.golang.org/genproto/googleapis/type/latlng"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection = "users"
	auditCollection = "audit_trail"
)

// FirestoreStore is the hosted document database backend. Each list is its own
// top-level collection; the rating upsert runs inside a Firestore transaction
// so ratings and averageRating always commit together.
type FirestoreStore struct {
	Client *firestore.Client
}

var _ Store = (*FirestoreStore)(nil)

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{Client: client}
}

// restaurantData builds the document map. Location is stored as a native
// GeoPoint next to its geohash so the collection stays geo-queryable.
func restaurantData(r *models.Restaurant) map[string]interface{} {
	data := map[string]interface{}{
		"id":            r.ID,
		"name":          r.Name,
		"address":       r.Address,
		"tags":          r.Tags,
		"ratings":       r.Ratings,
		"averageRating": r.AverageRating,
		"dateAdded":     r.DateAdded,
	}
	if r.Location != nil {
		data["location"] = &latlng.LatLng{Latitude: r.Location.Latitude, Longitude: r.Location.Longitude}
		data["geohash"] = geohash.Encode(r.Location.Latitude, r.Location.Longitude)
	}
	if r.UpdatedAt != nil {
		data["updatedAt"] = *r.UpdatedAt
	}
	return data
}

func decodeRestaurant(doc *firestore.DocumentSnapshot) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := doc.DataTo(&restaurant); err != nil {
		return nil, utils.NewServerError("Failed to parse restaurant data")
	}
	restaurant.ID = doc.Ref.ID

	if geoPoint, ok := doc.Data()["location"].(*latlng.LatLng); ok {
		restaurant.Location = &models.GeoLocation{
			Latitude:  geoPoint.Latitude,
			Longitude: geoPoint.Longitude,
		}
	}
	if restaurant.Ratings == nil {
		restaurant.Ratings = []models.RatingEntry{}
	}
	return &restaurant, nil
}

func mapFirestoreError(err error, notFoundMessage string) error {
	switch status.Code(err) {
	case codes.NotFound:
		return utils.NewNotFound(notFoundMessage)
	case codes.Unavailable, codes.DeadlineExceeded:
		return utils.NewNetworkError("Document store unreachable")
	default:
		return utils.NewServerError("Document store request failed")
	}
}

func (s *FirestoreStore) ListRestaurants(ctx context.Context, list List) ([]models.Restaurant, error) {
	iter := s.Client.Collection(string(list)).Documents(ctx)

	restaurants := make([]models.Restaurant, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapFirestoreError(err, "Restaurant not found")
		}
		restaurant, err := decodeRestaurant(doc)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, *restaurant)
	}
	return restaurants, nil
}

func (s *FirestoreStore) GetRestaurant(ctx context.Context, list List, id string) (*models.Restaurant, error) {
	doc, err := s.Client.Collection(string(list)).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapFirestoreError(err, "Restaurant not found")
	}
	return decodeRestaurant(doc)
}

func (s *FirestoreStore) CreateRestaurant(ctx context.Context, list List, restaurant *models.Restaurant) (*models.Restaurant, error) {
	docRef := s.Client.Collection(string(list)).NewDoc()

	record := *restaurant
	record.ID = docRef.ID
	record.Ratings = []models.RatingEntry{}
	record.AverageRating = 0
	record.DateAdded = time.Now().UTC()
	record.UpdatedAt = nil

	if _, err := docRef.Set(ctx, restaurantData(&record)); err != nil {
		return nil, mapFirestoreError(err, "Restaurant not found")
	}
	if record.Location != nil {
		record.Geohash = geohash.Encode(record.Location.Latitude, record.Location.Longitude)
	}
	return &record, nil
}

func (s *FirestoreStore) UpdateRestaurant(ctx context.Context, list List, id string, update RestaurantUpdate) (*models.Restaurant, error) {
	docRef := s.Client.Collection(string(list)).Doc(id)

	var updated *models.Restaurant
	err := s.Client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			return err
		}
		record, err := decodeRestaurant(doc)
		if err != nil {
			return err
		}
		applyUpdate(record, update)
		now := time.Now().UTC()
		record.UpdatedAt = &now

		updated = record
		return tx.Set(docRef, restaurantData(record))
	})
	if err != nil {
		if customErr, ok := err.(*utils.CustomError); ok {
			return nil, customErr
		}
		return nil, mapFirestoreError(err, "Restaurant not found")
	}
	return updated, nil
}

func (s *FirestoreStore) DeleteRestaurant(ctx context.Context, list List, id string) error {
	docRef := s.Client.Collection(string(list)).Doc(id)

	// Get first: Delete alone is a silent no-op for a missing id, and delete
	// must report NotFound.
	if _, err := docRef.Get(ctx); err != nil {
		return mapFirestoreError(err, "Restaurant not found")
	}
	if _, err := docRef.Delete(ctx); err != nil {
		return mapFirestoreError(err, "Restaurant not found")
	}
	return nil
}

func (s *FirestoreStore) MutateRestaurant(ctx context.Context, list List, id string, mutate func(*models.Restaurant) error) (*models.Restaurant, error) {
	docRef := s.Client.Collection(string(list)).Doc(id)

	var updated *models.Restaurant
	err := s.Client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			return err
		}
		record, err := decodeRestaurant(doc)
		if err != nil {
			return err
		}
		if err := mutate(record); err != nil {
			return err
		}
		now := time.Now().UTC()
		record.UpdatedAt = &now

		updated = record
		return tx.Set(docRef, restaurantData(record))
	})
	if err != nil {
		if customErr, ok := err.(*utils.CustomError); ok {
			return nil, customErr
		}
		return nil, mapFirestoreError(err, "Restaurant not found")
	}
	return updated, nil
}

func (s *FirestoreStore) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	docRef := s.Client.Collection(usersCollection).NewDoc()

	record := *user
	record.ID = docRef.ID
	record.CreatedAt = time.Now().UTC()
	record.UpdatedAt = record.CreatedAt

	if _, err := docRef.Set(ctx, &record); err != nil {
		return nil, mapFirestoreError(err, "User not found")
	}
	return &record, nil
}

func (s *FirestoreStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	iter := s.Client.Collection(usersCollection).
		Where("username", "==", username).
		Limit(1).
		Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, utils.NewNotFound("User not found")
	}
	if err != nil {
		return nil, mapFirestoreError(err, "User not found")
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, utils.NewServerError("Failed to parse user data")
	}
	user.ID = doc.Ref.ID
	return &user, nil
}

func (s *FirestoreStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	doc, err := s.Client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapFirestoreError(err, "User not found")
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, utils.NewServerError("Failed to parse user data")
	}
	user.ID = doc.Ref.ID
	return &user, nil
}

func (s *FirestoreStore) AppendAudit(ctx context.Context, event *models.AuditEvent) error {
	docRef := s.Client.Collection(auditCollection).NewDoc()

	record := *event
	record.ID = docRef.ID
	if _, err := docRef.Set(ctx, &record); err != nil {
		return mapFirestoreError(err, "Audit event not found")
	}
	return nil
}

func (s *FirestoreStore) Close() error {
	return s.Client.Close()
}
