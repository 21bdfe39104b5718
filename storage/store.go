package storage

import (
	"context"

	"PlateTrail/models"
)

// List names a restaurant collection. The visited and to-visit lists are fully
// independent: the same place may legitimately appear in both.
type List string

const (
	ListVisited     List = "restaurants"
	ListToVisit     List = "tovisit"
	ListRecommended List = "recommended"
)

// RestaurantUpdate holds the fields an update may merge into a stored record.
// Nil fields are left untouched; ratings and averageRating are only reachable
// through MutateRestaurant so they always change together.
type RestaurantUpdate struct {
	Name     *string
	Address  *string
	Tags     map[string][]string
	Location *models.GeoLocation
}

// Store is the persistence gateway shared by the file and firestore backends.
// All methods return *utils.CustomError for expected failures (NotFound on a
// missing id, NetworkError/ServerError on transport faults).
type Store interface {
	ListRestaurants(ctx context.Context, list List) ([]models.Restaurant, error)
	GetRestaurant(ctx context.Context, list List, id string) (*models.Restaurant, error)
	// CreateRestaurant assigns the id, dateAdded, empty ratings and a zero
	// averageRating, returning the persisted record.
	CreateRestaurant(ctx context.Context, list List, restaurant *models.Restaurant) (*models.Restaurant, error)
	// UpdateRestaurant merges the non-nil fields of update into the stored
	// record and stamps updatedAt.
	UpdateRestaurant(ctx context.Context, list List, id string, update RestaurantUpdate) (*models.Restaurant, error)
	DeleteRestaurant(ctx context.Context, list List, id string) error
	// MutateRestaurant applies mutate to the current stored record and commits
	// the result as one atomic write, so concurrent raters cannot lose updates.
	MutateRestaurant(ctx context.Context, list List, id string, mutate func(*models.Restaurant) error) (*models.Restaurant, error)

	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// AppendAudit persists a best-effort audit event, assigning its id.
	AppendAudit(ctx context.Context, event *models.AuditEvent) error

	Close() error
}
