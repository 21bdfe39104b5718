package services

import (
	"context"
	"log/slog"
	"strings"

	"PlateTrail/models"
	"PlateTrail/storage"
	"PlateTrail/utils"
)

type RestaurantService struct {
	Store   storage.Store
	Geocode *GeocodeService
	Audit   *AuditService
}

// NewRestaurantService initializes RestaurantService with the store, geocoder
// and audit trail.
func NewRestaurantService(store storage.Store, geocode *GeocodeService, audit *AuditService) *RestaurantService {
	return &RestaurantService{
		Store:   store,
		Geocode: geocode,
		Audit:   audit,
	}
}

// IsDuplicate reports whether the candidate's name or address matches an
// existing entry case-insensitively. Lists are independent: the check only
// ever runs against the list being added to, so the same place may appear on
// both visited and to-visit.
func IsDuplicate(name, address string, existing []models.Restaurant) bool {
	for _, restaurant := range existing {
		if strings.EqualFold(restaurant.Name, name) || strings.EqualFold(restaurant.Address, address) {
			return true
		}
	}
	return false
}

func validateTags(tags map[string][]string) error {
	for category, selected := range tags {
		for _, tag := range selected {
			if !models.ValidTag(category, tag) {
				return utils.NewInvalidInput("Unknown tag " + tag + " in category " + category)
			}
		}
	}
	return nil
}

func (s *RestaurantService) GetAll(ctx context.Context, list storage.List) ([]models.Restaurant, error) {
	return s.Store.ListRestaurants(ctx, list)
}

func (s *RestaurantService) GetByID(ctx context.Context, list storage.List, id string) (*models.Restaurant, error) {
	return s.Store.GetRestaurant(ctx, list, id)
}

// Create adds a restaurant to the given list. Duplicates are rejected before
// any store write. The geocode lookup is best-effort: when it fails the record
// is created without a location rather than failing the add.
func (s *RestaurantService) Create(ctx context.Context, list storage.List, userID string, input models.RestaurantInput) (*models.Restaurant, error) {
	if userID == "" {
		return nil, utils.NewAuthRequired("Authentication required")
	}

	name := strings.TrimSpace(input.Name)
	address := strings.TrimSpace(input.Address)
	if name == "" || address == "" {
		return nil, utils.NewInvalidInput("Name and address are required")
	}
	if err := validateTags(input.Tags); err != nil {
		return nil, err
	}

	existing, err := s.Store.ListRestaurants(ctx, list)
	if err != nil {
		return nil, err
	}
	if IsDuplicate(name, address, existing) {
		return nil, utils.NewDuplicate("Restaurant with this name or address already exists")
	}

	restaurant := &models.Restaurant{
		Name:    name,
		Address: address,
		Tags:    input.Tags,
	}

	location, err := s.Geocode.Lookup(ctx, address)
	if err != nil {
		slog.Warn("geocode lookup failed, creating without location", "address", address, "error", err)
	} else {
		restaurant.Location = location
	}

	created, err := s.Store.CreateRestaurant(ctx, list, restaurant)
	if err != nil {
		return nil, err
	}

	s.Audit.Record(userID, models.AuditCreateRestaurant, string(list), created.ID, map[string]interface{}{
		"name": created.Name,
	})
	return created, nil
}

// Update merges the supplied fields into an existing record. The duplicate
// check does not run on edits. An address change triggers a fresh geocode
// lookup; if that fails the old location is kept stale.
func (s *RestaurantService) Update(ctx context.Context, list storage.List, userID, id string, input models.RestaurantUpdateInput) (*models.Restaurant, error) {
	if userID == "" {
		return nil, utils.NewAuthRequired("Authentication required")
	}
	if err := validateTags(input.Tags); err != nil {
		return nil, err
	}

	existing, err := s.Store.GetRestaurant(ctx, list, id)
	if err != nil {
		return nil, err
	}

	update := storage.RestaurantUpdate{Tags: input.Tags}
	if name := strings.TrimSpace(input.Name); name != "" {
		update.Name = &name
	}
	if address := strings.TrimSpace(input.Address); address != "" && !strings.EqualFold(address, existing.Address) {
		update.Address = &address

		location, err := s.Geocode.Lookup(ctx, address)
		if err != nil {
			slog.Warn("geocode lookup failed, keeping stale location", "address", address, "error", err)
		} else {
			update.Location = location
		}
	}

	updated, err := s.Store.UpdateRestaurant(ctx, list, id, update)
	if err != nil {
		return nil, err
	}

	s.Audit.Record(userID, models.AuditUpdateRestaurant, string(list), id, map[string]interface{}{
		"name": updated.Name,
	})
	return updated, nil
}

// Delete removes the record from its list. A missing id is a NotFound error,
// never a silent no-op.
func (s *RestaurantService) Delete(ctx context.Context, list storage.List, userID, id string) error {
	if userID == "" {
		return utils.NewAuthRequired("Authentication required")
	}
	if err := s.Store.DeleteRestaurant(ctx, list, id); err != nil {
		return err
	}

	s.Audit.Record(userID, models.AuditDeleteRestaurant, string(list), id, nil)
	return nil
}
