package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"PlateTrail/models"
	"PlateTrail/utils"

	"github.com/google/uuid"
	"github.com/mmcloughlin/geohash"
)

// FileStore keeps every collection in a single JSON file, the demo backend's
// durable format. All access goes through one mutex, so every mutation is an
// atomic read-modify-write and the file is rewritten as a whole on each commit.
type FileStore struct {
	mu   sync.Mutex
	path string
	data fileData
}

var _ Store = (*FileStore)(nil)

type fileData struct {
	Restaurants []models.Restaurant `json:"restaurants"`
	ToVisit     []models.Restaurant `json:"tovisit"`
	Recommended []models.Restaurant `json:"recommended"`
	Users       []models.User       `json:"users"`
	Audit       []models.AuditEvent `json:"audit"`
}

// OpenFileStore loads the store from path, starting empty if the file does not
// exist yet.
func OpenFileStore(path string) (*FileStore, error) {
	store := &FileStore{path: path}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
	if err := json.Unmarshal(raw, &store.data); err != nil {
		return nil, fmt.Errorf("failed to parse data file %s: %w", path, err)
	}
	return store, nil
}

// persist writes the whole dataset to a temp file and renames it into place,
// so a crash mid-write never corrupts the data file. Caller holds the mutex.
func (s *FileStore) persist() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return utils.NewServerError("failed to encode data file")
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".platetrail-*")
	if err != nil {
		return utils.NewServerError("failed to write data file")
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return utils.NewServerError("failed to write data file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return utils.NewServerError("failed to write data file")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return utils.NewServerError("failed to write data file")
	}
	return nil
}

func (s *FileStore) listSlice(list List) (*[]models.Restaurant, error) {
	switch list {
	case ListVisited:
		return &s.data.Restaurants, nil
	case ListToVisit:
		return &s.data.ToVisit, nil
	case ListRecommended:
		return &s.data.Recommended, nil
	default:
		return nil, utils.NewServerError("unknown collection: " + string(list))
	}
}

func cloneRestaurant(r models.Restaurant) models.Restaurant {
	clone := r
	if r.Location != nil {
		location := *r.Location
		clone.Location = &location
	}
	if r.UpdatedAt != nil {
		updatedAt := *r.UpdatedAt
		clone.UpdatedAt = &updatedAt
	}
	if r.Ratings != nil {
		clone.Ratings = make([]models.RatingEntry, len(r.Ratings))
		copy(clone.Ratings, r.Ratings)
	}
	if r.Tags != nil {
		clone.Tags = make(map[string][]string, len(r.Tags))
		for category, tags := range r.Tags {
			clone.Tags[category] = append([]string(nil), tags...)
		}
	}
	return clone
}

func (s *FileStore) ListRestaurants(_ context.Context, list List) ([]models.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.listSlice(list)
	if err != nil {
		return nil, err
	}
	out := make([]models.Restaurant, 0, len(*entries))
	for _, r := range *entries {
		out = append(out, cloneRestaurant(r))
	}
	return out, nil
}

func (s *FileStore) GetRestaurant(_ context.Context, list List, id string) (*models.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.listSlice(list)
	if err != nil {
		return nil, err
	}
	for _, r := range *entries {
		if r.ID == id {
			clone := cloneRestaurant(r)
			return &clone, nil
		}
	}
	return nil, utils.NewNotFound("Restaurant not found")
}

func (s *FileStore) CreateRestaurant(_ context.Context, list List, restaurant *models.Restaurant) (*models.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.listSlice(list)
	if err != nil {
		return nil, err
	}

	record := cloneRestaurant(*restaurant)
	record.ID = uuid.NewString()
	record.Ratings = []models.RatingEntry{}
	record.AverageRating = 0
	record.DateAdded = time.Now().UTC()
	record.UpdatedAt = nil
	if record.Location != nil {
		record.Geohash = geohash.Encode(record.Location.Latitude, record.Location.Longitude)
	}

	*entries = append(*entries, record)
	if err := s.persist(); err != nil {
		*entries = (*entries)[:len(*entries)-1]
		return nil, err
	}
	clone := cloneRestaurant(record)
	return &clone, nil
}

func (s *FileStore) UpdateRestaurant(_ context.Context, list List, id string, update RestaurantUpdate) (*models.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.listSlice(list)
	if err != nil {
		return nil, err
	}
	for i := range *entries {
		if (*entries)[i].ID != id {
			continue
		}
		record := cloneRestaurant((*entries)[i])
		applyUpdate(&record, update)
		now := time.Now().UTC()
		record.UpdatedAt = &now

		previous := (*entries)[i]
		(*entries)[i] = record
		if err := s.persist(); err != nil {
			(*entries)[i] = previous
			return nil, err
		}
		clone := cloneRestaurant(record)
		return &clone, nil
	}
	return nil, utils.NewNotFound("Restaurant not found")
}

func (s *FileStore) DeleteRestaurant(_ context.Context, list List, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.listSlice(list)
	if err != nil {
		return err
	}
	for i := range *entries {
		if (*entries)[i].ID != id {
			continue
		}
		previous := *entries
		*entries = append(append([]models.Restaurant(nil), (*entries)[:i]...), (*entries)[i+1:]...)
		if err := s.persist(); err != nil {
			*entries = previous
			return err
		}
		return nil
	}
	return utils.NewNotFound("Restaurant not found")
}

func (s *FileStore) MutateRestaurant(_ context.Context, list List, id string, mutate func(*models.Restaurant) error) (*models.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.listSlice(list)
	if err != nil {
		return nil, err
	}
	for i := range *entries {
		if (*entries)[i].ID != id {
			continue
		}
		record := cloneRestaurant((*entries)[i])
		if err := mutate(&record); err != nil {
			return nil, err
		}
		now := time.Now().UTC()
		record.UpdatedAt = &now

		previous := (*entries)[i]
		(*entries)[i] = record
		if err := s.persist(); err != nil {
			(*entries)[i] = previous
			return nil, err
		}
		clone := cloneRestaurant(record)
		return &clone, nil
	}
	return nil, utils.NewNotFound("Restaurant not found")
}

func (s *FileStore) CreateUser(_ context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := *user
	record.ID = uuid.NewString()
	record.CreatedAt = time.Now().UTC()
	record.UpdatedAt = record.CreatedAt

	s.data.Users = append(s.data.Users, record)
	if err := s.persist(); err != nil {
		s.data.Users = s.data.Users[:len(s.data.Users)-1]
		return nil, err
	}
	clone := record
	return &clone, nil
}

func (s *FileStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.data.Users {
		if user.Username == username {
			clone := user
			return &clone, nil
		}
	}
	return nil, utils.NewNotFound("User not found")
}

func (s *FileStore) GetUserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.data.Users {
		if user.ID == id {
			clone := user
			return &clone, nil
		}
	}
	return nil, utils.NewNotFound("User not found")
}

func (s *FileStore) AppendAudit(_ context.Context, event *models.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := *event
	record.ID = uuid.NewString()
	s.data.Audit = append(s.data.Audit, record)
	if err := s.persist(); err != nil {
		s.data.Audit = s.data.Audit[:len(s.data.Audit)-1]
		return err
	}
	return nil
}

// AuditEvents returns a snapshot of the audit log. Not part of the Store
// interface; the trail is write-only for the API surface.
func (s *FileStore) AuditEvents() []models.AuditEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.AuditEvent(nil), s.data.Audit...)
}

func (s *FileStore) Close() error {
	return nil
}

// applyUpdate merges the non-nil update fields, shared with the firestore
// backend so both merge the same way.
func applyUpdate(record *models.Restaurant, update RestaurantUpdate) {
	if update.Name != nil {
		record.Name = *update.Name
	}
	if update.Address != nil {
		record.Address = *update.Address
	}
	if update.Tags != nil {
		record.Tags = update.Tags
	}
	if update.Location != nil {
		location := *update.Location
		record.Location = &location
		record.Geohash = geohash.Encode(location.Latitude, location.Longitude)
	}
}
